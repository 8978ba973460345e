package main

import "testing"

func TestDecodeKeys(t *testing.T) {
	ks := DecodeKeys([]string{"left", "down", "sonar", "close"})
	want := KeySet{Left: true, Down: true, Sonar: true, MenuClose: true}
	if ks != want {
		t.Errorf("DecodeKeys = %+v, want %+v", ks, want)
	}
}

func TestDecodeKeysIgnoresUnknown(t *testing.T) {
	ks := DecodeKeys([]string{"up", "warp", "", "fire"})
	if ks != (KeySet{Up: true}) {
		t.Errorf("unknown identifiers should be ignored, got %+v", ks)
	}
}

func TestDecodeBinaryInput(t *testing.T) {
	// left + down + sonar, camera -42
	bits := uint16(1<<0 | 1<<3 | 1<<4)
	camByte := int8(-42)
	msg := []byte{binaryInputFrame, byte(bits), byte(bits >> 8), byte(camByte)}

	ks, cam, ok := DecodeBinaryInput(msg)
	if !ok {
		t.Fatal("expected a valid frame")
	}
	if ks != (KeySet{Left: true, Down: true, Sonar: true}) {
		t.Errorf("keys = %+v", ks)
	}
	if cam != -42 {
		t.Errorf("camera = %f, want -42", cam)
	}
}

func TestDecodeBinaryInputHighBits(t *testing.T) {
	// close is bit 8, carried in the second byte
	bits := uint16(1 << 8)
	ks, _, ok := DecodeBinaryInput([]byte{binaryInputFrame, byte(bits), byte(bits >> 8), 0})
	if !ok || !ks.MenuClose {
		t.Errorf("expected close from the high byte, got %+v", ks)
	}
}

func TestDecodeBinaryInputRejectsMalformed(t *testing.T) {
	if _, _, ok := DecodeBinaryInput([]byte{binaryInputFrame, 0, 0}); ok {
		t.Error("short frame accepted")
	}
	if _, _, ok := DecodeBinaryInput([]byte{binaryInputFrame, 0, 0, 0, 0}); ok {
		t.Error("long frame accepted")
	}
	if _, _, ok := DecodeBinaryInput([]byte{0x7F, 0, 0, 0}); ok {
		t.Error("wrong marker accepted")
	}
	if _, _, ok := DecodeBinaryInput(nil); ok {
		t.Error("nil frame accepted")
	}
}

func TestDecodeBinaryInputClampsCamera(t *testing.T) {
	_, cam, ok := DecodeBinaryInput([]byte{binaryInputFrame, 0, 0, byte(int8(120))})
	if !ok {
		t.Fatal("expected a valid frame")
	}
	if cam != CameraOffsetMax {
		t.Errorf("camera = %f, want clamp at %f", cam, CameraOffsetMax)
	}
}
