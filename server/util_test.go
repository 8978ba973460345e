package main

import "testing"

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 {
		t.Error("in-range value should pass through")
	}
	if Clamp(-1, 0, 10) != 0 {
		t.Error("low value should clamp to min")
	}
	if Clamp(11, 0, 10) != 10 {
		t.Error("high value should clamp to max")
	}
}

func TestRound1(t *testing.T) {
	if got := round1(1.26); got != 1.3 {
		t.Errorf("round1(1.26) = %f", got)
	}
	if got := round1(-1.24); got != -1.2 {
		t.Errorf("round1(-1.24) = %f", got)
	}
}

func TestGenerateID(t *testing.T) {
	id := GenerateID(8)
	if len(id) != 16 {
		t.Errorf("GenerateID(8) length = %d, want 16 hex chars", len(id))
	}
	if id == GenerateID(8) {
		t.Error("consecutive ids should differ")
	}
}

func TestRandFloatRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		v := randFloat()
		if v < 0 || v >= 1 {
			t.Fatalf("randFloat() = %f outside [0, 1)", v)
		}
	}
}
