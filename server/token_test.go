package main

import "testing"

func TestTokenRoundTrip(t *testing.T) {
	ti := NewTokenIssuer()
	token, err := ti.Issue("abc123")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	rid, err := ti.Validate(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if rid != "abc123" {
		t.Errorf("rid = %q, want abc123", rid)
	}
}

func TestTokenRejectsGarbage(t *testing.T) {
	ti := NewTokenIssuer()
	for _, bad := range []string{"", "not-a-token", "aaaa.bbbb.cccc"} {
		if _, err := ti.Validate(bad); err == nil {
			t.Errorf("garbage token %q validated", bad)
		}
	}
}

func TestTokenBoundToIssuer(t *testing.T) {
	a := NewTokenIssuer()
	b := NewTokenIssuer()
	token, err := a.Issue("run1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := b.Validate(token); err == nil {
		t.Error("token signed by another issuer validated")
	}
}

func TestTokenTamperDetected(t *testing.T) {
	ti := NewTokenIssuer()
	token, err := ti.Issue("run1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	tampered := token[:len(token)-2] + "xx"
	if _, err := ti.Validate(tampered); err == nil {
		t.Error("tampered token validated")
	}
}
