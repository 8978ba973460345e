package main

import (
	"crypto/rand"
	"encoding/hex"
	"math"
)

// GenerateID returns a random hex string of the given byte length
func GenerateID(byteLen int) string {
	b := make([]byte, byteLen)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// Clamp restricts v to [min, max]
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// round1 rounds to one decimal place for compact wire encoding
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// randFloat returns a random float64 in [0, 1)
// Simple xorshift for non-crypto random
var randSrc uint64

func randFloat() float64 {
	randSrc ^= randSrc << 13
	randSrc ^= randSrc >> 7
	randSrc ^= randSrc << 17
	if randSrc == 0 {
		randSrc = 1
	}
	return float64(randSrc%10000) / 10000.0
}

func init() {
	// Seed from crypto/rand
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	for i, v := range b {
		randSrc |= uint64(v) << (uint(i) * 8)
	}
	if randSrc == 0 {
		randSrc = 1
	}
}
