// Copyright 2024 The Crest Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package randutil

import (
	"math/rand"
	"os"
	"strconv"
)

// NewPseudoRand returns an instance of math/rand.Rand seeded from a random
// seed (or the CREST_RANDOM_SEED environment variable, for reproducing test
// failures) and its seed so we can easily and cheaply generate unique streams
// of numbers. The created object is not safe for concurrent access.
func NewPseudoRand() (*rand.Rand, int64) {
	seed := NewPseudoSeed()
	return rand.New(rand.NewSource(seed)), seed
}

// NewPseudoSeed generates a seed from crypto-free entropy that is good enough
// for testing purposes.
func NewPseudoSeed() int64 {
	if s := os.Getenv("CREST_RANDOM_SEED"); s != "" {
		if seed, err := strconv.ParseInt(s, 10, 64); err == nil {
			return seed
		}
	}
	return rand.Int63()
}
