// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	gen := NewUUIDGenerator()

	id := gen.Generate()

	parsed, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("generated ID is not a valid UUID: %v", err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected UUID version 7, got %d", parsed.Version())
	}
}

func TestUUIDGenerator_Generate_Unique(t *testing.T) {
	gen := NewUUIDGenerator()

	seen := make(map[string]struct{}, 100)
	for i := 0; i < 100; i++ {
		id := gen.Generate()
		if _, duplicate := seen[id]; duplicate {
			t.Fatalf("duplicate UUID generated: %s", id)
		}
		seen[id] = struct{}{}
	}
}
