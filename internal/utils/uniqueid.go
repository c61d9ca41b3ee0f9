package utils

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// ID prefixes per record kind.
const (
	PrefixGroup        = "g"
	PrefixSubtask      = "s"
	PrefixTask         = "t"
	PrefixHabit        = "h"
	PrefixCompletion   = "c"
	PrefixNotification = "n"
	PrefixInsight      = "i"
)

const (
	idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	idLength   = 12
)

// GenerateID creates an identifier with a single-character kind prefix
// followed by 12 random lowercase alphanumerics, e.g. "g7k2m4p1qz8x0".
func GenerateID(prefix string) (string, error) {
	suffix, err := gonanoid.Generate(idAlphabet, idLength)
	if err != nil {
		return "", fmt.Errorf("failed to generate id: %w", err)
	}
	return prefix + suffix, nil
}

// MustGenerateID is GenerateID for call sites where the only failure mode is
// a broken system entropy source.
func MustGenerateID(prefix string) string {
	id, err := GenerateID(prefix)
	if err != nil {
		panic(err)
	}
	return id
}
