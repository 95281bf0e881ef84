package player

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// UUID is a value object representing a Minecraft account identifier in its
// canonical form: 32 lowercase hexadecimal characters with dashes stripped.
// Every outbound call and cache key uses this form.
type UUID struct {
	value string
}

// ParseUUID normalizes raw input by stripping all dashes and lowercasing,
// then validates that the result is exactly 32 hexadecimal characters.
// Dash placement and letter case in the input are irrelevant.
func ParseUUID(raw string) (UUID, error) {
	normalized := strings.ToLower(strings.ReplaceAll(raw, "-", ""))
	if len(normalized) != 32 {
		return UUID{}, fmt.Errorf("uuid must be 32 hex characters, got %d", len(normalized))
	}
	if _, err := uuid.Parse(normalized); err != nil {
		return UUID{}, fmt.Errorf("invalid uuid %q: %w", raw, err)
	}
	return UUID{value: normalized}, nil
}

// MustParseUUID creates a UUID value object, panicking if invalid.
// Use this only when you're certain the input is valid (e.g., in tests).
func MustParseUUID(raw string) UUID {
	id, err := ParseUUID(raw)
	if err != nil {
		panic(err)
	}
	return id
}

// IsUUID reports whether raw is a valid Minecraft UUID in any mix of
// dash placement and letter case.
func IsUUID(raw string) bool {
	_, err := ParseUUID(raw)
	return err == nil
}

// String returns the canonical undashed lowercase form.
func (u UUID) String() string {
	return u.value
}

// IsZero checks if the UUID is the zero value (uninitialized).
func (u UUID) IsZero() bool {
	return u.value == ""
}

// Equals checks if two UUIDs are equal.
func (u UUID) Equals(other UUID) bool {
	return u.value == other.value
}
