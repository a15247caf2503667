package ids

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBookingID_LengthAndAlphabet(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := NewBookingID()
		assert.Len(t, id, 12)
		for _, r := range id {
			assert.True(t, strings.ContainsRune(bookingAlphabet, r), "unexpected rune %q in %q", r, id)
		}
	}
}

func TestNewBookingID_NoCollisions(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 10000; i++ {
		id := NewBookingID()
		assert.False(t, seen[id], "duplicate id %q", id)
		seen[id] = true
	}
}
