package orders

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTrackingIDFormat(t *testing.T) {
	format := regexp.MustCompile(`^TRK[A-Z0-9]{9}$`)
	for i := 0; i < 100; i++ {
		assert.Regexp(t, format, NewTrackingID())
	}
}

func TestNewTrackingIDIsRandom(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		seen[NewTrackingID()] = true
	}
	// 36^9 values; any repeat in a thousand draws means broken randomness.
	assert.Len(t, seen, 1000)
}
