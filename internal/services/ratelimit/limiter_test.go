package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowConsumesTokens(t *testing.T) {
	l := New(3, 0)

	assert.True(t, l.Allow("1.2.3.4"))
	assert.True(t, l.Allow("1.2.3.4"))
	assert.True(t, l.Allow("1.2.3.4"))
	assert.False(t, l.Allow("1.2.3.4"))
}

func TestKeysAreIndependent(t *testing.T) {
	l := New(1, 0)

	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"))
	assert.True(t, l.Allow("b"))
}

func TestRefill(t *testing.T) {
	l := New(1, 1000)

	assert.True(t, l.Allow("a"))

	// with a 1000/s refill rate the bucket recovers almost immediately
	deadline := 10000
	refilled := false
	for i := 0; i < deadline; i++ {
		if l.Allow("a") {
			refilled = true
			break
		}
	}
	assert.True(t, refilled)
}
