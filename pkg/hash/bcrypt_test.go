package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheck(t *testing.T) {
	h, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", h)
	assert.True(t, CheckPasswordHash("correct horse", h))
	assert.False(t, CheckPasswordHash("wrong", h))
}
