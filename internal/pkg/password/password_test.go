package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hashed, err := Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hashed)
	assert.NotEqual(t, "correct horse battery staple", hashed)

	assert.True(t, Verify("correct horse battery staple", hashed))
	assert.False(t, Verify("wrong password", hashed))
	assert.False(t, Verify("", hashed))
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("12345678"))
	assert.False(t, Valid("1234567"))
	assert.False(t, Valid(""))
}
