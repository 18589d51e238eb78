package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvHelpers(t *testing.T) {
	t.Setenv(envIgnore, " *.txt,,vendor/** ,")
	t.Setenv(envDebug, "1")
	t.Setenv(envOutput, "  out.txt ")

	assert.Equal(t, []string{"*.txt", "vendor/**"}, envList(envIgnore))
	assert.True(t, envBool(envDebug))
	assert.Equal(t, "out.txt", envString(envOutput))

	t.Setenv(envDebug, "nope")
	assert.False(t, envBool(envDebug))

	t.Setenv(envIgnore, "")
	assert.Nil(t, envList(envIgnore))
}
