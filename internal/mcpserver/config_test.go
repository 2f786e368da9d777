package mcpserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvBool(t *testing.T) {
	t.Setenv("SPECFOLD_TEST_BOOL", "")
	assert.True(t, envBool("SPECFOLD_TEST_BOOL", true))

	t.Setenv("SPECFOLD_TEST_BOOL", "false")
	assert.False(t, envBool("SPECFOLD_TEST_BOOL", true))

	t.Setenv("SPECFOLD_TEST_BOOL", "not-a-bool")
	assert.True(t, envBool("SPECFOLD_TEST_BOOL", true))
}

func TestEnvInt(t *testing.T) {
	t.Setenv("SPECFOLD_TEST_INT", "")
	assert.Equal(t, 5, envInt("SPECFOLD_TEST_INT", 5))

	t.Setenv("SPECFOLD_TEST_INT", "12")
	assert.Equal(t, 12, envInt("SPECFOLD_TEST_INT", 5))

	t.Setenv("SPECFOLD_TEST_INT", "-3")
	assert.Equal(t, 5, envInt("SPECFOLD_TEST_INT", 5))

	t.Setenv("SPECFOLD_TEST_INT", "nope")
	assert.Equal(t, 5, envInt("SPECFOLD_TEST_INT", 5))
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("SPECFOLD_LOCAL_ENABLED", "")
	t.Setenv("SPECFOLD_REMOTE_ENABLED", "")
	t.Setenv("SPECFOLD_MAX_INLINE_SIZE", "")
	c := loadConfig()
	assert.True(t, c.LocalEnabled)
	assert.False(t, c.RemoteEnabled, "remote resolution must be opt-in")
	assert.Equal(t, 2*1024*1024, c.MaxInlineSize)
}
