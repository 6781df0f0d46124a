package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionsCommand(t *testing.T) {
	setupTestEnv(t, "")

	stdout, _, err := execute(t, "actions")
	require.NoError(t, err)

	assert.Contains(t, stdout, "copy_code*")
	assert.Contains(t, stdout, "Copy emoji code")
	assert.Contains(t, stdout, "Copy the emoji :code: to clipboard")
	assert.Contains(t, stdout, "Copy emoji to clipboard")
}

func TestActionsCommand_ConfiguredDefault(t *testing.T) {
	setupTestEnv(t, "")
	t.Setenv("GITMOJI_MAIN_DEFAULT_COPY_ACTION", "copy_emoji")

	stdout, _, err := execute(t, "--json", "actions")
	require.NoError(t, err)

	var result struct {
		Data []struct {
			Name    string `json:"name"`
			Label   string `json:"label"`
			Default bool   `json:"default"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	require.Len(t, result.Data, 2)
	assert.Equal(t, "copy_code", result.Data[0].Name)
	assert.False(t, result.Data[0].Default)
	assert.Equal(t, "copy_emoji", result.Data[1].Name)
	assert.True(t, result.Data[1].Default)
}
