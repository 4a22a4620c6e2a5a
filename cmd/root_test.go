package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "gamereviews", cmd.Use)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()

	for _, path := range [][]string{
		{"serve"},
		{"reviews"},
		{"reviews", "list"},
		{"reviews", "search"},
		{"reviews", "add"},
	} {
		sub, _, err := cmd.Find(path)
		require.NoError(t, err, "command %v should exist", path)
		assert.Equal(t, path[len(path)-1], sub.Name())
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	for _, name := range []string{"port", "store", "reviews-file", "debug", "env-file"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "flag --%s should exist", name)
	}

	search, _, err := cmd.Find([]string{"reviews", "search"})
	require.NoError(t, err)
	format := search.Flags().Lookup("format")
	require.NotNil(t, format)
	assert.Equal(t, "json", format.DefValue)
}
