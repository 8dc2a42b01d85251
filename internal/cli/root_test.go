package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCommandRegistersSubcommands(t *testing.T) {
	rootCmd := NewRootCommand()

	names := map[string]bool{}
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"bootstrap", "run", "doctor"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}

func TestRootCommandGlobalFlags(t *testing.T) {
	rootCmd := NewRootCommand()

	require.NotNil(t, rootCmd.PersistentFlags().Lookup("verbose"))
	root := rootCmd.PersistentFlags().Lookup("root")
	require.NotNil(t, root)
	assert.Equal(t, ".", root.DefValue)

	// Errors are formatted by Execute, not cobra.
	assert.True(t, rootCmd.SilenceUsage)
	assert.True(t, rootCmd.SilenceErrors)
}

func TestSubcommandFlags(t *testing.T) {
	rootCmd := NewRootCommand()

	bootstrap, _, err := rootCmd.Find([]string{"bootstrap"})
	require.NoError(t, err)
	assert.NotNil(t, bootstrap.Flags().Lookup("force"))
	assert.NotNil(t, bootstrap.Flags().Lookup("no-pause"))

	run, _, err := rootCmd.Find([]string{"run"})
	require.NoError(t, err)
	assert.NotNil(t, run.Flags().Lookup("no-pause"))
}
