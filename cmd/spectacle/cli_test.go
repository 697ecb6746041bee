package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/alecthomas/kong"
	main "github.com/edjs/spectacle/cmd/spectacle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var commands = []string{"extract", "import", "list", "show", "update", "delete", "catalog", "export"}

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	// Use kong.Exit to prevent os.Exit from being called during tests
	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	for _, cmd := range commands {
		assert.Contains(t, stdout.String(), cmd, "Help should mention %s command", cmd)
	}
}

func TestCLI_ParsesSelection(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli, kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"export", "out", "Charlotte", "Antigone", "--extractor", "readability"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Charlotte", "Antigone"}, cli.Export.Names)
	assert.Equal(t, "readability", cli.Export.Extractor)
	assert.False(t, cli.Export.All)
	assert.Equal(t, "spectacles", cli.Import.Collection)
}

func TestMain_Run_HelpShowsKongOutput(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	err := newMain(t).Run(context.Background(), []string{"--help"}, stdout, &bytes.Buffer{})
	require.NoError(t, err)

	for _, cmd := range commands {
		assert.Contains(t, stdout.String(), cmd, "Help should mention %s command", cmd)
	}
}

func TestMain_Run_NoArgsReturnsError(t *testing.T) {
	t.Parallel()

	err := newMain(t).Run(context.Background(), []string{}, &bytes.Buffer{}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}
