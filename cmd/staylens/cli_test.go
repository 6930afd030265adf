package main_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	main "github.com/jbialy/staylens/cmd/staylens"
)

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

	helpOutput := stdout.String()
	expectedCommands := []string{"serve", "search", "details"}
	for _, cmd := range expectedCommands {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("help shows kong output", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"--help"}, strings.NewReader(""), stdout, stderr)
		require.NoError(t, err)

		helpOutput := stdout.String()
		for _, cmd := range []string{"serve", "search", "details"} {
			assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
		}
	})

	t.Run("no command shows an error", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), nil, strings.NewReader(""), stdout, stderr)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("unknown command shows an error", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"bogus"}, strings.NewReader(""), stdout, stderr)
		require.Error(t, err)
	})

	t.Run("serve answers an initialize request over stdio", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		defer m.Close()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		stdin := strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}` + "\n")

		err := m.Run(context.Background(), []string{"serve"}, stdin, stdout, stderr)
		require.NoError(t, err)

		assert.Contains(t, stdout.String(), `"protocolVersion"`)
		assert.Contains(t, stdout.String(), `"staylens"`)
	})
}
