package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "modlift.dev/pkg/modlift/internal/model"
)

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "modlift", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.Equal(t, rootLongDescription, cmd.Long)
}

func TestRootCmd_HelpOutput(t *testing.T) {
	cmd := newRootCmd()
	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.NoError(t, err)

	assert.Contains(t, output.String(), "modlift")
}

func TestRestructureArgs_Defaults(t *testing.T) {
	args := restructureArgs(nil)

	assert.Equal(t, m.Path(defaultRoot), args.Root)
	assert.Equal(t, defaultSuffix, args.Suffix)
	assert.Equal(t, defaultModuleName, args.ModuleName)
	assert.Equal(t, defaultTestName, args.TestName)
	assert.Equal(t, m.Header(defaultHeaderLines()), args.Header)
}

func TestRestructureArgs_PositionalRootWins(t *testing.T) {
	args := restructureArgs([]string{"./some/tree"})

	assert.Equal(t, m.Path("./some/tree"), args.Root)
}

func TestDefaultHeaderLines(t *testing.T) {
	lines := defaultHeaderLines()

	require.Len(t, lines, 3)
	assert.Equal(t, `#[cfg(feature="test_access")]`, lines[0])
	assert.Equal(t, "pub mod test;", lines[1])
	assert.Equal(t, "", lines[2])
}
