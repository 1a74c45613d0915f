package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"modlift.dev/pkg/modlift/internal/controller"
	domainmocks "modlift.dev/pkg/modlift/internal/domain/mocks"
	m "modlift.dev/pkg/modlift/internal/model"
)

func TestPlanCmd_TableFormat(t *testing.T) {
	mockRestructurer := domainmocks.NewMockRestructurer(t)

	out := &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.AddCommand(newPlanCmd())
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	originalRestructurer := restructurer
	originalUI := ui
	restructurer = mockRestructurer
	ui = controller.NewSimpleUI(cmd)
	defer func() {
		restructurer = originalRestructurer
		ui = originalUI
	}()

	candidates := []m.Candidate{
		{Source: "tree/foo.rs", Stem: "foo", ModuleDir: "/abs/tree/foo"},
		{Source: "tree/sub/bar.rs", Stem: "bar", ModuleDir: "/abs/tree/sub/bar"},
	}

	mockRestructurer.On("Plan", mock.Anything, mock.Anything).Return(candidates, nil)

	cmd.SetArgs([]string{"plan", "./tree"})
	err := cmd.Execute()
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "tree/foo.rs")
	assert.Contains(t, output, "/abs/tree/sub/bar")
}

func TestPlanCmd_YAMLFormat(t *testing.T) {
	mockRestructurer := domainmocks.NewMockRestructurer(t)

	out := &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.AddCommand(newPlanCmd())
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	originalRestructurer := restructurer
	restructurer = mockRestructurer
	defer func() { restructurer = originalRestructurer }()

	candidates := []m.Candidate{
		{
			Source:     "tree/foo.rs",
			Stem:       "foo",
			ModuleDir:  "/abs/tree/foo",
			ModulePath: "/abs/tree/foo/mod.rs",
			TestPath:   "/abs/tree/foo/test.rs",
		},
	}

	mockRestructurer.On("Plan", mock.Anything, mock.Anything).Return(candidates, nil)

	cmd.SetArgs([]string{"plan", "--format", "yaml", "./tree"})
	err := cmd.Execute()
	require.NoError(t, err)

	var doc planDocument
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &doc))

	assert.Equal(t, "./tree", doc.Root)
	require.Len(t, doc.Candidates, 1)
	assert.Equal(t, "tree/foo.rs", doc.Candidates[0].Source)
	assert.Equal(t, "/abs/tree/foo", doc.Candidates[0].ModuleDir)
	assert.Equal(t, "/abs/tree/foo/mod.rs", doc.Candidates[0].ModulePath)
	assert.Equal(t, "/abs/tree/foo/test.rs", doc.Candidates[0].TestPath)
}

func TestPlanCmd_UnknownFormat(t *testing.T) {
	mockRestructurer := domainmocks.NewMockRestructurer(t)

	cmd := newRootCmd()
	cmd.AddCommand(newPlanCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalRestructurer := restructurer
	restructurer = mockRestructurer
	defer func() { restructurer = originalRestructurer }()

	mockRestructurer.On("Plan", mock.Anything, mock.Anything).Return([]m.Candidate{}, nil)

	cmd.SetArgs([]string{"plan", "--format", "json", "./tree"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown plan format")
}

func TestPlanCmd_DiffPreviewsHeader(t *testing.T) {
	root := t.TempDir()
	sourcePath := filepath.Join(root, "foo.rs")
	require.NoError(t, os.WriteFile(sourcePath, []byte("fn x(){}\n"), 0o644))

	mockRestructurer := domainmocks.NewMockRestructurer(t)

	out := &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.AddCommand(newPlanCmd())
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	originalRestructurer := restructurer
	originalUI := ui
	restructurer = mockRestructurer
	ui = controller.NewSimpleUI(cmd)
	defer func() {
		restructurer = originalRestructurer
		ui = originalUI
	}()

	candidates := []m.Candidate{
		{
			Source:     m.Path(sourcePath),
			Stem:       "foo",
			ModuleDir:  m.Path(filepath.Join(root, "foo")),
			ModulePath: m.Path(filepath.Join(root, "foo", "mod.rs")),
		},
	}

	mockRestructurer.On("Plan", mock.Anything, mock.Anything).Return(candidates, nil)

	cmd.SetArgs([]string{"plan", "--diff", root})
	err := cmd.Execute()
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "+pub mod test;")
	assert.Contains(t, output, `+#[cfg(feature="test_access")]`)
	assert.Contains(t, output, " fn x(){}")
}
