package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projeto-tutor/tutor/internal/cli/config"
	"github.com/projeto-tutor/tutor/internal/cli/testutil"
)

func TestRootCmd_Subcommands(t *testing.T) {
	root := NewRootCmd()

	for _, name := range []string{"serve", "build", "render", "init", "version", "completion"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestRootCmd_Render(t *testing.T) {
	testutil.SetupTestProject(t, "site:\n  title: Tutor Teste\n")

	res := testutil.Execute(t, NewRootCmd(), "render", "--lang", "en")
	require.NoError(t, res.Err)

	assert.Contains(t, res.Stdout, "<title>Tutor Teste</title>")
	assert.Contains(t, res.Stdout, `lang="en"`)
}

func TestRootCmd_RenderMarkdown(t *testing.T) {
	testutil.SetupTestProject(t, "")

	res := testutil.Execute(t, NewRootCmd(), "render", "--format", "markdown")
	require.NoError(t, res.Err)

	assert.NotContains(t, res.Stdout, "<section")
	testutil.AssertNoANSI(t, res.Stdout)
}

func TestRootCmd_Build(t *testing.T) {
	dir := testutil.SetupTestProject(t, "export:\n  out_dir: public\n")

	res := testutil.Execute(t, NewRootCmd(), "build", "--markdown")
	require.NoError(t, res.Err)

	assert.FileExists(t, filepath.Join(dir, "public", "index.html"))
	assert.FileExists(t, filepath.Join(dir, "public", "index.md"))
	assert.FileExists(t, filepath.Join(dir, "public", "static", "tutor.css"))
	assert.Contains(t, res.Stdout, "index.md")
}

func TestRootCmd_BuildFlagOverridesFile(t *testing.T) {
	dir := testutil.SetupTestProject(t, "export:\n  out_dir: public\n")

	res := testutil.Execute(t, NewRootCmd(), "build", "--out", "site")
	require.NoError(t, res.Err)

	assert.FileExists(t, filepath.Join(dir, "site", "index.html"))
	assert.NoDirExists(t, filepath.Join(dir, "public"))
}

func TestRootCmd_Init(t *testing.T) {
	dir := testutil.SetupTestProject(t, "")

	res := testutil.Execute(t, NewRootCmd(), "init")
	require.NoError(t, res.Err)

	data, err := os.ReadFile(filepath.Join(dir, "tutor.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "contact_email")
}

func TestRootCmd_InvalidConfig(t *testing.T) {
	testutil.SetupTestProject(t, "server:\n  port: -1\n")

	res := testutil.Execute(t, NewRootCmd(), "render")
	require.ErrorIs(t, res.Err, config.ErrInvalidPort)
}

func TestRootCmd_VerboseLogsToStderr(t *testing.T) {
	testutil.SetupTestProject(t, "lang: pt-BR\n")

	res := testutil.Execute(t, NewRootCmd(), "render", "-v")
	require.NoError(t, res.Err)

	assert.Contains(t, res.Stderr, "using config file")
	assert.NotContains(t, res.Stdout, "using config file")
}

func TestCompletionCommand(t *testing.T) {
	res := testutil.Execute(t, NewRootCmd(), "completion", "bash")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "tutor")

	res = testutil.Execute(t, NewRootCmd(), "completion", "tcsh")
	require.Error(t, res.Err)
}
