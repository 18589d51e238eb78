package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gprepo/pkg/combine"
	"gprepo/pkg/version"

	"github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestRepo creates a git repository whose files predate the run.
func newTestRepo(t *testing.T, files map[string]string) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	past := time.Now().Add(-time.Hour)
	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		require.NoError(t, os.Chtimes(path, past, past))
	}
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(zap.NewNop())
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

var scenarioFiles = map[string]string{
	".gitignore":  "build/\n",
	"src/a.py":    "    x = 1\n\n    y = 2\n",
	"build/out.o": "\x7fELF\x00",
	"README.md":   "# readme\n",
}

func TestRoot_WritesToStdout(t *testing.T) {
	dir := newTestRepo(t, scenarioFiles)

	out, err := execute(t, "--repo-path", dir)

	require.NoError(t, err)
	want := combine.DefaultPreamble + "\n" +
		"@@@@src/a.py@@@@\n\tx = 1\n\ty = 2\n\n" +
		"@@@@END@@@@\n"
	assert.Equal(t, want, out)
}

func TestRoot_RepoPathFromSubdirectory(t *testing.T) {
	dir := newTestRepo(t, scenarioFiles)

	out, err := execute(t, "-r", filepath.Join(dir, "src"))

	require.NoError(t, err)
	assert.Contains(t, out, "@@@@src/a.py@@@@")
}

func TestRoot_RepoPathThroughSymlink(t *testing.T) {
	dir := newTestRepo(t, scenarioFiles)
	link := filepath.Join(t.TempDir(), "checkout")
	require.NoError(t, os.Symlink(dir, link))

	direct, err := execute(t, "-r", dir)
	require.NoError(t, err)
	viaLink, err := execute(t, "-r", link)
	require.NoError(t, err)

	assert.Contains(t, viaLink, "@@@@src/a.py@@@@")
	assert.Equal(t, direct, viaLink)
}

func TestRoot_OutputFileInsideRepository(t *testing.T) {
	dir := newTestRepo(t, scenarioFiles)
	outPath := filepath.Join(dir, "context.txt")

	stdout, err := execute(t, "-r", dir, "-o", outPath)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	first, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.NotContains(t, string(first), "context.txt")
	assert.True(t, strings.HasSuffix(string(first), "@@@@END@@@@\n"))

	// A second run must not pick up the first run's output.
	_, err = execute(t, "-r", dir, "-o", outPath)
	require.NoError(t, err)
	second, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestRoot_PreambleFile(t *testing.T) {
	dir := newTestRepo(t, scenarioFiles)
	preamble := filepath.Join(t.TempDir(), "preamble.txt")
	require.NoError(t, os.WriteFile(preamble, []byte("Review this code."), 0o644))

	out, err := execute(t, "-r", dir, "-p", preamble)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Review this code.\n@@@@src/a.py@@@@\n"))
}

func TestRoot_IgnoreFlags(t *testing.T) {
	dir := newTestRepo(t, map[string]string{
		"a.go":        "package a\n",
		"b.txt":       "b\n",
		"gen/c.proto": "syntax = \"proto3\";\n",
	})

	out, err := execute(t, "-r", dir, "-i", "*.txt", "--ignore", "gen/{a,c}.proto")

	require.NoError(t, err)
	assert.Contains(t, out, "@@@@a.go@@@@")
	assert.NotContains(t, out, "b.txt")
	assert.NotContains(t, out, "c.proto")
}

func TestRoot_IgnoreFromEnvironment(t *testing.T) {
	dir := newTestRepo(t, map[string]string{"a.go": "package a\n", "b.txt": "b\n"})
	t.Setenv(envIgnore, "*.txt, *.md")
	t.Setenv(envRepoPath, dir)

	out, err := execute(t)

	require.NoError(t, err)
	assert.Contains(t, out, "@@@@a.go@@@@")
	assert.NotContains(t, out, "b.txt")
}

func TestRoot_FatalConfigurationErrorsLeaveOutputUntouched(t *testing.T) {
	dir := newTestRepo(t, scenarioFiles)
	outPath := filepath.Join(t.TempDir(), "out.txt")

	_, err := execute(t, "-r", dir, "-o", outPath, "-p", filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "preamble")
	assert.NoFileExists(t, outPath)

	_, err = execute(t, "-r", dir, "-o", outPath, "-i", "src/[")
	var patternErr *combine.PatternError
	require.ErrorAs(t, err, &patternErr)
	assert.NoFileExists(t, outPath)
}

func TestRoot_NotARepository(t *testing.T) {
	_, err := execute(t, "-r", t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not find repository")
}

func TestTreeCmd(t *testing.T) {
	dir := newTestRepo(t, map[string]string{
		"src/a.py":    "x\n",
		"src/b/c.go":  "package b\n",
		"LICENSE":     "MIT\n",
		"main.go":     "package main\n",
		"build/x.bin": "\x00",
	})

	out, err := execute(t, "tree", "-r", dir)

	require.NoError(t, err)
	want := filepath.Base(dir) + "/\n" +
		"├── src/\n" +
		"│   ├── b/\n" +
		"│   │   └── c.go\n" +
		"│   └── a.py\n" +
		"└── main.go\n"
	assert.Equal(t, want, out)
}

func TestVersionCmd(t *testing.T) {
	want := version.Get().Version

	out, err := execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, want+"\n", out)

	out, err = execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "gprepo version "+want+" (commit: "))
}
