package combine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		ext     string
		content string
		want    string
	}{
		{
			name:    "python indentation collapses to tabs",
			ext:     "py",
			content: "    x = 1\n\n    y = 2\n",
			want:    "\tx = 1\n\ty = 2\n",
		},
		{
			name:    "nested indentation",
			ext:     "yaml",
			content: "a:\n    b:\n        c: 1\n",
			want:    "a:\n\tb:\n\t\tc: 1\n",
		},
		{
			name:    "runs are replaced left to right anywhere in the line",
			ext:     "py",
			content: "     x = [1,    2]\n  two\n",
			want:    "\t x = [1,\t2]\n  two\n",
		},
		{
			name:    "no-indent strips spaces and tabs",
			ext:     "go",
			content: "func main() {\n\t\tx := 1\n    \ty := 2\n}\n",
			want:    "func main() {\nx := 1\ny := 2\n}\n",
		},
		{
			name:    "no-indent drops whitespace-only lines",
			ext:     "rs",
			content: "fn a() {}\n   \n\t\nfn b() {}\n",
			want:    "fn a() {}\nfn b() {}\n",
		},
		{
			name:    "passthrough keeps indentation",
			ext:     "txt",
			content: "  keep\n\n\tthis\n",
			want:    "  keep\n\tthis\n",
		},
		{
			name:    "passthrough keeps whitespace-only lines",
			ext:     "",
			content: "a\n   \nb\n",
			want:    "a\n   \nb\n",
		},
		{
			name:    "extension match is case-sensitive",
			ext:     "PY",
			content: "    x\n",
			want:    "    x\n",
		},
		{
			name:    "missing trailing newline is added",
			ext:     "txt",
			content: "a\nb",
			want:    "a\nb\n",
		},
		{
			name:    "crlf line endings",
			ext:     "md",
			content: "# Title\r\n\r\n  text\r\n",
			want:    "# Title\ntext\n",
		},
		{
			name:    "empty content",
			ext:     "go",
			content: "",
			want:    "",
		},
		{
			name:    "only blank lines",
			ext:     "txt",
			content: "\n\n\n",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.ext, tt.content))
		})
	}
}

func TestNormalize_NoIndentLinesHaveNoLeadingWhitespace(t *testing.T) {
	content := "  a\n\tb\n \t c\n\u00a0d\n"
	for _, line := range strings.Split(strings.TrimSuffix(Normalize("json", content), "\n"), "\n") {
		assert.Equal(t, strings.TrimLeft(line, " \t\u00a0"), line)
	}
}

func TestClassFor(t *testing.T) {
	assert.Equal(t, Significant, ClassFor("py"))
	assert.Equal(t, Significant, ClassFor("haml"))
	assert.Equal(t, NoIndent, ClassFor("go"))
	assert.Equal(t, NoIndent, ClassFor("sed"))
	assert.Equal(t, Passthrough, ClassFor("txt"))
	assert.Equal(t, Passthrough, ClassFor(""))
	assert.Equal(t, "no-indentation", NoIndent.String())
}

func TestExtension(t *testing.T) {
	tests := map[string]string{
		"src/a.py":         "py",
		"a.tar.gz":         "gz",
		".bashrc":          "",
		"config/.env":      "",
		"Makefile":         "",
		"dir.d/Dockerfile": "",
		"trailing.":        "",
		".eslintrc.json":   "json",
	}
	for path, want := range tests {
		assert.Equal(t, want, Extension(path), path)
	}
}

func TestNormalize_InvalidUTF8IsPreserved(t *testing.T) {
	assert.Equal(t, "\t\xff\xfe\n", Normalize("py", "    \xff\xfe\n"))
	assert.Equal(t, "\xffx\n", Normalize("json", "  \xffx\n"))
	assert.Equal(t, "  caf\xe9\n", Normalize("txt", "  caf\xe9\r\n\n"))
}
