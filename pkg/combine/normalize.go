// File: pkg/combine/normalize.go
package combine

import (
	"path/filepath"
	"strings"
	"unicode"
)

// WhitespaceClass selects how leading whitespace is treated for a file type.
type WhitespaceClass int

const (
	// Passthrough leaves lines untouched.
	Passthrough WhitespaceClass = iota
	// Significant collapses every run of four spaces into a tab.
	Significant
	// NoIndent strips leading whitespace.
	NoIndent
)

func (c WhitespaceClass) String() string {
	switch c {
	case Significant:
		return "significant-whitespace"
	case NoIndent:
		return "no-indentation"
	default:
		return "passthrough"
	}
}

var extensionPolicy = buildPolicy(map[WhitespaceClass][]string{
	Significant: {
		"py", "nim", "hs", "yml", "yaml", "coffee", "jade", "pug", "slim", "sass", "haml",
	},
	NoIndent: {
		"rs", "js", "ts", "c", "cpp", "h", "hpp", "java", "go", "cs", "rb", "php", "swift", "kt",
		"kts", "scala", "groovy", "fs", "fsx", "clj", "cljs", "edn", "lisp", "el", "scm", "ss",
		"rkt", "jl", "lua", "tcl", "pl", "pm", "elm", "erl", "hrl", "v", "sv", "svh", "html",
		"css", "scss", "less", "json", "xml", "sql", "md", "toml", "ini", "conf", "cfg", "sh",
		"bash", "zsh", "ps1", "awk", "sed",
	},
})

func buildPolicy(classes map[WhitespaceClass][]string) map[string]WhitespaceClass {
	policy := make(map[string]WhitespaceClass)
	for class, exts := range classes {
		for _, ext := range exts {
			policy[ext] = class
		}
	}
	return policy
}

// ClassFor returns the whitespace class for a case-sensitive extension
// without its leading dot.
func ClassFor(ext string) WhitespaceClass {
	return extensionPolicy[ext]
}

// Extension returns the text after the last dot of the base name. Names
// without a dot and dotfiles such as ".bashrc" have no extension.
func Extension(path string) string {
	base := filepath.Base(path)
	idx := strings.LastIndexByte(base, '.')
	if idx <= 0 {
		return ""
	}
	return base[idx+1:]
}

// Normalize rewrites content according to the class of ext, drops lines
// that end up empty, and terminates every retained line with '\n'.
func Normalize(ext, content string) string {
	transform := lineTransform(ClassFor(ext))

	var b strings.Builder
	b.Grow(len(content))
	for _, line := range strings.Split(content, "\n") {
		line = transform(strings.TrimSuffix(line, "\r"))
		if line == "" {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func lineTransform(class WhitespaceClass) func(string) string {
	switch class {
	case Significant:
		return func(line string) string { return strings.ReplaceAll(line, "    ", "\t") }
	case NoIndent:
		return func(line string) string { return strings.TrimLeftFunc(line, unicode.IsSpace) }
	default:
		return func(line string) string { return line }
	}
}
