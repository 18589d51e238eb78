// File: pkg/combine/patterns.go
package combine

// SelfName is the name of the tool's own binary, excluded in case it was
// built inside the repository being scanned.
const SelfName = "gprepo"

// DefaultIgnorePatterns protects files that add noise rather than context.
// gobwas/glob has no case-insensitive mode, so each word comes as a
// lower/upper pair.
var DefaultIgnorePatterns = []string{
	"*changelog*",
	"*CHANGELOG*",
	".github*",
	".gitignore",
	SelfName,
	"*license*",
	"*LICENSE*",
	"*.lock",
	"*readme*",
	"*README*",
}
