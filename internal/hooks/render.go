package hooks

import "strings"

const scriptTemplate = `#!/bin/sh
` + Marker + `
# {hook} hook installed by git-vcs. Do not edit this file.

cd {cd} || exit 1

if ! grep -q '"{script}"[[:space:]]*:' package.json 2>/dev/null; then
  exit 0
fi

export GIT_PARAMS="$*"
npm run {script}
`

// Render returns the hook script for spec. prefix is the slash-separated
// path from the working tree root to the project root ("." for the root).
func Render(spec Spec, prefix string) string {
	if prefix == "" {
		prefix = "."
	}
	r := strings.NewReplacer(
		"{hook}", spec.Name,
		"{script}", spec.Script,
		"{cd}", quoteIfNeeded(prefix),
	)
	return r.Replace(scriptTemplate)
}

// shellQuote escapes a string for safe use in shell commands.
// e.g., "it's" becomes 'it'\''s'
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "'\\''") + "'"
}

// quoteIfNeeded leaves plain paths readable and quotes everything else.
func quoteIfNeeded(s string) string {
	for _, r := range s {
		if !isSafePathRune(r) {
			return shellQuote(s)
		}
	}
	return s
}

func isSafePathRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	return strings.ContainsRune("_./@+-", r)
}
