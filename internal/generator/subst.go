package generator

import (
	"regexp"
	"sort"
)

// placeholderRe matches ${NAME} tokens with shell-style identifier names.
var placeholderRe = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Substitute replaces every ${NAME} placeholder in doc with vars[NAME] in a
// single regex pass. A single pass means values containing further ${...}
// text are never re-substituted, and variable names that are prefixes of one
// another cannot corrupt each other — both real hazards of the sequential
// string-replace approach this supersedes.
//
// Placeholders with no matching variable are left in place and their names
// are returned, sorted and de-duplicated, so the caller can report them.
func Substitute(doc string, vars map[string]string) (string, []string) {
	missingSet := make(map[string]bool)

	out := placeholderRe.ReplaceAllStringFunc(doc, func(tok string) string {
		name := placeholderRe.FindStringSubmatch(tok)[1]
		if v, ok := vars[name]; ok {
			return v
		}
		missingSet[name] = true
		return tok
	})

	missing := make([]string, 0, len(missingSet))
	for name := range missingSet {
		missing = append(missing, name)
	}
	sort.Strings(missing)
	return out, missing
}
