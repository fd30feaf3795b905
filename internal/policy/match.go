package policy

import "strings"

// MatchesPattern reports whether branch matches the glob-style pattern. Only
// `*` is special and matches any substring of the branch name, including
// slashes. The whole name must match, so `feature/*` does not match
// `my-feature/x`. An empty pattern matches nothing.
func MatchesPattern(pattern, branch string) bool {
	if pattern == "" {
		return false
	}

	parts := strings.Split(pattern, "*")
	if len(parts) == 1 {
		return pattern == branch
	}

	if !strings.HasPrefix(branch, parts[0]) {
		return false
	}
	rest := branch[len(parts[0]):]

	for _, part := range parts[1 : len(parts)-1] {
		idx := strings.Index(rest, part)
		if idx < 0 {
			return false
		}
		rest = rest[idx+len(part):]
	}

	return strings.HasSuffix(rest, parts[len(parts)-1])
}
