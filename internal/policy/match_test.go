package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesPattern(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		branch  string
		want    bool
	}{
		{name: "hotfix prefix", pattern: "hotfix/*", branch: "hotfix/urgent-123", want: true},
		{name: "feature prefix", pattern: "feature/*", branch: "feature/login", want: true},
		{name: "star crosses slashes", pattern: "feature/*", branch: "feature/auth/login", want: true},
		{name: "full name must match", pattern: "feature/*", branch: "my-feature/x", want: false},
		{name: "no trailing remainder", pattern: "*-release", branch: "v2-release-rc1", want: false},
		{name: "literal pattern", pattern: "main", branch: "main", want: true},
		{name: "literal mismatch", pattern: "main", branch: "maint", want: false},
		{name: "suffix pattern", pattern: "*/urgent", branch: "hotfix/urgent", want: true},
		{name: "middle star", pattern: "release/*/final", branch: "release/2024/q3/final", want: true},
		{name: "multiple stars", pattern: "*fix*", branch: "hotfix/urgent", want: true},
		{name: "bare star matches everything", pattern: "*", branch: "anything/at/all", want: true},
		{name: "empty pattern matches nothing", pattern: "", branch: "main", want: false},
		{name: "empty branch against prefix", pattern: "hotfix/*", branch: "", want: false},
		{name: "case sensitive", pattern: "hotfix/*", branch: "Hotfix/x", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesPattern(tt.pattern, tt.branch))
		})
	}
}
