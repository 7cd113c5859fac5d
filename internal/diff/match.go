package diff

import (
	"regexp"
	"strings"
)

// Matches reports whether path matches a glob-style pattern.
// Supported syntax: '*' matches any run of characters except '/',
// '**' matches any run of characters including '/', and '?' matches
// exactly one character except '/'. Everything else is literal.
// The whole path must match the whole pattern.
func Matches(path, pattern string) bool {
	re, err := regexp.Compile(translatePattern(pattern))
	if err != nil {
		// QuoteMeta makes this unreachable for any pattern input,
		// but a broken pattern should never reject the whole call
		return false
	}
	return re.MatchString(path)
}

// translatePattern converts a glob pattern into an anchored regular expression.
// Literal runs are escaped so regex metacharacters in patterns stay literal.
func translatePattern(pattern string) string {
	var b strings.Builder
	b.WriteString("^")

	for i := 0; i < len(pattern); {
		switch pattern[i] {
		case '*':
			if i+1 < len(pattern) && pattern[i+1] == '*' {
				b.WriteString(".*")
				i += 2
			} else {
				b.WriteString("[^/]*")
				i++
			}
		case '?':
			b.WriteString("[^/]")
			i++
		default:
			// Consume the literal run up to the next wildcard
			j := i
			for j < len(pattern) && pattern[j] != '*' && pattern[j] != '?' {
				j++
			}
			b.WriteString(regexp.QuoteMeta(pattern[i:j]))
			i = j
		}
	}

	b.WriteString("$")
	return b.String()
}

// ShouldKeep decides whether a file path survives the include/exclude
// pattern lists. Exclude patterns always win over include patterns.
// A non-empty include list acts as a whitelist; with no patterns at all
// every path is kept.
func ShouldKeep(path string, includePatterns, excludePatterns []string) bool {
	for _, pattern := range excludePatterns {
		if Matches(path, pattern) {
			return false
		}
	}

	if len(includePatterns) > 0 {
		for _, pattern := range includePatterns {
			if Matches(path, pattern) {
				return true
			}
		}
		return false
	}

	return true
}
