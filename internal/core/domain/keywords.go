package domain

import "strings"

// DefaultKeywords is the built-in keyword list used when no other list
// is configured.
var DefaultKeywords = []string{
	"Java", "Spring", "Spring boot", "Javascript", "TypeScript",
	"SQL", "MySql",
}

// KeywordSet is an ordered list of lower-case keywords.
type KeywordSet []string

// NewKeywordSet normalises raw keywords: each is trimmed and lower-cased,
// empty entries are dropped and duplicates collapse to their first occurrence.
func NewKeywordSet(raw ...string) KeywordSet {
	seen := make(map[string]struct{}, len(raw))
	set := make(KeywordSet, 0, len(raw))
	for _, kw := range raw {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if _, ok := seen[kw]; ok {
			continue
		}
		seen[kw] = struct{}{}
		set = append(set, kw)
	}
	return set
}

// MaxLen returns the length in runes of the longest keyword.
func (k KeywordSet) MaxLen() int {
	longest := 0
	for _, kw := range k {
		if n := len([]rune(kw)); n > longest {
			longest = n
		}
	}
	return longest
}
