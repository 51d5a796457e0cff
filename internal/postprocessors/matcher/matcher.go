// Package matcher finds literal keywords in text.
//
// Matching is plain substring containment. Callers lower-case both the
// text and the keywords; nothing here folds case. All functions are pure,
// so they may be called from any number of goroutines at once.
package matcher

import "strings"

// Match returns the keywords that occur in text, in keyword order.
func Match(text string, keywords []string) []string {
	var found []string
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			found = append(found, kw)
		}
	}
	return found
}

// Union merges per-chunk matches into one set, ordered as in keywords.
// Matches that are not in keywords are dropped.
func Union(keywords []string, results ...[]string) []string {
	seen := make(map[string]struct{})
	for _, result := range results {
		for _, kw := range result {
			seen[kw] = struct{}{}
		}
	}

	union := make([]string, 0, len(seen))
	for _, kw := range keywords {
		if _, ok := seen[kw]; ok {
			union = append(union, kw)
			delete(seen, kw)
		}
	}
	return union
}
