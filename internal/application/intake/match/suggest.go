package match

import "strings"

// MajorSuggestions returns display names of the known major aliases that
// start with or contain query, prefix matches first.
func MajorSuggestions(query string, limit int) []string {
	q := Normalize(query)
	var prefix, contains []string
	seen := map[string]struct{}{}
	for _, hint := range majorHints {
		for _, alias := range hint.aliases {
			if _, ok := seen[alias]; ok {
				continue
			}
			seen[alias] = struct{}{}
			switch {
			case strings.HasPrefix(alias, q):
				prefix = append(prefix, displayMajor(alias))
			case strings.Contains(alias, q):
				contains = append(contains, displayMajor(alias))
			}
		}
	}
	out := append(prefix, contains...)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	if out == nil {
		out = []string{}
	}
	return out
}

func displayMajor(alias string) string {
	if len(alias) <= 2 {
		return strings.ToUpper(alias)
	}
	words := strings.Fields(alias)
	for i, w := range words {
		parts := strings.Split(w, "-")
		for j, p := range parts {
			if p != "" {
				parts[j] = strings.ToUpper(p[:1]) + p[1:]
			}
		}
		words[i] = strings.Join(parts, "-")
	}
	return strings.Join(words, " ")
}
