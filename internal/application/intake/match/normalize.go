// Package match ranks internships and events for an anonymous intake visitor.
//
// Everything here is pure: no I/O, no shared mutable state. Matching is
// substring containment against a normalized haystack, not token-set
// intersection, so short keywords can match inside longer words.
package match

import "strings"

type majorHint struct {
	aliases  []string
	keywords []string
}

// majorHints maps a free-text major to domain keywords. A group applies when
// the normalized major contains any alias as a substring.
var majorHints = []majorHint{
	{
		aliases: []string{"computer science", "software", "it", "information technology"},
		keywords: []string{
			"software", "developer", "engineering", "frontend", "backend", "api",
			"react", "typescript", "data", "ai", "cybersecurity", "python",
		},
	},
	{
		aliases: []string{"data science", "analytics", "statistics", "math"},
		keywords: []string{
			"data", "analytics", "machine learning", "python", "sql", "tableau",
			"visualization", "reporting",
		},
	},
	{
		aliases: []string{"marketing", "communications", "media"},
		keywords: []string{
			"marketing", "campaign", "social media", "content", "brand",
			"communications", "growth",
		},
	},
	{
		aliases: []string{"finance", "accounting", "economics"},
		keywords: []string{
			"finance", "financial", "budget", "accounting", "analyst", "consulting",
			"excel", "client",
		},
	},
	{
		aliases: []string{"business", "management", "operations"},
		keywords: []string{
			"operations", "strategy", "management", "consulting", "business",
			"supply chain", "logistics", "process",
		},
	},
	{
		aliases:  []string{"design", "ux", "ui", "product"},
		keywords: []string{"design", "ux", "ui", "product", "creative", "portfolio", "prototype"},
	},
	{
		aliases:  []string{"health", "biology", "pre-med", "medicine"},
		keywords: []string{"health", "healthcare", "clinical", "biology", "medical", "research"},
	},
}

// Normalize trims and lowercases text.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

func isTokenRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '+' || r == '#'
}

// Tokenize splits normalized text on every run of characters outside
// [a-z0-9+#] and returns the unique tokens in first-occurrence order.
func Tokenize(text string) []string {
	return unique(strings.FieldsFunc(Normalize(text), func(r rune) bool { return !isTokenRune(r) }))
}

// LocationTokens returns the tokens of a location that are at least two characters long.
func LocationTokens(location string) []string {
	tokens := Tokenize(location)
	out := tokens[:0]
	for _, t := range tokens {
		if len(t) >= 2 {
			out = append(out, t)
		}
	}
	return out
}

// MajorKeywords returns the major's own tokens followed by the keywords of
// every hint group whose alias appears in it.
func MajorKeywords(major string) []string {
	normalized := Normalize(major)
	if normalized == "" {
		return []string{}
	}

	keywords := Tokenize(major)
	for _, hint := range majorHints {
		if containsAny(normalized, hint.aliases) {
			keywords = append(keywords, hint.keywords...)
		}
	}
	return unique(keywords)
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

func unique(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
