package match

type Interest string

const (
	InterestInternship Interest = "internship"
	InterestJob        Interest = "job"
	InterestEvent      Interest = "event"
)

// DefaultInterests is what callers fall back to when nothing was selected.
func DefaultInterests() []Interest {
	return []Interest{InterestInternship, InterestJob, InterestEvent}
}

// ParseIntakeInterests keeps the recognised values of raw (case-insensitive,
// trimmed) in first-occurrence order without duplicates. It never defaults:
// nil or all-unknown input yields an empty slice.
func ParseIntakeInterests(raw []string) []Interest {
	parsed := make([]Interest, 0, len(raw))
	for _, v := range raw {
		i := Interest(Normalize(v))
		switch i {
		case InterestInternship, InterestJob, InterestEvent:
		default:
			continue
		}
		if !HasInterest(parsed, i) {
			parsed = append(parsed, i)
		}
	}
	return parsed
}

func HasInterest(interests []Interest, want Interest) bool {
	for _, i := range interests {
		if i == want {
			return true
		}
	}
	return false
}
