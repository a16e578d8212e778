package match

type Label string

const (
	LabelInternship    Label = "Internship"
	LabelEntryLevelJob Label = "Entry-Level Job"
)

var internshipSignals = []string{"intern", "internship", "co-op", "co op", "student", "campus"}

// Classify labels a normalized haystack. Any signal substring makes it an internship.
func Classify(haystack string) Label {
	if containsAny(haystack, internshipSignals) {
		return LabelInternship
	}
	return LabelEntryLevelJob
}
