package match

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/internsnow/campus-match/internal/domain"
)

const (
	interestMatchBonus   = 2
	interestAlignedBonus = 1
	eventInterestBonus   = 2
)

type Input struct {
	Location  string
	Major     string
	Interests []Interest
}

type OpportunityRecommendation struct {
	ID          string
	CompanyName string
	Description string
	ApplyURL    string
	DetailsHref string
	CreatedAt   time.Time
	Label       Label
	Reasons     []string
	Score       int
}

type EventRecommendation struct {
	ID               string
	Title            string
	Description      string
	Location         string
	Date             string
	Time             string
	DetailsHref      string
	RegistrationLink string
	Reasons          []string
	Score            int
}

type Result struct {
	Opportunities []OpportunityRecommendation
	Events        []EventRecommendation
}

func OpportunityDetailsHref(id string) string { return "/student/find-opportunities/" + id }

func EventDetailsHref(id string) string { return "/student/events/" + id }

// BuildIntakeRecommendations ranks both lists independently.
func BuildIntakeRecommendations(internships []*domain.Internship, events []*domain.Event, in Input) Result {
	return Result{
		Opportunities: BuildOpportunityRecommendations(internships, in),
		Events:        BuildEventRecommendations(events, in),
	}
}

// BuildOpportunityRecommendations scores internships when the visitor asked
// for internships or jobs. Ordered by score, then most recent first.
func BuildOpportunityRecommendations(internships []*domain.Internship, in Input) []OpportunityRecommendation {
	out := []OpportunityRecommendation{}
	wantsInternship := HasInterest(in.Interests, InterestInternship)
	wantsJob := HasInterest(in.Interests, InterestJob)
	if !wantsInternship && !wantsJob {
		return out
	}

	locationTokens := LocationTokens(in.Location)
	majorKeywords := MajorKeywords(in.Major)
	major := strings.TrimSpace(in.Major)

	for _, it := range internships {
		if it == nil {
			continue
		}
		haystack := Normalize(it.CompanyName + " " + it.JobDescription)
		label := Classify(haystack)
		b := ScoreText(haystack, locationTokens, majorKeywords)

		score := b.Score
		var reasons []string
		switch {
		case label == LabelInternship && wantsInternship:
			score += interestMatchBonus
			reasons = append(reasons, "Matches your internship interest.")
		case label == LabelEntryLevelJob && wantsJob:
			score += interestMatchBonus
			reasons = append(reasons, "Matches your job interest.")
		default:
			score += interestAlignedBonus
			reasons = append(reasons, "Aligned with your early-career interests.")
		}
		if b.LocationMatched {
			reasons = append(reasons, "Contains your location keywords.")
		}
		if b.MajorMatchCount > 0 && major != "" {
			reasons = append(reasons, "Related to "+major+".")
		}

		out = append(out, OpportunityRecommendation{
			ID:          it.ID,
			CompanyName: it.CompanyName,
			Description: it.JobDescription,
			ApplyURL:    it.URL,
			DetailsHref: OpportunityDetailsHref(it.ID),
			CreatedAt:   it.CreatedAt,
			Label:       label,
			Reasons:     reasons,
			Score:       score,
		})
	}

	slices.SortStableFunc(out, func(a, b OpportunityRecommendation) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(timestamp(b.CreatedAt), timestamp(a.CreatedAt))
	})
	return out
}

// BuildEventRecommendations scores events when the visitor asked for events.
// Ties keep input order.
func BuildEventRecommendations(events []*domain.Event, in Input) []EventRecommendation {
	out := []EventRecommendation{}
	if !HasInterest(in.Interests, InterestEvent) {
		return out
	}

	locationTokens := LocationTokens(in.Location)
	majorKeywords := MajorKeywords(in.Major)
	major := strings.TrimSpace(in.Major)

	for _, ev := range events {
		if ev == nil {
			continue
		}
		haystack := Normalize(strings.Join([]string{
			ev.Title, ev.Description, ev.Details, ev.Location, strings.Join(ev.Tags, " "),
		}, " "))
		b := ScoreText(haystack, locationTokens, majorKeywords)

		reasons := []string{"Matches your event interest."}
		if b.LocationMatched {
			reasons = append(reasons, "In or near your preferred location.")
		}
		if b.MajorMatchCount > 0 && major != "" {
			reasons = append(reasons, "Relevant to "+major+".")
		}

		out = append(out, EventRecommendation{
			ID:               ev.ID,
			Title:            ev.Title,
			Description:      ev.Description,
			Location:         ev.Location,
			Date:             ev.Date,
			Time:             ev.Time,
			DetailsHref:      EventDetailsHref(ev.ID),
			RegistrationLink: ev.RegistrationLink,
			Reasons:          reasons,
			Score:            b.Score + eventInterestBonus,
		})
	}

	slices.SortStableFunc(out, func(a, b EventRecommendation) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return out
}

// timestamp treats an unset creation time as the epoch so it sorts oldest.
func timestamp(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}
