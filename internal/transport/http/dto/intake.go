package dto

import (
	"time"

	"github.com/internsnow/campus-match/internal/application/intake"
	"github.com/internsnow/campus-match/internal/application/intake/match"
)

// MaxIntakeInterests caps how many raw interests values are read; the rest are ignored.
const MaxIntakeInterests = 100

// IntakeQuery bounds the free text a visitor can send. Interests are never
// rejected: unknown values are dropped when parsed.
type IntakeQuery struct {
	Location  string   `json:"location" validate:"max=200"`
	Major     string   `json:"major" validate:"max=200"`
	Interests []string `json:"interests"`
}

func NewIntakeQuery(location, major string, interests []string) IntakeQuery {
	if len(interests) > MaxIntakeInterests {
		interests = interests[:MaxIntakeInterests]
	}
	return IntakeQuery{Location: location, Major: major, Interests: interests}
}

type OpportunityRecResp struct {
	ID          string    `json:"id"`
	CompanyName string    `json:"company_name"`
	Description string    `json:"description"`
	ApplyURL    string    `json:"apply_url"`
	DetailsHref string    `json:"details_href"`
	CreatedAt   time.Time `json:"created_at"`
	Label       string    `json:"label"`
	Reasons     []string  `json:"reasons"`
	Score       int       `json:"score"`
}

type EventRecResp struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Location         string   `json:"location"`
	Date             string   `json:"date"`
	Time             string   `json:"time"`
	DetailsHref      string   `json:"details_href"`
	RegistrationLink string   `json:"registration_link"`
	Reasons          []string `json:"reasons"`
	Score            int      `json:"score"`
}

type IntakeResp struct {
	Location             string               `json:"location"`
	Major                string               `json:"major"`
	Interests            []string             `json:"interests"`
	UsedDefaultInterests bool                 `json:"used_default_interests"`
	Opportunities        []OpportunityRecResp `json:"opportunities"`
	Events               []EventRecResp       `json:"events"`
}

func ToIntakeResp(r intake.Response) IntakeResp {
	out := IntakeResp{
		Location:             r.Location,
		Major:                r.Major,
		Interests:            make([]string, 0, len(r.Interests)),
		UsedDefaultInterests: r.UsedDefaultInterests,
		Opportunities:        make([]OpportunityRecResp, 0, len(r.Opportunities)),
		Events:               make([]EventRecResp, 0, len(r.Events)),
	}
	for _, i := range r.Interests {
		out.Interests = append(out.Interests, string(i))
	}
	for _, o := range r.Opportunities {
		out.Opportunities = append(out.Opportunities, toOpportunityRec(o))
	}
	for _, e := range r.Events {
		out.Events = append(out.Events, toEventRec(e))
	}
	return out
}

func toOpportunityRec(o match.OpportunityRecommendation) OpportunityRecResp {
	return OpportunityRecResp{
		ID:          o.ID,
		CompanyName: o.CompanyName,
		Description: o.Description,
		ApplyURL:    o.ApplyURL,
		DetailsHref: o.DetailsHref,
		CreatedAt:   o.CreatedAt,
		Label:       string(o.Label),
		Reasons:     nonNil(o.Reasons),
		Score:       o.Score,
	}
}

func toEventRec(e match.EventRecommendation) EventRecResp {
	return EventRecResp{
		ID:               e.ID,
		Title:            e.Title,
		Description:      e.Description,
		Location:         e.Location,
		Date:             e.Date,
		Time:             e.Time,
		DetailsHref:      e.DetailsHref,
		RegistrationLink: e.RegistrationLink,
		Reasons:          nonNil(e.Reasons),
		Score:            e.Score,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
