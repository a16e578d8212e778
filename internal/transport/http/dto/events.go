package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/internsnow/campus-match/internal/domain"
)

// EventReq is the create/update payload. Tags may be a JSON array or a
// comma separated string, and the link is accepted as registration_link or
// registrationLink.
type EventReq struct {
	Title            string     `json:"title"`
	Date             string     `json:"date"`
	Time             string     `json:"time"`
	Location         string     `json:"location"`
	Description      string     `json:"description"`
	Details          string     `json:"details"`
	Host             string     `json:"host"`
	Price            string     `json:"price"`
	RegistrationLink string     `json:"registration_link"`
	Tags             TagList    `json:"tags" validate:"max=50,dive,max=64"`
	EndsAt           *time.Time `json:"ends_at,omitempty"`
}

func (r *EventReq) UnmarshalJSON(b []byte) error {
	type plain EventReq
	aux := struct {
		*plain
		RegistrationLinkCamel string `json:"registrationLink"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if strings.TrimSpace(r.RegistrationLink) == "" {
		r.RegistrationLink = aux.RegistrationLinkCamel
	}
	return nil
}

func (r EventReq) ToInput() domain.EventInput {
	return domain.EventInput{
		Title:            r.Title,
		Date:             r.Date,
		Time:             r.Time,
		Location:         r.Location,
		Description:      r.Description,
		Details:          r.Details,
		Host:             r.Host,
		Price:            r.Price,
		RegistrationLink: r.RegistrationLink,
		Tags:             []string(r.Tags),
		EndsAt:           r.EndsAt,
	}
}

// TagList decodes from ["a","b"] or "a, b".
type TagList []string

func (t *TagList) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*t = nil
		return nil
	}
	var list []string
	if err := json.Unmarshal(b, &list); err == nil {
		*t = list
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*t = strings.Split(s, ",")
	return nil
}

type EventResp struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Date             string     `json:"date"`
	Time             string     `json:"time"`
	Location         string     `json:"location"`
	Description      string     `json:"description"`
	Details          string     `json:"details"`
	Host             string     `json:"host"`
	Price            string     `json:"price"`
	RegistrationLink string     `json:"registration_link"`
	Tags             []string   `json:"tags"`
	EndsAt           *time.Time `json:"ends_at,omitempty"`
	DetailsHref      string     `json:"details_href"`

	CreatedBy      *string    `json:"created_by,omitempty"`
	CreatedByEmail *string    `json:"created_by_email,omitempty"`
	DeletedAt      *time.Time `json:"deleted_at,omitempty"`
	DeletedBy      *string    `json:"deleted_by,omitempty"`
	Archived       bool       `json:"archived"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToEventResp(e *domain.Event, detailsHref string) EventResp {
	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}
	return EventResp{
		ID:               e.ID,
		Title:            e.Title,
		Date:             e.Date,
		Time:             e.Time,
		Location:         e.Location,
		Description:      e.Description,
		Details:          e.Details,
		Host:             e.Host,
		Price:            e.Price,
		RegistrationLink: e.RegistrationLink,
		Tags:             tags,
		EndsAt:           e.EndsAt,
		DetailsHref:      detailsHref,
		CreatedBy:        e.CreatedBy,
		CreatedByEmail:   e.CreatedByEmail,
		DeletedAt:        e.DeletedAt,
		DeletedBy:        e.DeletedBy,
		Archived:         e.IsArchived(),
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}
