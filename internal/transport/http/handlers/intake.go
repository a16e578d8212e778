package handlers

import (
	"net/http"
	"strconv"

	"github.com/internsnow/campus-match/internal/application/intake"
	"github.com/internsnow/campus-match/internal/domain"
	"github.com/internsnow/campus-match/internal/transport/http/dto"
	"github.com/internsnow/campus-match/internal/transport/http/response"
	"github.com/internsnow/campus-match/internal/transport/http/validate"
)

type IntakeHandler struct {
	svc *intake.Service
}

func NewIntakeHandler(svc *intake.Service) *IntakeHandler {
	return &IntakeHandler{svc: svc}
}

// Match answers GET /intake?location=&major=&interests=a&interests=b.
func (h *IntakeHandler) Match(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := dto.NewIntakeQuery(q.Get("location"), q.Get("major"), q["interests"])
	if err := validate.Struct(req); err != nil {
		response.Err(w, r, err)
		return
	}

	res, err := h.svc.Match(r.Context(), intake.Query{
		Location:  req.Location,
		Major:     req.Major,
		Interests: req.Interests,
	})
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToIntakeResp(res))
}

func (h *IntakeHandler) Majors(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit := intake.DefaultMajorLimit
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			response.Err(w, r, domain.ErrInvalidParam("query", "limit", "must be a positive integer"))
			return
		}
		limit = n
	}
	response.Data(w, http.StatusOK, map[string]any{
		"query":  q.Get("q"),
		"majors": h.svc.MajorSuggestions(q.Get("q"), limit),
	})
}
