package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/internsnow/campus-match/internal/application/intake/match"
	"github.com/internsnow/campus-match/internal/application/internship"
	"github.com/internsnow/campus-match/internal/domain"
	"github.com/internsnow/campus-match/internal/transport/http/dto"
	"github.com/internsnow/campus-match/internal/transport/http/middleware"
	"github.com/internsnow/campus-match/internal/transport/http/response"
	"github.com/internsnow/campus-match/internal/transport/http/validate"
)

type InternshipsHandler struct {
	svc *internship.Service
}

func NewInternshipsHandler(svc *internship.Service) *InternshipsHandler {
	return &InternshipsHandler{svc: svc}
}

func (h *InternshipsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context(), r.URL.Query().Get("company"))
	if err != nil {
		response.Err(w, r, err)
		return
	}
	out := make([]dto.InternshipResp, 0, len(items))
	for _, it := range items {
		out = append(out, dto.ToInternshipResp(it, match.OpportunityDetailsHref(it.ID)))
	}
	response.Data(w, http.StatusOK, out)
}

func (h *InternshipsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := internshipID(w, r)
	if !ok {
		return
	}
	it, err := h.svc.Get(r.Context(), id)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToInternshipResp(it, match.OpportunityDetailsHref(it.ID)))
}

func (h *InternshipsHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.ActorFrom(r.Context())

	var req dto.InternshipReq
	if err := decode(w, r, &req); err != nil {
		response.Err(w, r, err)
		return
	}
	it, err := h.svc.Create(r.Context(), actor, toWriteCmd(req))
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusCreated, dto.ToInternshipResp(it, match.OpportunityDetailsHref(it.ID)))
}

func (h *InternshipsHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.ActorFrom(r.Context())
	id, ok := internshipID(w, r)
	if !ok {
		return
	}

	var req dto.InternshipReq
	if err := decode(w, r, &req); err != nil {
		response.Err(w, r, err)
		return
	}
	it, err := h.svc.Update(r.Context(), actor, id, toWriteCmd(req))
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToInternshipResp(it, match.OpportunityDetailsHref(it.ID)))
}

func (h *InternshipsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.ActorFrom(r.Context())
	id, ok := internshipID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), actor, id); err != nil {
		response.Err(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func internshipID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if !validate.IsUUID(id) {
		response.Err(w, r, domain.ErrInvalidParam("path", "id", "must be uuid"))
		return "", false
	}
	return id, true
}

func toWriteCmd(req dto.InternshipReq) internship.WriteCmd {
	return internship.WriteCmd{
		CompanyName:    req.CompanyName,
		JobDescription: req.JobDescription,
		URL:            req.URL,
	}
}

// decode reads the body and runs the struct tags; domain rules run in the service.
func decode(w http.ResponseWriter, r *http.Request, dst any) error {
	if err := validate.DecodeJSON(w, r, dst); err != nil {
		return err
	}
	return validate.Struct(dst)
}
