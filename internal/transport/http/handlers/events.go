package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/internsnow/campus-match/internal/application/event"
	"github.com/internsnow/campus-match/internal/application/intake/match"
	"github.com/internsnow/campus-match/internal/domain"
	"github.com/internsnow/campus-match/internal/transport/http/dto"
	"github.com/internsnow/campus-match/internal/transport/http/middleware"
	"github.com/internsnow/campus-match/internal/transport/http/response"
)

const maxEventIDLen = 64

type EventsHandler struct {
	svc *event.Service
}

func NewEventsHandler(svc *event.Service) *EventsHandler {
	return &EventsHandler{svc: svc}
}

// ListLive returns events that are neither archived nor over.
func (h *EventsHandler) ListLive(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListLive(r.Context())
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, toEventResps(items))
}

// ListManage returns everything for admins and the caller's own events otherwise.
func (h *EventsHandler) ListManage(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.ActorFrom(r.Context())
	items, err := h.svc.ListManageable(r.Context(), actor)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, toEventResps(items))
}

func (h *EventsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := eventID(w, r)
	if !ok {
		return
	}
	ev, err := h.svc.Get(r.Context(), id)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToEventResp(ev, match.EventDetailsHref(ev.ID)))
}

func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.ActorFrom(r.Context())

	var req dto.EventReq
	if err := decode(w, r, &req); err != nil {
		response.Err(w, r, err)
		return
	}
	ev, err := h.svc.Create(r.Context(), actor, req.ToInput())
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusCreated, dto.ToEventResp(ev, match.EventDetailsHref(ev.ID)))
}

func (h *EventsHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.ActorFrom(r.Context())
	id, ok := eventID(w, r)
	if !ok {
		return
	}

	var req dto.EventReq
	if err := decode(w, r, &req); err != nil {
		response.Err(w, r, err)
		return
	}
	ev, err := h.svc.Update(r.Context(), actor, id, req.ToInput())
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToEventResp(ev, match.EventDetailsHref(ev.ID)))
}

// Archive soft deletes; the row stays visible to admins in ListManage.
func (h *EventsHandler) Archive(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.ActorFrom(r.Context())
	id, ok := eventID(w, r)
	if !ok {
		return
	}
	ev, err := h.svc.Archive(r.Context(), actor, id)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToEventResp(ev, match.EventDetailsHref(ev.ID)))
}

// Event ids are opaque strings (seeded rows use evt-001), so only shape is checked.
func eventID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" || len(id) > maxEventIDLen {
		response.Err(w, r, domain.ErrInvalidParam("path", "id", "must be a non-empty event id"))
		return "", false
	}
	return id, true
}

func toEventResps(items []*domain.Event) []dto.EventResp {
	out := make([]dto.EventResp, 0, len(items))
	for _, ev := range items {
		out = append(out, dto.ToEventResp(ev, match.EventDetailsHref(ev.ID)))
	}
	return out
}
