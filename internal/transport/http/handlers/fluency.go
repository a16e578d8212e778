package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/internsnow/campus-match/internal/application/fluency"
	"github.com/internsnow/campus-match/internal/domain"
	"github.com/internsnow/campus-match/internal/transport/http/dto"
	"github.com/internsnow/campus-match/internal/transport/http/middleware"
	"github.com/internsnow/campus-match/internal/transport/http/response"
)

type FluencyHandler struct {
	svc *fluency.Service
}

func NewFluencyHandler(svc *fluency.Service) *FluencyHandler {
	return &FluencyHandler{svc: svc}
}

// Questions draws a quiz. Answers are stripped from the response.
func (h *FluencyHandler) Questions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	count := 0
	if raw := q.Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			response.Err(w, r, domain.ErrInvalidParam("query", "count", "must be a positive integer"))
			return
		}
		count = n
	}
	items, err := h.svc.Draw(r.Context(), count, q.Get("difficulty"))
	if err != nil {
		response.Err(w, r, err)
		return
	}
	out := make([]dto.FluencyQuestionResp, 0, len(items))
	for _, it := range items {
		out = append(out, dto.ToFluencyQuestionResp(it))
	}
	response.Data(w, http.StatusOK, out)
}

func (h *FluencyHandler) Submit(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.ActorFrom(r.Context())

	var req dto.FluencySubmitReq
	if err := decode(w, r, &req); err != nil {
		response.Err(w, r, err)
		return
	}
	res, err := h.svc.Submit(r.Context(), actor, fluency.Submission{
		QuestionIDs: req.QuestionIDs,
		Answers:     req.Answers,
	})
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, res)
}

func (h *FluencyHandler) Results(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.ActorFrom(r.Context())
	items, err := h.svc.Results(r.Context(), actor)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, items)
}

func (h *FluencyHandler) Latest(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.ActorFrom(r.Context())
	res, err := h.svc.Latest(r.Context(), actor)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, res)
}

func (h *FluencyHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.ActorFrom(r.Context())
	items, err := h.svc.ListQuestions(r.Context(), actor, r.URL.Query().Get("category"))
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, items)
}

func (h *FluencyHandler) AdminCreate(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.ActorFrom(r.Context())

	var req dto.FluencyQuestionReq
	if err := decode(w, r, &req); err != nil {
		response.Err(w, r, err)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		response.Err(w, r, err)
		return
	}
	q, err := h.svc.CreateQuestion(r.Context(), actor, in)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusCreated, q)
}

func (h *FluencyHandler) AdminUpdate(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.ActorFrom(r.Context())
	id, ok := questionID(w, r)
	if !ok {
		return
	}

	var req dto.FluencyQuestionReq
	if err := decode(w, r, &req); err != nil {
		response.Err(w, r, err)
		return
	}
	q, err := h.svc.UpdateQuestion(r.Context(), actor, id, req.ToPatch())
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, q)
}

func (h *FluencyHandler) AdminDeactivate(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.ActorFrom(r.Context())
	id, ok := questionID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeactivateQuestion(r.Context(), actor, id); err != nil {
		response.Err(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func questionID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		response.Err(w, r, domain.ErrInvalidParam("path", "id", "must be a positive integer"))
		return 0, false
	}
	return id, true
}
