package donation

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lifestream-health/donation-backend/internal/httpx"
	"github.com/lifestream-health/donation-backend/internal/utils"
)

type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		httpx.RespondError(w, http.StatusUnauthorized, "No token")
		return
	}

	var input struct {
		Type          string `json:"type"`
		Details       string `json:"details"`
		PreferredDate string `json:"preferredDate"`
		Hospital      string `json:"hospital"`
		Time          string `json:"time"`
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	d, err := h.Service.Create(principal, CreateInput{
		Type:          input.Type,
		Details:       input.Details,
		PreferredDate: input.PreferredDate,
		Hospital:      input.Hospital,
		Time:          input.Time,
	})
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	httpx.RespondJSON(w, http.StatusCreated, d)
}

func (h *Handler) ListAllHandler(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		httpx.RespondError(w, http.StatusUnauthorized, "No token")
		return
	}

	donations, err := h.Service.ListAll(principal)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	httpx.RespondJSON(w, http.StatusOK, donations)
}

func (h *Handler) ListOwnHandler(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		httpx.RespondError(w, http.StatusUnauthorized, "No token")
		return
	}

	donations, err := h.Service.ListOwn(principal)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	httpx.RespondJSON(w, http.StatusOK, donations)
}

func (h *Handler) TransitionHandler(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		httpx.RespondError(w, http.StatusUnauthorized, "No token")
		return
	}

	var input struct {
		Status string `json:"status"`
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	d, err := h.Service.Transition(principal, chi.URLParam(r, "id"), input.Status)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	httpx.RespondJSON(w, http.StatusOK, d)
}

func (h *Handler) CancelHandler(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		httpx.RespondError(w, http.StatusUnauthorized, "No token")
		return
	}

	if err := h.Service.Cancel(principal, chi.URLParam(r, "id")); err != nil {
		h.respondServiceError(w, err)
		return
	}

	httpx.RespondJSON(w, http.StatusOK, map[string]string{"message": "Donation cancelled"})
}

func (h *Handler) respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		httpx.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrForbidden):
		httpx.RespondError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, ErrNotFound):
		httpx.RespondError(w, http.StatusNotFound, "Donation not found")
	case errors.Is(err, ErrConflict):
		httpx.RespondError(w, http.StatusConflict, "Donation already finalized")
	default:
		log.Println("Donation operation failed:", err)
		httpx.RespondError(w, http.StatusInternalServerError, "Unexpected error")
	}
}
