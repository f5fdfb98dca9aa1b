package contact

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/lifestream-health/donation-backend/internal/httpx"
)

type Handler struct {
	Store MessageStore
}

func NewHandler(store MessageStore) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	if input.Name == "" || input.Email == "" || input.Message == "" {
		httpx.RespondError(w, http.StatusBadRequest, "Name, email and message are required")
		return
	}

	m := &Message{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Email:     input.Email,
		Message:   input.Message,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.Store.Insert(m); err != nil {
		log.Println("Contact message insert failed:", err)
		httpx.RespondError(w, http.StatusInternalServerError, "Failed to save message")
		return
	}

	httpx.RespondJSON(w, http.StatusCreated, map[string]string{"message": "Message received"})
}
