package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/lifestream-health/donation-backend/internal/httpx"
	"github.com/lifestream-health/donation-backend/internal/utils"
)

type Handler struct {
	Credentials *CredentialService
	Tokens      *TokenService
}

func NewHandler(credentials *CredentialService, tokens *TokenService) *Handler {
	return &Handler{Credentials: credentials, Tokens: tokens}
}

func (h *Handler) SignupHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email      string `json:"email"`
		Password   string `json:"password"`
		Role       string `json:"role"`
		FullName   string `json:"fullName"`
		Telephone  string `json:"telephone"`
		Address    string `json:"address"`
		BloodGroup string `json:"bloodGroup"`
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := h.Credentials.Register(RegisterInput{
		Email:      input.Email,
		Password:   input.Password,
		Role:       input.Role,
		FullName:   input.FullName,
		Telephone:  input.Telephone,
		Address:    input.Address,
		BloodGroup: input.BloodGroup,
	})
	switch {
	case err == nil:
	case errors.Is(err, ErrDuplicateEmail):
		httpx.RespondError(w, http.StatusBadRequest, "User exists")
		return
	case errors.Is(err, ErrInvalidInput):
		httpx.RespondError(w, http.StatusBadRequest, err.Error())
		return
	default:
		log.Println("Signup failed:", err)
		httpx.RespondError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	token, err := h.Tokens.Issue(user.ID, user.Role)
	if err != nil {
		log.Println("Token issue failed:", err)
		httpx.RespondError(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	httpx.RespondJSON(w, http.StatusCreated, map[string]string{
		"token": token,
		"role":  user.Role,
	})
}

func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := h.Credentials.VerifyCredentials(input.Email, input.Password)
	if errors.Is(err, ErrInvalidCredentials) {
		httpx.RespondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		log.Println("Login failed:", err)
		httpx.RespondError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	token, err := h.Tokens.Issue(user.ID, user.Role)
	if err != nil {
		log.Println("Token issue failed:", err)
		httpx.RespondError(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	httpx.RespondJSON(w, http.StatusOK, map[string]string{
		"token": token,
		"role":  user.Role,
	})
}

func (h *Handler) ProfileHandler(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		httpx.RespondError(w, http.StatusUnauthorized, "No token")
		return
	}

	user, err := h.Credentials.Profile(principal.UserID)
	if errors.Is(err, ErrNotFound) {
		httpx.RespondError(w, http.StatusNotFound, "Couldn't find user")
		return
	}
	if err != nil {
		log.Println("Profile fetch failed:", err)
		httpx.RespondError(w, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}

	httpx.RespondJSON(w, http.StatusOK, user)
}

func (h *Handler) UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		httpx.RespondError(w, http.StatusUnauthorized, "No token")
		return
	}

	var input struct {
		FullName   *string `json:"fullName"`
		Telephone  *string `json:"telephone"`
		Address    *string `json:"address"`
		BloodGroup *string `json:"bloodGroup"`
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := h.Credentials.UpdateProfile(principal.UserID, ProfileUpdate{
		FullName:   input.FullName,
		Telephone:  input.Telephone,
		Address:    input.Address,
		BloodGroup: input.BloodGroup,
	})
	if errors.Is(err, ErrNotFound) {
		httpx.RespondError(w, http.StatusNotFound, "Couldn't find user")
		return
	}
	if err != nil {
		log.Println("Profile update failed:", err)
		httpx.RespondError(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	httpx.RespondJSON(w, http.StatusOK, user)
}
