package api

import (
	"encoding/json"
	"net/http"
	"time"

	"mentorlink/internal/account"
	"mentorlink/internal/models"
)

type ProfileHandler struct {
	accounts      *account.Service
	jwtSecret     string
	tokenDuration time.Duration
}

func NewProfileHandler(svc *account.Service, jwtSecret string, tokenDuration time.Duration) *ProfileHandler {
	return &ProfileHandler{accounts: svc, jwtSecret: jwtSecret, tokenDuration: tokenDuration}
}

type updateProfileRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Area    string `json:"area"`
	Bio     string `json:"bio"`
}

type updateProfileResponse struct {
	Account *models.Account `json:"account"`
	// Token is re-issued because the session claims carry name and area.
	Token string `json:"token"`
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	auth := AuthFromContext(r.Context())

	a, err := h.accounts.GetByID(r.Context(), auth.AccountID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, a, http.StatusOK)
}

func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	auth := AuthFromContext(r.Context())

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}

	updated, err := h.accounts.UpdateProfile(r.Context(), auth.AccountID, account.UpdateProfileInput{
		Name:    req.Name,
		Contact: req.Contact,
		Area:    req.Area,
		Bio:     req.Bio,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	tokenStr, err := signSessionToken(h.jwtSecret, h.tokenDuration, updated)
	if err != nil {
		writeError(w, "error signing token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, updateProfileResponse{Account: updated, Token: tokenStr}, http.StatusOK)
}
