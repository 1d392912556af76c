package api

import (
	"net/http"

	"mentorlink/internal/account"
	"mentorlink/internal/models"
)

type DirectoryHandler struct {
	accounts *account.Service
}

func NewDirectoryHandler(svc *account.Service) *DirectoryHandler {
	return &DirectoryHandler{accounts: svc}
}

type directoryResponse struct {
	View        string           `json:"view"`
	Mentors     []models.Account `json:"mentors,omitempty"`
	Connections *int64           `json:"connections,omitempty"`
}

// Directory lists mentor counterparts for mentees, filtered by the optional
// ?area= query parameter. Mentors get their panel marker instead.
func (h *DirectoryHandler) Directory(w http.ResponseWriter, r *http.Request) {
	auth := AuthFromContext(r.Context())
	area := r.URL.Query().Get("area")

	view, err := h.accounts.ListCounterparts(r.Context(), auth, area)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := directoryResponse{View: view.View}
	if view.View == account.ViewMentors {
		resp.Mentors = view.Mentors
	} else {
		resp.Connections = &view.Connections
	}

	writeJSON(w, resp, http.StatusOK)
}
