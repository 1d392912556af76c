package api

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"mentorlink/internal/account"
)

type ConnectionsHandler struct {
	accounts  *account.Service
	jwtSecret string
}

func NewConnectionsHandler(svc *account.Service, jwtSecret string) *ConnectionsHandler {
	return &ConnectionsHandler{accounts: svc, jwtSecret: jwtSecret}
}

type logConnectionResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	EventID int64  `json:"event_id,omitempty"`
}

// LogConnection records one outreach event from the calling mentee to the
// mentor in the path. This endpoint is hit programmatically, so it answers
// with a structured payload even when unauthenticated instead of relying on
// the plain 401 of the JWT middleware.
func (h *ConnectionsHandler) LogConnection(w http.ResponseWriter, r *http.Request) {
	auth, err := authFromRequest(r, h.jwtSecret)
	if err != nil {
		writeJSON(w, logConnectionResponse{Status: "error", Message: "not logged in"}, http.StatusUnauthorized)
		return
	}

	mentorID, err := strconv.ParseInt(mux.Vars(r)["mentorID"], 10, 64)
	if err != nil || mentorID <= 0 {
		writeJSON(w, logConnectionResponse{Status: "error", Message: "invalid mentor id"}, http.StatusBadRequest)
		return
	}

	event, err := h.accounts.LogConnection(r.Context(), auth, mentorID)
	if err != nil {
		writeJSON(w, logConnectionResponse{Status: "error", Message: "failed to log connection"}, http.StatusInternalServerError)
		return
	}

	writeJSON(w, logConnectionResponse{Status: "success", Message: "connection logged", EventID: event.ID}, http.StatusOK)
}
