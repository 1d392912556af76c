package api

import (
	"errors"
	"net/http"

	"log/slog"

	"mentorlink/internal/account"
	"mentorlink/pkg/repository"
)

// writeServiceError translates account service failures into HTTP responses.
// Anything outside the known taxonomy is a storage-level failure and stays
// opaque to the client.
func writeServiceError(w http.ResponseWriter, err error) {
	var ve *account.ValidationError
	switch {
	case errors.As(err, &ve):
		writeError(w, ve.Error(), http.StatusBadRequest)
	case errors.Is(err, repository.ErrDuplicateEmail):
		writeError(w, "email already registered", http.StatusConflict)
	case errors.Is(err, account.ErrInvalidCredentials):
		writeError(w, "invalid credentials", http.StatusUnauthorized)
	case errors.Is(err, account.ErrUnauthorized):
		writeError(w, "authentication required", http.StatusUnauthorized)
	case errors.Is(err, account.ErrNotFound):
		writeError(w, "account not found", http.StatusNotFound)
	default:
		logger.Error("internal error", slog.Any("err", err))
		writeError(w, "internal error", http.StatusInternalServerError)
	}
}
