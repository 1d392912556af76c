package api

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"log/slog"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"mentorlink/internal/account"
	"mentorlink/internal/models"
)

type ctxKey string

const (
	ctxAuth      ctxKey = "auth"
	ctxRequestID ctxKey = "request_id"
)

// package-level logger used by middleware and helpers; can be set via SetLogger from caller
var logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))

// SetLogger installs a logger for the api package. Passing nil is a no-op.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}

// AuthFromContext returns the caller identity placed by the JWT middleware.
// The zero AuthContext means the request is unauthenticated.
func AuthFromContext(ctx context.Context) account.AuthContext {
	if v, ok := ctx.Value(ctxAuth).(account.AuthContext); ok {
		return v
	}
	return account.AuthContext{}
}

func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxRequestID, id)))
	})
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID, _ := r.Context().Value(ctxRequestID).(string)
		logger.Info("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote", r.RemoteAddr),
			slog.String("request_id", reqID),
		)
		next.ServeHTTP(w, r)
	})
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic", slog.Any("err", err))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// JWTAuthMiddlewareWithSecret guards protected routes. On a valid token the
// caller identity is placed into the request context as an
// account.AuthContext.
func JWTAuthMiddlewareWithSecret(secret string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth, err := authFromRequest(r, secret)
			if err != nil {
				http.Error(w, err.Error(), http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ctxAuth, auth)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// authFromRequest parses the bearer token and extracts the caller identity
// from its claims. Also used directly by handlers that need a structured
// failure payload instead of the middleware's plain 401.
func authFromRequest(r *http.Request, secret string) (account.AuthContext, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return account.AuthContext{}, fmt.Errorf("missing Authorization header")
	}

	var tokenString string
	if _, err := fmt.Sscanf(authHeader, "Bearer %s", &tokenString); err != nil {
		logger.Error("failed to parse Authorization header", slog.Any("err", err))
	}
	if tokenString == "" {
		return account.AuthContext{}, fmt.Errorf("invalid Authorization header")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return account.AuthContext{}, fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return account.AuthContext{}, fmt.Errorf("invalid token claims")
	}

	auth := account.AuthContext{}
	if v, found := claims["account_id"]; found {
		if id, ok := v.(float64); ok {
			auth.AccountID = int64(id)
		}
	}
	if v, found := claims["role"]; found {
		if role, ok := v.(string); ok {
			auth.Role = models.Role(role)
		}
	}
	if !auth.Authenticated() {
		return account.AuthContext{}, fmt.Errorf("invalid token claims")
	}

	return auth, nil
}
