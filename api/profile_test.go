package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"mentorlink/api"
	"mentorlink/internal/account"
	"mentorlink/internal/models"
	"mentorlink/pkg/repository/mock"
)

func newProfileHandler(m *mock.Mocks) *api.ProfileHandler {
	svc := account.NewService(m.Accounts, m.Connections, bcrypt.MinCost, nil)
	return api.NewProfileHandler(svc, testSecret, 1*time.Hour)
}

// protectedProfile routes a request through the JWT middleware the way the
// real router does.
func protectedProfile(h http.HandlerFunc) http.Handler {
	return api.JWTAuthMiddlewareWithSecret(testSecret)(h)
}

func TestGetProfile(t *testing.T) {
	mocks := mock.NewMocks()
	mocks.Accounts.Stored = &models.Account{ID: 7, Name: "Ana", Email: "ana@x.com", Role: models.RoleMentee, Area: "Tech"}
	handler := protectedProfile(newProfileHandler(mocks).GetProfile)

	req := httptest.NewRequest(http.MethodGet, "/v1/profile", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, 7, models.RoleMentee))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	res := w.Result()
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}

	var got models.Account
	if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	if got.ID != 7 || got.Email != "ana@x.com" {
		t.Fatalf("unexpected profile: %#v", got)
	}
}

func TestGetProfile_Unauthenticated(t *testing.T) {
	handler := protectedProfile(newProfileHandler(mock.NewMocks()).GetProfile)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/profile", nil))
	if w.Result().StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Result().StatusCode)
	}
}

func TestGetProfile_UnknownAccount(t *testing.T) {
	// valid token but no matching account row
	handler := protectedProfile(newProfileHandler(mock.NewMocks()).GetProfile)

	req := httptest.NewRequest(http.MethodGet, "/v1/profile", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, 42, models.RoleMentee))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Result().StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown account, got %d", w.Result().StatusCode)
	}
}

func TestUpdateProfile(t *testing.T) {
	mocks := mock.NewMocks()
	mocks.Accounts.Stored = &models.Account{ID: 7, Name: "Ana", Email: "ana@x.com", Role: models.RoleMentee, Area: "Tech"}
	handler := protectedProfile(newProfileHandler(mocks).UpdateProfile)

	body, _ := json.Marshal(map[string]string{"name": "Ana Paula", "contact": "55-1234", "area": "Health", "bio": "hi"})
	req := httptest.NewRequest(http.MethodPut, "/v1/profile", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+signedToken(t, 7, models.RoleMentee))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	res := w.Result()
	defer res.Body.Close()
	data, _ := io.ReadAll(res.Body)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", res.StatusCode, string(data))
	}

	var resp struct {
		Account *models.Account `json:"account"`
		Token   string          `json:"token"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Account.Name != "Ana Paula" || resp.Account.Area != "Health" {
		t.Fatalf("mutable fields not reflected: %#v", resp.Account)
	}
	if resp.Account.Email != "ana@x.com" || resp.Account.Role != models.RoleMentee {
		t.Fatalf("immutable fields changed: %#v", resp.Account)
	}

	// the refreshed session token must carry the new name and area
	tok, err := jwt.Parse(resp.Token, func(token *jwt.Token) (any, error) { return []byte(testSecret), nil })
	if err != nil {
		t.Fatalf("parse refreshed token: %v", err)
	}
	claims := tok.Claims.(jwt.MapClaims)
	if name, _ := claims["name"].(string); name != "Ana Paula" {
		t.Fatalf("refreshed token name claim: %v", claims["name"])
	}
	if area, _ := claims["area"].(string); area != "Health" {
		t.Fatalf("refreshed token area claim: %v", claims["area"])
	}
}

func TestUpdateProfile_MissingName(t *testing.T) {
	mocks := mock.NewMocks()
	mocks.Accounts.Stored = &models.Account{ID: 7, Name: "Ana", Email: "ana@x.com", Role: models.RoleMentee}
	handler := protectedProfile(newProfileHandler(mocks).UpdateProfile)

	body, _ := json.Marshal(map[string]string{"contact": "55-1234"})
	req := httptest.NewRequest(http.MethodPut, "/v1/profile", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+signedToken(t, 7, models.RoleMentee))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Result().StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing name, got %d", w.Result().StatusCode)
	}
}
