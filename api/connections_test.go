package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"golang.org/x/crypto/bcrypt"

	"mentorlink/api"
	"mentorlink/internal/account"
	"mentorlink/internal/models"
	"mentorlink/pkg/repository/mock"
)

func connectionsRouter(m *mock.Mocks) *mux.Router {
	svc := account.NewService(m.Accounts, m.Connections, bcrypt.MinCost, nil)
	h := api.NewConnectionsHandler(svc, testSecret)
	r := mux.NewRouter()
	r.HandleFunc("/v1/connections/{mentorID}", h.LogConnection).Methods("GET")
	return r
}

func TestLogConnection(t *testing.T) {
	mocks := mock.NewMocks()
	router := connectionsRouter(mocks)

	req := httptest.NewRequest(http.MethodGet, "/v1/connections/3", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, 10, models.RoleMentee))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	res := w.Result()
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}

	var resp struct {
		Status  string `json:"status"`
		EventID int64  `json:"event_id"`
	}
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "success" || resp.EventID == 0 {
		t.Fatalf("unexpected response: %#v", resp)
	}

	if len(mocks.Connections.Events) != 1 {
		t.Fatalf("expected 1 event row, got %d", len(mocks.Connections.Events))
	}
	e := mocks.Connections.Events[0]
	if e.MentorID != 3 || e.MenteeID != 10 {
		t.Fatalf("unexpected event: %#v", e)
	}

	// a second call logs an independent row, no dedup
	req2 := httptest.NewRequest(http.MethodGet, "/v1/connections/3", nil)
	req2.Header.Set("Authorization", "Bearer "+signedToken(t, 10, models.RoleMentee))
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req2)
	if w2.Result().StatusCode != http.StatusOK {
		t.Fatalf("second call: expected 200 got %d", w2.Result().StatusCode)
	}
	if len(mocks.Connections.Events) != 2 {
		t.Fatalf("expected 2 event rows after second call, got %d", len(mocks.Connections.Events))
	}
}

func TestLogConnection_Unauthenticated(t *testing.T) {
	mocks := mock.NewMocks()
	router := connectionsRouter(mocks)

	// no token: structured error payload, no row written
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/connections/3", nil))

	res := w.Result()
	defer res.Body.Close()
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", res.StatusCode)
	}
	var resp struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		t.Fatalf("expected structured payload: %v", err)
	}
	if resp.Status != "error" || resp.Message == "" {
		t.Fatalf("unexpected payload: %#v", resp)
	}
	if len(mocks.Connections.Events) != 0 {
		t.Fatalf("unauthenticated call must not write rows, got %d", len(mocks.Connections.Events))
	}
}

func TestLogConnection_BadMentorID(t *testing.T) {
	router := connectionsRouter(mock.NewMocks())

	req := httptest.NewRequest(http.MethodGet, "/v1/connections/abc", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, 10, models.RoleMentee))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Result().StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric mentor id, got %d", w.Result().StatusCode)
	}
}
