package grading

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"gitlab.com/codeclass-2026.net/internal/domain"
	"gitlab.com/codeclass-2026.net/internal/handlers"
	"gitlab.com/codeclass-2026.net/internal/static/errs"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Warn(msg string, args ...interface{})  {}

type fakeGradingService struct {
	verdict *domain.Verdict
	err     error

	gotRoomID    string
	gotProblemID string
	gotCode      string
}

func (f *fakeGradingService) Grade(ctx context.Context, identity domain.AuthPayload, roomID, problemID, code string) (*domain.Verdict, error) {
	f.gotRoomID = roomID
	f.gotProblemID = problemID
	f.gotCode = code
	return f.verdict, f.err
}

func newRouter(svc *fakeGradingService, authed bool) *mux.Router {
	r := mux.NewRouter()
	sub := r.PathPrefix("/api").Subrouter()
	if authed {
		sub.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				ctx := handlers.ContextWithIdentity(req.Context(), domain.AuthPayload{UserID: "u1"})
				next.ServeHTTP(w, req.WithContext(ctx))
			})
		})
	}
	NewHandler(svc, nopLogger{}).RegisterRoutes(sub)
	return r
}

func TestSubmitReturnsVerdict(t *testing.T) {
	svc := &fakeGradingService{verdict: &domain.Verdict{Passed: true, Results: []domain.FixtureResult{}}}
	router := newRouter(svc, true)

	req := httptest.NewRequest(http.MethodPost, "/api/rooms/r1/problems/p1/submit",
		strings.NewReader(`{"code": "function solve() {}"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	var verdict domain.Verdict
	if err := json.Unmarshal(rec.Body.Bytes(), &verdict); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !verdict.Passed {
		t.Errorf("verdict should pass")
	}
	if svc.gotRoomID != "r1" || svc.gotProblemID != "p1" {
		t.Errorf("path vars not forwarded: room %q problem %q", svc.gotRoomID, svc.gotProblemID)
	}
	if svc.gotCode != "function solve() {}" {
		t.Errorf("code not forwarded: %q", svc.gotCode)
	}
}

func TestSubmitErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{errs.RoomNotFound, http.StatusNotFound},
		{errs.ProblemNotFound, http.StatusNotFound},
		{errs.Forbidden, http.StatusForbidden},
		{errs.NoTestsConfigured, http.StatusBadRequest},
		{errs.UnsupportedLanguage, http.StatusBadRequest},
		{errs.TooManySubmissions, http.StatusTooManyRequests},
		{errs.StoreUnavailable, http.StatusInternalServerError},
	}
	for _, c := range cases {
		router := newRouter(&fakeGradingService{err: c.err}, true)
		req := httptest.NewRequest(http.MethodPost, "/api/rooms/r1/problems/p1/submit",
			strings.NewReader(`{"code": ""}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != c.want {
			t.Errorf("%v: status = %d, want %d", c.err, rec.Code, c.want)
		}
	}
}

func TestSubmitBadBody(t *testing.T) {
	router := newRouter(&fakeGradingService{}, true)
	req := httptest.NewRequest(http.MethodPost, "/api/rooms/r1/problems/p1/submit",
		strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestSubmitUnauthenticated(t *testing.T) {
	router := newRouter(&fakeGradingService{}, false)
	req := httptest.NewRequest(http.MethodPost, "/api/rooms/r1/problems/p1/submit",
		strings.NewReader(`{"code": ""}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}
