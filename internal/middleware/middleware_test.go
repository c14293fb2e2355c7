package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/courseadmin/internal/app/models/dto"
	"github.com/yigit/courseadmin/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) dto.APIResponse {
	t.Helper()
	var resp dto.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid envelope %q: %v", w.Body.String(), err)
	}
	return resp
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    dto.ErrorCode
		message string
	}{
		{"in flight", apperrors.NewInFlightError(3), http.StatusConflict, dto.ErrorCodeOperationInFlight, apperrors.MsgInFlight},
		{
			"instructor in use",
			apperrors.NewCustomError(apperrors.ErrIntegrityViolation, apperrors.MsgInstructorInUse),
			http.StatusConflict, dto.ErrorCodeIntegrityViolation, apperrors.MsgInstructorInUse,
		},
		{
			"validation",
			apperrors.NewCustomError(apperrors.ErrValidationFailed, "Title is required"),
			http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Title is required",
		},
		{"bad request", apperrors.NewBadRequestError("No form is open"), http.StatusBadRequest, dto.ErrorCodeResourceInvalid, "No form is open"},
		{
			"invalid credentials",
			fmt.Errorf("%w: %w", apperrors.ErrInvalidCredentials, &apperrors.BackendError{Status: 401, Message: "bad"}),
			http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid username or password",
		},
		{"not logged in", apperrors.ErrNotLoggedIn, http.StatusUnauthorized, dto.ErrorCodeNotLoggedIn, "Please log in"},
		{"backend 404", &apperrors.BackendError{Status: 404, Message: "Course not found"}, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Course not found"},
		{"backend 401", &apperrors.BackendError{Status: 401}, http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "Session expired, please log in again"},
		{"network", fmt.Errorf("%w: GET /x: refused", apperrors.ErrNetwork), http.StatusBadGateway, dto.ErrorCodeNetwork, "Backend is unreachable"},
		{"backend 500", &apperrors.BackendError{Status: 500}, http.StatusBadGateway, dto.ErrorCodeExternalServiceError, "Backend error"},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			HandleAPIError(c, tt.err)

			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d", w.Code, tt.status)
			}
			resp := decodeEnvelope(t, w)
			if resp.Success || resp.Error == nil {
				t.Fatalf("expected error envelope, got %+v", resp)
			}
			if resp.Error.Code != tt.code || resp.Error.Message != tt.message {
				t.Fatalf("error = %s %q, want %s %q", resp.Error.Code, resp.Error.Message, tt.code, tt.message)
			}
			if len(c.Errors) != 1 {
				t.Fatalf("error should be recorded on the context")
			}
		})
	}
}

type fakeGuard struct {
	err     error
	logouts int
}

func (g *fakeGuard) RequireSession() error { return g.err }

func (g *fakeGuard) Logout() error {
	g.logouts++
	return nil
}

func TestSessionRequired(t *testing.T) {
	guard := &fakeGuard{err: apperrors.ErrNotLoggedIn}
	m := NewSessionMiddleware(guard, zerolog.Nop())

	r := gin.New()
	r.GET("/x", m.Required(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}

	guard.err = nil
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}
}

func TestExpireOnUnauthorized(t *testing.T) {
	guard := &fakeGuard{}
	m := NewSessionMiddleware(guard, zerolog.Nop())

	r := gin.New()
	r.Use(m.ExpireOnUnauthorized())
	r.GET("/expired", func(c *gin.Context) {
		HandleAPIError(c, &apperrors.BackendError{Status: 401})
	})
	r.POST("/login", func(c *gin.Context) {
		HandleAPIError(c, fmt.Errorf("%w: %w", apperrors.ErrInvalidCredentials, &apperrors.BackendError{Status: 401}))
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/login", nil))
	if guard.logouts != 0 {
		t.Fatal("a failed login must not end the session")
	}

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/expired", nil))
	if guard.logouts != 1 {
		t.Fatalf("logouts = %d, want 1", guard.logouts)
	}
}

func TestRequestLoggerSetsID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(zerolog.Nop()))
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("requestID")) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	id := w.Header().Get(RequestIDHeader)
	if id == "" || w.Body.String() != id {
		t.Fatalf("request id header %q, body %q", id, w.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, "abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Header().Get(RequestIDHeader) != "abc" {
		t.Fatal("incoming request id should be kept")
	}
}

func TestBindJSON(t *testing.T) {
	type body struct {
		Title string `json:"title" validate:"notblank"`
	}

	r := gin.New()
	r.POST("/x", func(c *gin.Context) {
		var b body
		if !BindJSON(c, &b) {
			return
		}
		c.String(http.StatusOK, b.Title)
	})

	tests := []struct {
		payload string
		status  int
	}{
		{`{"title":"Pottery"}`, http.StatusOK},
		{`{"title":"  "}`, http.StatusBadRequest},
		{`{"title":`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(tt.payload)))
		if w.Code != tt.status {
			t.Errorf("%s: status = %d, want %d", tt.payload, w.Code, tt.status)
		}
	}
}
