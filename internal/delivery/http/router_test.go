package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-health-consult-platform/internal/delivery/http/handler"
	"go-health-consult-platform/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

// Route matching only; the handlers are never invoked.
func setupTestRouter() *mux.Router {
	r := NewRouter(
		&handler.AuthHandler{},
		&handler.PatientHandler{},
		&handler.DoctorHandler{},
		&handler.AppointmentHandler{},
		&handler.QuestionHandler{},
		RecordHandlers{},
		middleware.NewAuthMiddleware(nil, nil),
		middleware.NewCORSMiddleware(),
	)
	return r.Setup()
}

func matchTemplate(t *testing.T, router *mux.Router, method, path string) string {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	var match mux.RouteMatch
	if !router.Match(req, &match) {
		t.Fatalf("%s %s did not match any route", method, path)
	}
	template, err := match.Route.GetPathTemplate()
	if err != nil {
		t.Fatalf("failed to read path template for %s %s: %v", method, path, err)
	}
	return template
}

func TestDoctorsMeResolvesBeforeDoctorID(t *testing.T) {
	router := setupTestRouter()

	if template := matchTemplate(t, router, http.MethodGet, "/api/v1/doctors/me"); template != "/api/v1/doctors/me" {
		t.Errorf("GET /api/v1/doctors/me resolved to %s", template)
	}
	if template := matchTemplate(t, router, http.MethodPut, "/api/v1/doctors/me"); template != "/api/v1/doctors/me" {
		t.Errorf("PUT /api/v1/doctors/me resolved to %s", template)
	}
}

func TestDoctorIDRouteStillMatches(t *testing.T) {
	router := setupTestRouter()

	if template := matchTemplate(t, router, http.MethodGet, "/api/v1/doctors/7b1d2f7e-9f41-4c38-9a44-0f6f5e9a1c2d"); template != "/api/v1/doctors/{id}" {
		t.Errorf("GET /api/v1/doctors/<uuid> resolved to %s", template)
	}
	if template := matchTemplate(t, router, http.MethodGet, "/api/v1/doctors/7b1d2f7e-9f41-4c38-9a44-0f6f5e9a1c2d/time-slots"); template != "/api/v1/doctors/{id}/time-slots" {
		t.Errorf("GET /api/v1/doctors/<uuid>/time-slots resolved to %s", template)
	}
}
