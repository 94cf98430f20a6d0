package routes

import (
	"net/http"

	"github.com/ravenmoor/taxbridge/internal/handler"
	"github.com/ravenmoor/taxbridge/internal/router"
)

// RegisterAPIRoutes registers operational routes for load balancers and
// monitoring systems. These routes do not require authentication.
func RegisterAPIRoutes(r *router.Router, deps APIDeps) {
	// Liveness: process is up.
	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		handler.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Readiness: tax provider credentials and connectivity check.
	r.Get("/readyz", func(w http.ResponseWriter, req *http.Request) {
		if err := deps.Provider.Ping(req.Context()); err != nil {
			handler.ErrorResponse(w, req, err)
			return
		}
		handler.JSON(w, http.StatusOK, map[string]string{"status": "ready"})
	})

	if deps.MetricsHandler != nil {
		r.Handle(http.MethodGet, "/metrics", deps.MetricsHandler)
	}

	// Unknown routes get the JSON error envelope, not ServeMux's
	// plain-text 404.
	r.NotFound(handler.NotFoundResponse)
}
