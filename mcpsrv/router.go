package mcpsrv

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/qyinm/bites/logging"
	"github.com/sirupsen/logrus"
)

// NewRouter mounts mcpHandler on /mcp behind WrapMCPHandler, next to the
// /healthz and /metrics routes. metrics and log may be nil. Stateless
// configs log a warning since sessions cannot be told apart.
func NewRouter(mcpHandler http.Handler, cfg Config, metrics *Metrics, log *logrus.Entry) http.Handler {
	if log == nil {
		log = logging.NewLogger("http")
	}
	if cfg.Stateless {
		log.Warn("stateless mode: every client shares one gallery session, favorites included")
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler())
	}
	r.With(LogRequests(log)).Handle("/mcp", WrapMCPHandler(mcpHandler, cfg))

	return r
}
