package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/quotation-service/api/controllers"
	quotecontrollers "github.com/angelmondragon/quotation-service/api/controllers/quotes"
	"github.com/angelmondragon/quotation-service/api/middleware"
	"github.com/angelmondragon/quotation-service/api/responses"
	"github.com/angelmondragon/quotation-service/internal/quotes"
	"github.com/angelmondragon/quotation-service/pkg/config"
	pkgerrors "github.com/angelmondragon/quotation-service/pkg/errors"
	"github.com/angelmondragon/quotation-service/pkg/logger"
	"github.com/angelmondragon/quotation-service/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	quoteService quotes.Service,
	httpMetrics *metrics.HTTPMetrics,
	gatherer prometheus.Gatherer,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.Recoverer(logg),
		middleware.CORS(cfg.HTTP.CORSAllowedOrigins),
	)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		responses.WriteError(req.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "no route for "+req.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		responses.WriteError(req.Context(), logg, w, pkgerrors.New(pkgerrors.CodeMethodNotAllowed, req.Method+" not allowed on "+req.URL.Path))
	})

	r.Get("/", controllers.Index(cfg))
	r.Get("/health", controllers.Health(time.Now))
	r.Post("/quote", quotecontrollers.CreateQuote(quoteService, logg))

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	return r
}
