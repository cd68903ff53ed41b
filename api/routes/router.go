package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fst-serve/serve-backend/api/controllers"
	"github.com/fst-serve/serve-backend/api/middleware"
	"github.com/fst-serve/serve-backend/internal/catalog"
	"github.com/fst-serve/serve-backend/internal/orders"
	"github.com/fst-serve/serve-backend/internal/wizard"
	"github.com/fst-serve/serve-backend/pkg/airtable"
	"github.com/fst-serve/serve-backend/pkg/config"
	"github.com/fst-serve/serve-backend/pkg/logger"
	"github.com/fst-serve/serve-backend/pkg/metrics"
	"github.com/fst-serve/serve-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	redisP redis.Pinger,
	cat *catalog.Catalog,
	wizardService wizard.Service,
	submitter *orders.Submitter,
	airtableClient *airtable.Client,
	promReg *prometheus.Registry,
) http.Handler {
	var httpMetrics *metrics.HTTPMetrics
	if promReg != nil {
		httpMetrics = metrics.NewHTTPMetrics(promReg)
	}

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, redisP))
	})

	if promReg != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(promReg, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", controllers.SessionCreate(wizardService, logg))

			r.Route("/{sessionID}", func(r chi.Router) {
				r.Get("/", controllers.SessionGet(wizardService, logg))
				r.Post("/advance", controllers.SessionAdvance(wizardService, logg))
				r.Post("/retreat", controllers.SessionRetreat(wizardService, logg))

				r.Put("/location", controllers.SessionLocation(wizardService, logg))
				r.Post("/location/events", controllers.SessionLocationEvents(wizardService, logg))

				r.Route("/vehicle", func(r chi.Router) {
					r.Post("/open", controllers.VehiclePickerOpen(wizardService, logg))
					r.Post("/select", controllers.VehiclePickerSelect(wizardService, logg))
					r.Post("/back", controllers.VehiclePickerBack(wizardService, logg))
					r.Post("/close", controllers.VehiclePickerClose(wizardService, logg))
					r.Put("/search", controllers.VehiclePickerSearch(wizardService, logg))
				})

				r.Put("/energy", controllers.SessionEnergy(wizardService, logg))
				r.Put("/schedule", controllers.SessionSchedule(wizardService, logg))
				r.Put("/details", controllers.SessionDetails(wizardService, logg))
				r.Post("/submit", controllers.SessionSubmit(wizardService, submitter, logg))
			})
		})

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/brands", controllers.CatalogBrands(cat, logg))
			r.Get("/brands/{brand}/models", controllers.CatalogModels(cat, logg))
		})

		r.Get("/map/defaults", controllers.MapDefaults())
		r.Get("/schedule/slots", controllers.ScheduleSlots())

		r.Route("/orders", func(r chi.Router) {
			r.Post("/submit", controllers.OrdersSubmit(airtableClient, logg))
			r.Post("/record", controllers.OrdersRecord(airtableClient, logg))
		})

		r.Get("/addresses", controllers.AddressesList())
		r.Get("/charges/upcoming", controllers.UpcomingCharges())
	})

	return r
}
