package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/fst-serve/serve-backend/api/responses"
	"github.com/fst-serve/serve-backend/api/validators"
	"github.com/fst-serve/serve-backend/internal/catalog"
	"github.com/fst-serve/serve-backend/internal/geo"
	"github.com/fst-serve/serve-backend/internal/wizard"
	"github.com/fst-serve/serve-backend/pkg/enums"
	pkgerrors "github.com/fst-serve/serve-backend/pkg/errors"
	"github.com/fst-serve/serve-backend/pkg/logger"
)

func CatalogBrands(cat *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		term := validators.QueryTerm(r, "q")
		responses.WriteSuccess(w, map[string]any{"brands": cat.SearchBrands(term)})
	}
}

type modelView struct {
	Name       string    `json:"name"`
	Capacities []float64 `json:"capacities"`
}

func CatalogModels(cat *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		brand := strings.TrimSpace(chi.URLParam(r, "brand"))
		if brand == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "brand is required"))
			return
		}
		models, err := cat.SearchModels(brand, validators.QueryTerm(r, "q"))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		views := make([]modelView, 0, len(models))
		for _, m := range models {
			views = append(views, modelView{Name: m.Name, Capacities: m.Capacities})
		}
		responses.WriteSuccess(w, map[string]any{"brand": brand, "models": views})
	}
}

// MapDefaults returns the viewport the map widget opens with before
// any coordinate is known.
func MapDefaults() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{
			"center": map[string]float64{
				"lat": geo.DefaultCenterLat,
				"lng": geo.DefaultCenterLng,
			},
			"zoom":      geo.DefaultZoom,
			"snap_zoom": geo.SnapZoom,
		})
	}
}

// ScheduleSlots lists the fixed candidate slots plus the pricing line
// the client shows under the slider.
func ScheduleSlots() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{
			"dates":         wizard.ScheduleDates(),
			"times":         wizard.ScheduleTimes(),
			"rate_per_kwh":  wizard.RatePerKwh,
			"percent_ticks": wizard.EnergyTicks(enums.EnergyModePercent),
			"kwh_ticks":     wizard.EnergyTicks(enums.EnergyModeKwh),
		})
	}
}
