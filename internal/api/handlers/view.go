package handlers

import (
	"bytes"
	"navigation-service/internal/domain"
	"navigation-service/internal/ports"
	"navigation-service/internal/render"
	"navigation-service/internal/services"
	"net/http"
	"strconv"
)

// ViewHandler renders the map and plot from the current location to a
// target given as lat/lon query parameters.
type ViewHandler struct {
	Locations ports.LocationProvider
	MapOpts   render.MapOptions
}

func (h *ViewHandler) Map(w http.ResponseWriter, r *http.Request) {
	current, target, ok := h.endpoints(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := render.WriteMap(&buf, current, target, h.MapOpts); err != nil {
		writeDomainError(w, r, "render map", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (h *ViewHandler) Plot(w http.ResponseWriter, r *http.Request) {
	current, target, ok := h.endpoints(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := render.WritePlot(&buf, []domain.GeoCoordinate{current, target}); err != nil {
		writeDomainError(w, r, "render plot", err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = buf.WriteTo(w)
}

// endpoints parses the target and resolves the current location,
// writing the error response itself when it fails.
func (h *ViewHandler) endpoints(w http.ResponseWriter, r *http.Request) (current, target domain.GeoCoordinate, ok bool) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return current, target, false
	}

	q := r.URL.Query()
	lat, err := strconv.ParseFloat(q.Get("lat"), 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "lat query parameter must be a number")
		return current, target, false
	}
	lon, err := strconv.ParseFloat(q.Get("lon"), 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "lon query parameter must be a number")
		return current, target, false
	}

	target = domain.GeoCoordinate{Lat: lat, Lon: lon}
	if err := services.ValidateCoordinate("target", target); err != nil {
		writeDomainError(w, r, "view", err)
		return current, target, false
	}

	current, err = h.Locations.ProvideLocation(r.Context())
	if err != nil {
		writeDomainError(w, r, "view", &domain.ProviderError{Op: "provide current location", Err: err})
		return current, target, false
	}

	return current, target, true
}
