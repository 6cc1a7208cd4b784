package api

import (
	"navigation-service/internal/api/handlers"
	"navigation-service/internal/render"
	"navigation-service/internal/services"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// Handlers stay unaware of concrete adapters.
func NewRouter(nav *services.Navigator, mapOpts render.MapOptions) http.Handler {
	mux := http.NewServeMux()

	navHandler := &handlers.NavigateHandler{Navigator: nav}
	viewHandler := &handlers.ViewHandler{
		Locations: nav.Locations,
		MapOpts:   mapOpts,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/navigate", navHandler.Navigate)
	mux.HandleFunc("/map", viewHandler.Map)
	mux.HandleFunc("/plot", viewHandler.Plot)

	return requestIDMiddleware(loggingMiddleware(mux))
}
