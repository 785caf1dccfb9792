package wire

import (
	"vietnam-places/internal/adaptor"
	"vietnam-places/pkg/middleware"
	"vietnam-places/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePlace(
	r chi.Router,
	placeHandler *adaptor.PlaceHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// All place routes are owner-scoped, so all require a token
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT, log))

		r.Post("/api/places", placeHandler.Create)
		r.Get("/api/places", placeHandler.List)
		r.Patch("/api/places/{id}", placeHandler.Update)
		r.Delete("/api/places/{id}", placeHandler.Delete)
		r.Get("/api/stats", placeHandler.Stats)
	})
}
