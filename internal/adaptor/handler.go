package adaptor

import (
	"vietnam-places/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth   *AuthHandler
	Place  *PlaceHandler
	Health *HealthHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:   NewAuthHandler(service.Auth, log),
		Place:  NewPlaceHandler(service.Place, log),
		Health: NewHealthHandler(),
	}
}
