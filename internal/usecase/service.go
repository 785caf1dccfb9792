package usecase

import (
	"vietnam-places/internal/data/repository"
	"vietnam-places/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth  AuthService
	Place PlaceService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:  NewAuthService(repo, config, log),
		Place: NewPlaceService(repo, log),
	}
}
