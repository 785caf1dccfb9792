package repository

import (
	"vietnam-places/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User  UserRepository
	Place PlaceRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:  NewUserRepository(db, log),
		Place: NewPlaceRepository(db, log),
	}
}
