package usecase

import (
	"context"
	"fmt"
	"time"

	"vietnam-places/internal/data/entity"
	"vietnam-places/internal/data/repository"
	"vietnam-places/internal/dto/request"
	"vietnam-places/internal/dto/response"
	"vietnam-places/pkg/utils"

	"go.uber.org/zap"
)

type PlaceService interface {
	CreatePlace(ctx context.Context, userID int64, req *request.CreatePlaceRequest) (*response.PlaceResponse, error)
	ListPlaces(ctx context.Context, userID int64, filter *repository.PlaceFilter) ([]response.PlaceResponse, error)
	UpdatePlace(ctx context.Context, placeID, userID int64, req *request.UpdatePlaceRequest) (*response.PlaceResponse, error)
	// DeletePlace reports success as a bool: false means no place with
	// that id is owned by the user, never an error.
	DeletePlace(ctx context.Context, placeID, userID int64) (bool, error)
	GetStats(ctx context.Context, userID int64) (*response.PlaceStats, error)
}

type placeService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPlaceService(repo *repository.Repository, log *zap.Logger) PlaceService {
	return &placeService{
		repo: repo,
		log:  log.With(zap.String("service", "place")),
	}
}

func (s *placeService) CreatePlace(ctx context.Context, userID int64, req *request.CreatePlaceRequest) (*response.PlaceResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create place validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Check owner exists
	owner, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to check owner", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("check owner: %w", err)
	}
	if owner == nil {
		return nil, fmt.Errorf("user %d not found", userID)
	}

	// New places always start unvisited, whatever the caller sent
	now := time.Now()
	place := &entity.Place{
		Base: entity.Base{
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:        userID,
		Name:          req.Name,
		Address:       req.Address,
		GoogleMapsURL: req.GoogleMapsURL,
		GooglePlaceID: req.GooglePlaceID,
		Type:          entity.PlaceType(req.Type),
		City:          entity.City(req.City),
		Notes:         req.Notes,
		IsVisited:     false,
	}

	if err := s.repo.Place.Create(ctx, place); err != nil {
		s.log.Error("Failed to create place",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("name", req.Name),
		)
		return nil, fmt.Errorf("create place: %w", err)
	}

	s.log.Info("Place created",
		zap.Int64("place_id", place.ID),
		zap.Int64("user_id", userID),
		zap.String("city", req.City),
		zap.String("type", req.Type),
	)

	placeResp := response.PlaceToResponse(place)
	return &placeResp, nil
}

func (s *placeService) ListPlaces(ctx context.Context, userID int64, filter *repository.PlaceFilter) ([]response.PlaceResponse, error) {
	places, err := s.repo.Place.FindByUser(ctx, userID, filter)
	if err != nil {
		s.log.Error("Failed to list places", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("list places: %w", err)
	}

	// Empty result is not an error
	return response.PlacesToResponse(places), nil
}

func (s *placeService) UpdatePlace(ctx context.Context, placeID, userID int64, req *request.UpdatePlaceRequest) (*response.PlaceResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update place validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	changes, err := buildPlaceChanges(req)
	if err != nil {
		return nil, err
	}

	place, err := s.repo.Place.Update(ctx, placeID, userID, changes)
	if err != nil {
		s.log.Error("Failed to update place",
			zap.Error(err),
			zap.Int64("place_id", placeID),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("update place: %w", err)
	}

	// Existence and ownership are checked together so callers cannot
	// probe for other users' place ids
	if place == nil {
		return nil, fmt.Errorf("place not found or access denied")
	}

	s.log.Info("Place updated",
		zap.Int64("place_id", placeID),
		zap.Int64("user_id", userID),
	)

	placeResp := response.PlaceToResponse(place)
	return &placeResp, nil
}

func (s *placeService) DeletePlace(ctx context.Context, placeID, userID int64) (bool, error) {
	deleted, err := s.repo.Place.Delete(ctx, placeID, userID)
	if err != nil {
		s.log.Error("Failed to delete place",
			zap.Error(err),
			zap.Int64("place_id", placeID),
			zap.Int64("user_id", userID),
		)
		return false, fmt.Errorf("delete place: %w", err)
	}

	if deleted {
		s.log.Info("Place deleted",
			zap.Int64("place_id", placeID),
			zap.Int64("user_id", userID),
		)
	}

	return deleted, nil
}

// GetStats loads the user's places and aggregates them in one pass.
// Cities and types with no places are absent from the maps.
func (s *placeService) GetStats(ctx context.Context, userID int64) (*response.PlaceStats, error) {
	places, err := s.repo.Place.FindByUser(ctx, userID, nil)
	if err != nil {
		s.log.Error("Failed to load places for stats", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("get stats: %w", err)
	}

	stats := &response.PlaceStats{
		PlacesByCity: make(map[string]int),
		PlacesByType: make(map[string]int),
	}

	for _, place := range places {
		stats.TotalPlaces++
		if place.IsVisited {
			stats.VisitedPlaces++
		}
		stats.PlacesByCity[string(place.City)]++
		stats.PlacesByType[string(place.Type)]++
	}
	stats.UnvisitedPlaces = stats.TotalPlaces - stats.VisitedPlaces

	return stats, nil
}

// buildPlaceChanges maps the request onto repository changes. Present
// fields replace stored values; a present null is only legal on
// nullable columns.
func buildPlaceChanges(req *request.UpdatePlaceRequest) (*repository.PlaceChanges, error) {
	if (req.Has("name") && req.Name == nil) ||
		(req.Has("address") && req.Address == nil) ||
		(req.Has("type") && req.Type == nil) ||
		(req.Has("city") && req.City == nil) ||
		(req.Has("is_visited") && req.IsVisited == nil) {
		return nil, fmt.Errorf("validation failed: field cannot be null")
	}

	changes := &repository.PlaceChanges{
		Name:      req.Name,
		Address:   req.Address,
		IsVisited: req.IsVisited,
	}

	if req.Type != nil {
		placeType := entity.PlaceType(*req.Type)
		changes.Type = &placeType
	}
	if req.City != nil {
		city := entity.City(*req.City)
		changes.City = &city
	}

	if req.Has("google_maps_url") {
		changes.SetGoogleMapsURL = true
		changes.GoogleMapsURL = req.GoogleMapsURL
	}
	if req.Has("google_place_id") {
		changes.SetGooglePlaceID = true
		changes.GooglePlaceID = req.GooglePlaceID
	}
	if req.Has("notes") {
		changes.SetNotes = true
		changes.Notes = req.Notes
	}

	return changes, nil
}
