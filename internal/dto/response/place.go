package response

import (
	"time"

	"vietnam-places/internal/data/entity"
)

type PlaceResponse struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	Name          string    `json:"name"`
	Address       string    `json:"address"`
	GoogleMapsURL *string   `json:"google_maps_url"`
	GooglePlaceID *string   `json:"google_place_id"`
	Type          string    `json:"type"`
	City          string    `json:"city"`
	Notes         *string   `json:"notes"`
	IsVisited     bool      `json:"is_visited"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type PlaceStats struct {
	TotalPlaces     int            `json:"total_places"`
	VisitedPlaces   int            `json:"visited_places"`
	UnvisitedPlaces int            `json:"unvisited_places"`
	PlacesByCity    map[string]int `json:"places_by_city"`
	PlacesByType    map[string]int `json:"places_by_type"`
}

// Helper converter
func PlaceToResponse(place *entity.Place) PlaceResponse {
	return PlaceResponse{
		ID:            place.ID,
		UserID:        place.UserID,
		Name:          place.Name,
		Address:       place.Address,
		GoogleMapsURL: place.GoogleMapsURL,
		GooglePlaceID: place.GooglePlaceID,
		Type:          string(place.Type),
		City:          string(place.City),
		Notes:         place.Notes,
		IsVisited:     place.IsVisited,
		CreatedAt:     place.CreatedAt,
		UpdatedAt:     place.UpdatedAt,
	}
}

func PlacesToResponse(places []*entity.Place) []PlaceResponse {
	result := make([]PlaceResponse, 0, len(places))
	for _, place := range places {
		result = append(result, PlaceToResponse(place))
	}
	return result
}
