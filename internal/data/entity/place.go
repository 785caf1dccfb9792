package entity

type Place struct {
	Base
	UserID        int64     `db:"user_id"`
	Name          string    `db:"name"`
	Address       string    `db:"address"`
	GoogleMapsURL *string   `db:"google_maps_url"`
	GooglePlaceID *string   `db:"google_place_id"`
	Type          PlaceType `db:"type"`
	City          City      `db:"city"`
	Notes         *string   `db:"notes"`
	IsVisited     bool      `db:"is_visited"`
}
