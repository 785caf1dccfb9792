package request

import (
	"encoding/json"
)

type CreatePlaceRequest struct {
	Name          string  `json:"name" validate:"required,min=1,max=200"`
	Address       string  `json:"address" validate:"required,min=1,max=500"`
	GoogleMapsURL *string `json:"google_maps_url,omitempty" validate:"omitempty,url"`
	GooglePlaceID *string `json:"google_place_id,omitempty"`
	Type          string  `json:"type" validate:"required,place_type"`
	City          string  `json:"city" validate:"required,vn_city"`
	Notes         *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

// UpdatePlaceRequest is a partial update: omitted fields keep their
// stored value, while an explicit null clears a nullable column. The
// two cases both decode to a nil pointer, so key presence is recorded
// separately during unmarshalling.
type UpdatePlaceRequest struct {
	Name          *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Address       *string `json:"address,omitempty" validate:"omitempty,min=1,max=500"`
	GoogleMapsURL *string `json:"google_maps_url,omitempty" validate:"omitempty,url"`
	GooglePlaceID *string `json:"google_place_id,omitempty"`
	Type          *string `json:"type,omitempty" validate:"omitempty,place_type"`
	City          *string `json:"city,omitempty" validate:"omitempty,vn_city"`
	Notes         *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
	IsVisited     *bool   `json:"is_visited,omitempty"`

	present map[string]bool
}

func (r *UpdatePlaceRequest) UnmarshalJSON(data []byte) error {
	type alias UpdatePlaceRequest

	var fields alias
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}

	*r = UpdatePlaceRequest(fields)
	r.present = make(map[string]bool, len(keys))
	for k := range keys {
		r.present[k] = true
	}

	return nil
}

// Has reports whether the JSON key appeared in the request body,
// including with a null value.
func (r *UpdatePlaceRequest) Has(field string) bool {
	return r.present[field]
}
