package request

import (
	"encoding/json"
	"testing"
)

func TestUpdatePlaceRequestPresence(t *testing.T) {
	var req UpdatePlaceRequest
	body := `{"name": "New Name", "notes": null}`

	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !req.Has("name") {
		t.Error("expected name to be present")
	}
	if req.Name == nil || *req.Name != "New Name" {
		t.Errorf("unexpected name: %v", req.Name)
	}

	// Explicit null: present but nil
	if !req.Has("notes") {
		t.Error("expected notes to be present")
	}
	if req.Notes != nil {
		t.Errorf("expected nil notes, got %q", *req.Notes)
	}

	// Omitted entirely
	if req.Has("address") {
		t.Error("expected address to be absent")
	}
	if req.Has("is_visited") {
		t.Error("expected is_visited to be absent")
	}
}

func TestUpdatePlaceRequestEmptyBody(t *testing.T) {
	var req UpdatePlaceRequest

	if err := json.Unmarshal([]byte(`{}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, field := range []string{"name", "address", "google_maps_url", "google_place_id", "type", "city", "notes", "is_visited"} {
		if req.Has(field) {
			t.Errorf("expected %s to be absent", field)
		}
	}
}
