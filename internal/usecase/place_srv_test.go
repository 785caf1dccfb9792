package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"vietnam-places/internal/data/entity"
	"vietnam-places/internal/data/repository"
	"vietnam-places/internal/dto/request"
	"vietnam-places/internal/dto/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newPlaceFixture(t *testing.T) (PlaceService, *fakePlaceRepo, int64) {
	t.Helper()

	userRepo := newFakeUserRepo()
	placeRepo := newFakePlaceRepo()
	repo := &repository.Repository{
		User:  userRepo,
		Place: placeRepo,
	}

	hash := "$2a$10$irrelevant"
	owner := &entity.User{
		Email:        "linh@example.com",
		PasswordHash: &hash,
		Name:         "Linh",
	}
	require.NoError(t, userRepo.Create(context.Background(), owner))

	return NewPlaceService(repo, zap.NewNop()), placeRepo, owner.ID
}

func strPtr(s string) *string { return &s }

func createTestPlace(t *testing.T, svc PlaceService, userID int64, name, city, placeType string) *response.PlaceResponse {
	t.Helper()

	resp, err := svc.CreatePlace(context.Background(), userID, &request.CreatePlaceRequest{
		Name:    name,
		Address: "123 Test Street",
		Type:    placeType,
		City:    city,
	})
	require.NoError(t, err)
	return resp
}

func TestCreatePlace(t *testing.T) {
	svc, placeRepo, userID := newPlaceFixture(t)

	resp, err := svc.CreatePlace(context.Background(), userID, &request.CreatePlaceRequest{
		Name:          "Ben Thanh Market",
		Address:       "Le Loi, Ben Thanh Ward, District 1",
		Type:          "market",
		City:          "Ho Chi Minh City",
		GoogleMapsURL: strPtr("https://maps.google.com/?q=ben+thanh"),
		Notes:         strPtr("go early, gets crowded"),
	})
	require.NoError(t, err)

	assert.NotZero(t, resp.ID)
	assert.Equal(t, userID, resp.UserID)
	// New places always start unvisited
	assert.False(t, resp.IsVisited)
	assert.Equal(t, "market", resp.Type)
	assert.Len(t, placeRepo.places, 1)
}

func TestCreatePlaceUnknownOwner(t *testing.T) {
	svc, placeRepo, _ := newPlaceFixture(t)

	_, err := svc.CreatePlace(context.Background(), 9999, &request.CreatePlaceRequest{
		Name:    "Ben Thanh Market",
		Address: "Le Loi, District 1",
		Type:    "market",
		City:    "Ho Chi Minh City",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.Empty(t, placeRepo.places)
}

func TestCreatePlaceValidation(t *testing.T) {
	svc, _, userID := newPlaceFixture(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  request.CreatePlaceRequest
	}{
		{"missing name", request.CreatePlaceRequest{Address: "a", Type: "cafe", City: "Hanoi"}},
		{"bad type", request.CreatePlaceRequest{Name: "x", Address: "a", Type: "casino", City: "Hanoi"}},
		{"bad city", request.CreatePlaceRequest{Name: "x", Address: "a", Type: "cafe", City: "Bangkok"}},
		{"bad url", request.CreatePlaceRequest{Name: "x", Address: "a", Type: "cafe", City: "Hanoi",
			GoogleMapsURL: strPtr("not a url")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreatePlace(ctx, userID, &tt.req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation failed")
		})
	}
}

func TestListPlacesFilterComposition(t *testing.T) {
	svc, _, userID := newPlaceFixture(t)
	ctx := context.Background()

	a := createTestPlace(t, svc, userID, "A", "Hanoi", "market")
	createTestPlace(t, svc, userID, "B", "Hanoi", "cafe")
	createTestPlace(t, svc, userID, "C", "Da Nang", "market")

	// Mark A visited
	visited := true
	_, err := svc.UpdatePlace(ctx, a.ID, userID, updateReq(t, `{"is_visited": true}`))
	require.NoError(t, err)

	city := entity.CityHanoi
	placeType := entity.TypeMarket
	result, err := svc.ListPlaces(ctx, userID, &repository.PlaceFilter{
		City:      &city,
		Type:      &placeType,
		IsVisited: &visited,
	})
	require.NoError(t, err)

	require.Len(t, result, 1)
	assert.Equal(t, "A", result[0].Name)
}

func TestListPlacesNoFilter(t *testing.T) {
	svc, _, userID := newPlaceFixture(t)
	ctx := context.Background()

	createTestPlace(t, svc, userID, "A", "Hanoi", "market")
	createTestPlace(t, svc, userID, "B", "Hue", "temple")

	result, err := svc.ListPlaces(ctx, userID, nil)
	require.NoError(t, err)
	assert.Len(t, result, 2)

	// No matches is an empty list, not an error
	result, err = svc.ListPlaces(ctx, 9999, nil)
	require.NoError(t, err)
	assert.Empty(t, result)
}

// updateReq builds an UpdatePlaceRequest from raw JSON so key
// presence is tracked exactly as it would be for a real request body.
func updateReq(t *testing.T, body string) *request.UpdatePlaceRequest {
	t.Helper()

	var req request.UpdatePlaceRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return &req
}

func TestUpdatePlacePartial(t *testing.T) {
	svc, placeRepo, userID := newPlaceFixture(t)
	ctx := context.Background()

	created := createTestPlace(t, svc, userID, "Old Name", "Hanoi", "cafe")

	// Backdate so the strictly-increasing check is meaningful
	placeRepo.places[created.ID].UpdatedAt = time.Now().Add(-time.Hour)
	before := placeRepo.places[created.ID].UpdatedAt

	resp, err := svc.UpdatePlace(ctx, created.ID, userID, updateReq(t, `{"name": "New Name"}`))
	require.NoError(t, err)

	assert.Equal(t, "New Name", resp.Name)
	// Omitted fields keep their stored values
	assert.Equal(t, created.Address, resp.Address)
	assert.Equal(t, created.Type, resp.Type)
	assert.Equal(t, created.City, resp.City)
	assert.False(t, resp.IsVisited)
	assert.True(t, resp.UpdatedAt.After(before))
}

func TestUpdatePlaceExplicitNullClearsNotes(t *testing.T) {
	svc, placeRepo, userID := newPlaceFixture(t)
	ctx := context.Background()

	created := createTestPlace(t, svc, userID, "Cafe", "Hanoi", "cafe")
	_, err := svc.UpdatePlace(ctx, created.ID, userID, updateReq(t, `{"notes": "try the egg coffee"}`))
	require.NoError(t, err)
	require.NotNil(t, placeRepo.places[created.ID].Notes)

	resp, err := svc.UpdatePlace(ctx, created.ID, userID, updateReq(t, `{"notes": null}`))
	require.NoError(t, err)

	assert.Nil(t, resp.Notes)
	assert.Nil(t, placeRepo.places[created.ID].Notes)
}

func TestUpdatePlaceNullOnRequiredField(t *testing.T) {
	svc, _, userID := newPlaceFixture(t)

	created := createTestPlace(t, svc, userID, "Cafe", "Hanoi", "cafe")

	_, err := svc.UpdatePlace(context.Background(), created.ID, userID, updateReq(t, `{"name": null}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestUpdatePlaceWrongOwner(t *testing.T) {
	svc, placeRepo, userID := newPlaceFixture(t)
	ctx := context.Background()

	created := createTestPlace(t, svc, userID, "Cafe", "Hanoi", "cafe")

	_, err := svc.UpdatePlace(ctx, created.ID, userID+1, updateReq(t, `{"name": "Hijacked"}`))
	require.Error(t, err)
	// Existence and ownership collapse into one message
	assert.Contains(t, err.Error(), "not found or access denied")
	assert.Equal(t, "Cafe", placeRepo.places[created.ID].Name)

	// Same message for a place that does not exist at all
	_, err = svc.UpdatePlace(ctx, 9999, userID, updateReq(t, `{"name": "Ghost"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found or access denied")
}

func TestDeletePlace(t *testing.T) {
	svc, placeRepo, userID := newPlaceFixture(t)
	ctx := context.Background()

	created := createTestPlace(t, svc, userID, "Cafe", "Hanoi", "cafe")

	// Wrong owner: false flag, row untouched
	deleted, err := svc.DeletePlace(ctx, created.ID, userID+1)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Len(t, placeRepo.places, 1)

	deleted, err = svc.DeletePlace(ctx, created.ID, userID)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Empty(t, placeRepo.places)

	// Second delete of the same id: false, still no error
	deleted, err = svc.DeletePlace(ctx, created.ID, userID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestGetStatsEmpty(t *testing.T) {
	svc, _, userID := newPlaceFixture(t)

	stats, err := svc.GetStats(context.Background(), userID)
	require.NoError(t, err)

	assert.Zero(t, stats.TotalPlaces)
	assert.Zero(t, stats.VisitedPlaces)
	assert.Zero(t, stats.UnvisitedPlaces)
	assert.Empty(t, stats.PlacesByCity)
	assert.Empty(t, stats.PlacesByType)
}

func TestGetStatsDistribution(t *testing.T) {
	svc, _, userID := newPlaceFixture(t)
	ctx := context.Background()

	a := createTestPlace(t, svc, userID, "A", "Hanoi", "restaurant")
	b := createTestPlace(t, svc, userID, "B", "Hanoi", "restaurant")
	createTestPlace(t, svc, userID, "C", "Da Nang", "cafe")
	createTestPlace(t, svc, userID, "D", "Hue", "park")

	for _, id := range []int64{a.ID, b.ID} {
		_, err := svc.UpdatePlace(ctx, id, userID, updateReq(t, `{"is_visited": true}`))
		require.NoError(t, err)
	}

	stats, err := svc.GetStats(ctx, userID)
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalPlaces)
	assert.Equal(t, 2, stats.VisitedPlaces)
	assert.Equal(t, 2, stats.UnvisitedPlaces)
	assert.Equal(t, map[string]int{"Hanoi": 2, "Da Nang": 1, "Hue": 1}, stats.PlacesByCity)
	// Zero-count categories are absent, not present with 0
	assert.Equal(t, map[string]int{"restaurant": 2, "cafe": 1, "park": 1}, stats.PlacesByType)
}
