package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"vietnam-places/internal/data/entity"
	"vietnam-places/internal/data/repository"
)

// In-memory repositories implementing the same contracts as the
// postgres ones, including ownership-guarded update/delete.

type fakeUserRepo struct {
	users  map[int64]*entity.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*entity.User), nextID: 1}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	user.ID = f.nextID
	f.nextID++
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	found := *user
	return &found, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, id := range f.sortedIDs() {
		if f.users[id].Email == email {
			found := *f.users[id]
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByGoogleIDOrEmail(ctx context.Context, googleID, email string) (*entity.User, error) {
	for _, id := range f.sortedIDs() {
		user := f.users[id]
		if (user.GoogleID != nil && *user.GoogleID == googleID) || user.Email == email {
			found := *user
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return fmt.Errorf("user %d not found", user.ID)
	}
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) sortedIDs() []int64 {
	ids := make([]int64, 0, len(f.users))
	for id := range f.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

type fakePlaceRepo struct {
	places map[int64]*entity.Place
	nextID int64
}

func newFakePlaceRepo() *fakePlaceRepo {
	return &fakePlaceRepo{places: make(map[int64]*entity.Place), nextID: 1}
}

func (f *fakePlaceRepo) Create(ctx context.Context, place *entity.Place) error {
	place.ID = f.nextID
	f.nextID++
	stored := *place
	f.places[place.ID] = &stored
	return nil
}

func (f *fakePlaceRepo) FindByUser(ctx context.Context, userID int64, filter *repository.PlaceFilter) ([]*entity.Place, error) {
	var result []*entity.Place
	for _, id := range f.sortedIDs() {
		place := f.places[id]
		if place.UserID != userID {
			continue
		}
		if filter != nil {
			if filter.City != nil && place.City != *filter.City {
				continue
			}
			if filter.Type != nil && place.Type != *filter.Type {
				continue
			}
			if filter.IsVisited != nil && place.IsVisited != *filter.IsVisited {
				continue
			}
		}
		found := *place
		result = append(result, &found)
	}
	return result, nil
}

func (f *fakePlaceRepo) Update(ctx context.Context, id, userID int64, changes *repository.PlaceChanges) (*entity.Place, error) {
	place, ok := f.places[id]
	if !ok || place.UserID != userID {
		return nil, nil
	}

	place.UpdatedAt = time.Now()
	if changes.Name != nil {
		place.Name = *changes.Name
	}
	if changes.Address != nil {
		place.Address = *changes.Address
	}
	if changes.Type != nil {
		place.Type = *changes.Type
	}
	if changes.City != nil {
		place.City = *changes.City
	}
	if changes.IsVisited != nil {
		place.IsVisited = *changes.IsVisited
	}
	if changes.SetGoogleMapsURL {
		place.GoogleMapsURL = changes.GoogleMapsURL
	}
	if changes.SetGooglePlaceID {
		place.GooglePlaceID = changes.GooglePlaceID
	}
	if changes.SetNotes {
		place.Notes = changes.Notes
	}

	updated := *place
	return &updated, nil
}

func (f *fakePlaceRepo) Delete(ctx context.Context, id, userID int64) (bool, error) {
	place, ok := f.places[id]
	if !ok || place.UserID != userID {
		return false, nil
	}
	delete(f.places, id)
	return true, nil
}

func (f *fakePlaceRepo) sortedIDs() []int64 {
	ids := make([]int64, 0, len(f.places))
	for id := range f.places {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
