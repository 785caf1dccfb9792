package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"vietnam-places/internal/data/entity"
	"vietnam-places/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// PlaceFilter narrows FindByUser results. Nil fields are not applied;
// supplied fields combine with AND.
type PlaceFilter struct {
	City      *entity.City
	Type      *entity.PlaceType
	IsVisited *bool
}

// PlaceChanges describes a partial update. Plain pointer fields are
// applied when non-nil. Nullable columns carry a Set flag so an
// explicit null can be distinguished from an omitted field.
type PlaceChanges struct {
	Name      *string
	Address   *string
	Type      *entity.PlaceType
	City      *entity.City
	IsVisited *bool

	GoogleMapsURL    *string
	SetGoogleMapsURL bool
	GooglePlaceID    *string
	SetGooglePlaceID bool
	Notes            *string
	SetNotes         bool
}

type PlaceRepository interface {
	Create(ctx context.Context, place *entity.Place) error
	FindByUser(ctx context.Context, userID int64, filter *PlaceFilter) ([]*entity.Place, error)
	Update(ctx context.Context, id, userID int64, changes *PlaceChanges) (*entity.Place, error)
	Delete(ctx context.Context, id, userID int64) (bool, error)
}

type placeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPlaceRepository(db database.PgxIface, log *zap.Logger) PlaceRepository {
	return &placeRepository{
		db:  db,
		log: log.With(zap.String("repository", "place")),
	}
}

const placeColumns = `id, user_id, name, address, google_maps_url, google_place_id,
		       type, city, notes, is_visited, created_at, updated_at`

func scanPlace(row pgx.Row) (*entity.Place, error) {
	var place entity.Place
	err := row.Scan(
		&place.ID,
		&place.UserID,
		&place.Name,
		&place.Address,
		&place.GoogleMapsURL,
		&place.GooglePlaceID,
		&place.Type,
		&place.City,
		&place.Notes,
		&place.IsVisited,
		&place.CreatedAt,
		&place.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &place, nil
}

// Create inserts a new place record. The generated id is written back
// into the entity.
func (pr *placeRepository) Create(ctx context.Context, place *entity.Place) error {
	query := `
		INSERT INTO places (user_id, name, address, google_maps_url, google_place_id,
		                    type, city, notes, is_visited, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	err := pr.db.QueryRow(ctx, query,
		place.UserID,
		place.Name,
		place.Address,
		place.GoogleMapsURL,
		place.GooglePlaceID,
		place.Type,
		place.City,
		place.Notes,
		place.IsVisited,
		place.CreatedAt,
		place.UpdatedAt,
	).Scan(&place.ID)

	if err != nil {
		pr.log.Error("Failed to create place",
			zap.Error(err),
			zap.Int64("user_id", place.UserID),
			zap.String("name", place.Name),
		)
		return fmt.Errorf("create place for user %d: %w", place.UserID, err)
	}

	return nil
}

// FindByUser returns all places owned by userID, narrowed by the
// optional filter fields. No pagination, no ordering guarantee.
func (pr *placeRepository) FindByUser(ctx context.Context, userID int64, filter *PlaceFilter) ([]*entity.Place, error) {
	query := fmt.Sprintf(`SELECT %s FROM places WHERE user_id = $1`, placeColumns)
	args := []any{userID}

	if filter != nil {
		if filter.City != nil {
			args = append(args, *filter.City)
			query += fmt.Sprintf(" AND city = $%d", len(args))
		}
		if filter.Type != nil {
			args = append(args, *filter.Type)
			query += fmt.Sprintf(" AND type = $%d", len(args))
		}
		if filter.IsVisited != nil {
			args = append(args, *filter.IsVisited)
			query += fmt.Sprintf(" AND is_visited = $%d", len(args))
		}
	}

	rows, err := pr.db.Query(ctx, query, args...)
	if err != nil {
		pr.log.Error("Failed to find places by user",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("find places by user %d: %w", userID, err)
	}
	defer rows.Close()

	var places []*entity.Place
	for rows.Next() {
		place, err := scanPlace(rows)
		if err != nil {
			pr.log.Error("Failed to scan place row", zap.Error(err))
			return nil, fmt.Errorf("scan place row: %w", err)
		}
		places = append(places, place)
	}

	if err := rows.Err(); err != nil {
		pr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate places rows: %w", err)
	}

	return places, nil
}

// Update applies a partial update guarded by the ownership predicate.
// Check and mutation are one statement, so a concurrent delete cannot
// slip between them. Returns (nil, nil) when no place with that id is
// owned by userID.
func (pr *placeRepository) Update(ctx context.Context, id, userID int64, changes *PlaceChanges) (*entity.Place, error) {
	set := []string{"updated_at = $3"}
	args := []any{id, userID, time.Now()}

	addSet := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if changes.Name != nil {
		addSet("name", *changes.Name)
	}
	if changes.Address != nil {
		addSet("address", *changes.Address)
	}
	if changes.Type != nil {
		addSet("type", *changes.Type)
	}
	if changes.City != nil {
		addSet("city", *changes.City)
	}
	if changes.IsVisited != nil {
		addSet("is_visited", *changes.IsVisited)
	}
	// Nullable columns: a nil value with the Set flag clears the column
	if changes.SetGoogleMapsURL {
		addSet("google_maps_url", changes.GoogleMapsURL)
	}
	if changes.SetGooglePlaceID {
		addSet("google_place_id", changes.GooglePlaceID)
	}
	if changes.SetNotes {
		addSet("notes", changes.Notes)
	}

	query := fmt.Sprintf(`
		UPDATE places
		SET %s
		WHERE id = $1 AND user_id = $2
		RETURNING %s
	`, strings.Join(set, ", "), placeColumns)

	place, err := scanPlace(pr.db.QueryRow(ctx, query, args...))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		pr.log.Error("Failed to update place",
			zap.Error(err),
			zap.Int64("place_id", id),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("update place %d for user %d: %w", id, userID, err)
	}

	return place, nil
}

// Delete removes the place only when owned by userID. The bool result
// reports whether a row was deleted; a miss is not an error.
func (pr *placeRepository) Delete(ctx context.Context, id, userID int64) (bool, error) {
	query := `DELETE FROM places WHERE id = $1 AND user_id = $2`

	result, err := pr.db.Exec(ctx, query, id, userID)
	if err != nil {
		pr.log.Error("Failed to delete place",
			zap.Error(err),
			zap.Int64("place_id", id),
			zap.Int64("user_id", userID),
		)
		return false, fmt.Errorf("delete place %d for user %d: %w", id, userID, err)
	}

	return result.RowsAffected() > 0, nil
}
