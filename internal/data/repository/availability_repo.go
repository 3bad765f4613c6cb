package repository

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AvailabilityRepository interface {
	// LoadForPlan returns a point-in-time snapshot keyed by date key.
	// An unseeded plan yields an empty map, not an error.
	LoadForPlan(ctx context.Context, planID uuid.UUID) (map[string]entity.Availability, error)
	FindByDate(ctx context.Context, planID uuid.UUID, dateKey string) (*entity.Availability, error)
}

type availabilityRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAvailabilityRepository(db database.PgxIface, log *zap.Logger) AvailabilityRepository {
	return &availabilityRepository{
		db:  db,
		log: log.With(zap.String("repository", "availability")),
	}
}

func (r *availabilityRepository) LoadForPlan(ctx context.Context, planID uuid.UUID) (map[string]entity.Availability, error) {
	query := `
		SELECT plan_id, date_key, rooms, booked
		FROM availability
		WHERE plan_id = $1
	`

	rows, err := r.db.Query(ctx, query, planID)
	if err != nil {
		r.log.Error("Failed to load availability",
			zap.Error(err),
			zap.String("plan_id", planID.String()),
		)
		return nil, fmt.Errorf("load availability for plan %s: %w", planID.String(), err)
	}
	defer rows.Close()

	availability := make(map[string]entity.Availability)
	for rows.Next() {
		var entry entity.Availability
		err := rows.Scan(
			&entry.PlanID,
			&entry.DateKey,
			&entry.Rooms,
			&entry.Booked,
		)
		if err != nil {
			r.log.Error("Failed to scan availability row", zap.Error(err))
			return nil, fmt.Errorf("scan availability row: %w", err)
		}
		availability[entry.DateKey] = entry
	}

	return availability, nil
}

func (r *availabilityRepository) FindByDate(ctx context.Context, planID uuid.UUID, dateKey string) (*entity.Availability, error) {
	query := `
		SELECT plan_id, date_key, rooms, booked
		FROM availability
		WHERE plan_id = $1 AND date_key = $2
	`

	var entry entity.Availability
	err := r.db.QueryRow(ctx, query, planID, dateKey).Scan(
		&entry.PlanID,
		&entry.DateKey,
		&entry.Rooms,
		&entry.Booked,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find availability entry",
			zap.Error(err),
			zap.String("plan_id", planID.String()),
			zap.String("date_key", dateKey),
		)
		return nil, fmt.Errorf("find availability %s/%s: %w", planID.String(), dateKey, err)
	}

	return &entry, nil
}
