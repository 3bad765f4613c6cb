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

type PlanRepository interface {
	FindByHotelID(ctx context.Context, hotelID uuid.UUID) ([]*entity.Plan, error)
	FindByID(ctx context.Context, hotelID, planID uuid.UUID) (*entity.Plan, error)
}

type planRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPlanRepository(db database.PgxIface, log *zap.Logger) PlanRepository {
	return &planRepository{
		db:  db,
		log: log.With(zap.String("repository", "plan")),
	}
}

func (r *planRepository) FindByHotelID(ctx context.Context, hotelID uuid.UUID) ([]*entity.Plan, error) {
	query := `
		SELECT id, hotel_id, name, price, description, duration, check_in_time, check_out_time, created_at
		FROM plans
		WHERE hotel_id = $1
		ORDER BY price
	`

	rows, err := r.db.Query(ctx, query, hotelID)
	if err != nil {
		r.log.Error("Failed to find plans by hotel ID",
			zap.Error(err),
			zap.String("hotel_id", hotelID.String()),
		)
		return nil, fmt.Errorf("find plans by hotel ID %s: %w", hotelID.String(), err)
	}
	defer rows.Close()

	var plans []*entity.Plan
	for rows.Next() {
		var plan entity.Plan
		err := rows.Scan(
			&plan.ID,
			&plan.HotelID,
			&plan.Name,
			&plan.Price,
			&plan.Description,
			&plan.Duration,
			&plan.CheckInTime,
			&plan.CheckOutTime,
			&plan.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan plan row", zap.Error(err))
			return nil, fmt.Errorf("scan plan row: %w", err)
		}
		plans = append(plans, &plan)
	}

	return plans, nil
}

func (r *planRepository) FindByID(ctx context.Context, hotelID, planID uuid.UUID) (*entity.Plan, error) {
	query := `
		SELECT id, hotel_id, name, price, description, duration, check_in_time, check_out_time, created_at
		FROM plans
		WHERE id = $1 AND hotel_id = $2
	`

	var plan entity.Plan
	err := r.db.QueryRow(ctx, query, planID, hotelID).Scan(
		&plan.ID,
		&plan.HotelID,
		&plan.Name,
		&plan.Price,
		&plan.Description,
		&plan.Duration,
		&plan.CheckInTime,
		&plan.CheckOutTime,
		&plan.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find plan by ID",
			zap.Error(err),
			zap.String("hotel_id", hotelID.String()),
			zap.String("plan_id", planID.String()),
		)
		return nil, fmt.Errorf("find plan by ID %s: %w", planID.String(), err)
	}

	return &plan, nil
}
