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

type ReservationRepository interface {
	// CreateWithBookedIncrements inserts the reservation and increments
	// booked on the check-in and check-out availability rows in one
	// transaction. Each increment is conditional on booked < rooms;
	// when a date has no row or no remaining capacity the transaction
	// aborts with ErrNoCapacity and nothing is persisted.
	CreateWithBookedIncrements(ctx context.Context, reservation *entity.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Reservation, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}

type reservationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReservationRepository(db database.PgxIface, log *zap.Logger) ReservationRepository {
	return &reservationRepository{
		db:  db,
		log: log.With(zap.String("repository", "reservation")),
	}
}

const reservationColumns = `
	id, reservation_number, hotel_id, plan_id, user_id,
	check_in_date, check_out_date, status,
	plan_name, hotel_name, price, check_in_time, check_out_time,
	user_email, reserved_at, created_at
`

func (r *reservationRepository) CreateWithBookedIncrements(ctx context.Context, reservation *entity.Reservation) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin reservation transaction", zap.Error(err))
		return fmt.Errorf("begin reservation transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	insert := `
		INSERT INTO reservations (` + reservationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err = tx.Exec(ctx, insert,
		reservation.ID,
		reservation.ReservationNumber,
		reservation.HotelID,
		reservation.PlanID,
		reservation.UserID,
		reservation.CheckInDate,
		reservation.CheckOutDate,
		reservation.Status,
		reservation.PlanName,
		reservation.HotelName,
		reservation.Price,
		reservation.CheckInTime,
		reservation.CheckOutTime,
		reservation.UserEmail,
		reservation.ReservedAt,
		reservation.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to insert reservation",
			zap.Error(err),
			zap.String("reservation_number", reservation.ReservationNumber),
		)
		return fmt.Errorf("insert reservation %s: %w", reservation.ReservationNumber, err)
	}

	// One increment per affected date. A duration-1 plan targets the
	// same row twice and both increments must land.
	increment := `
		UPDATE availability
		SET booked = booked + 1
		WHERE plan_id = $1 AND date_key = $2 AND booked < rooms
	`

	checkInKey := entity.DateKey(reservation.CheckInDate)
	checkOutKey := entity.DateKey(reservation.CheckOutDate)

	for _, dateKey := range []string{checkInKey, checkOutKey} {
		tag, err := tx.Exec(ctx, increment, reservation.PlanID, dateKey)
		if err != nil {
			r.log.Error("Failed to increment booked count",
				zap.Error(err),
				zap.String("plan_id", reservation.PlanID.String()),
				zap.String("date_key", dateKey),
			)
			return fmt.Errorf("increment booked for %s: %w", dateKey, err)
		}

		if tag.RowsAffected() == 0 {
			r.log.Warn("No capacity left during reservation commit",
				zap.String("plan_id", reservation.PlanID.String()),
				zap.String("date_key", dateKey),
			)
			return fmt.Errorf("increment booked for %s: %w", dateKey, ErrNoCapacity)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit reservation transaction",
			zap.Error(err),
			zap.String("reservation_number", reservation.ReservationNumber),
		)
		return fmt.Errorf("commit reservation %s: %w", reservation.ReservationNumber, err)
	}

	return nil
}

func (r *reservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

	reservation, err := r.scanOne(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reservation by ID",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return nil, fmt.Errorf("find reservation by ID %s: %w", id.String(), err)
	}

	return reservation, nil
}

func (r *reservationRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find reservations by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find reservations by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var reservations []*entity.Reservation
	for rows.Next() {
		reservation, err := r.scanOne(rows)
		if err != nil {
			r.log.Error("Failed to scan reservation row", zap.Error(err))
			return nil, fmt.Errorf("scan reservation row: %w", err)
		}
		reservations = append(reservations, reservation)
	}

	return reservations, nil
}

func (r *reservationRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM reservations WHERE user_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count reservations by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count reservations by user ID %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *reservationRepository) scanOne(row pgx.Row) (*entity.Reservation, error) {
	var reservation entity.Reservation
	err := row.Scan(
		&reservation.ID,
		&reservation.ReservationNumber,
		&reservation.HotelID,
		&reservation.PlanID,
		&reservation.UserID,
		&reservation.CheckInDate,
		&reservation.CheckOutDate,
		&reservation.Status,
		&reservation.PlanName,
		&reservation.HotelName,
		&reservation.Price,
		&reservation.CheckInTime,
		&reservation.CheckOutTime,
		&reservation.UserEmail,
		&reservation.ReservedAt,
		&reservation.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &reservation, nil
}
