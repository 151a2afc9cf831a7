package repository

import (
	"context"

	"gorm.io/gorm"

	"reservas/internal/model"
)

// ReservationRepository defines reservation persistence operations.
type ReservationRepository interface {
	Create(ctx context.Context, reservation *model.Reservation) error
	ListByUser(ctx context.Context, userID uint) ([]model.Reservation, error)
	ListWithOwner(ctx context.Context) ([]model.ReservationWithOwner, error)
	Delete(ctx context.Context, id uint) error
}

type reservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository creates a new reservation repository.
func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

// Create inserts the reservation in a single statement. The slot index turns a
// double booking into gorm.ErrDuplicatedKey and an unknown owner into
// gorm.ErrForeignKeyViolated.
func (r *reservationRepository) Create(ctx context.Context, reservation *model.Reservation) error {
	return r.db.WithContext(ctx).Omit("User").Create(reservation).Error
}

// ListByUser returns a user's reservations, latest date first, then by time.
func (r *reservationRepository) ListByUser(ctx context.Context, userID uint) ([]model.Reservation, error) {
	reservations := make([]model.Reservation, 0)
	if err := r.db.WithContext(ctx).
		Where("usuario_id = ?", userID).
		Order("fecha DESC").Order("hora ASC").
		Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

// ListWithOwner returns every reservation joined with its owner's name and e-mail.
func (r *reservationRepository) ListWithOwner(ctx context.Context) ([]model.ReservationWithOwner, error) {
	reservations := make([]model.ReservationWithOwner, 0)
	if err := r.db.WithContext(ctx).
		Table("reserva AS r").
		Select("r.id, r.tipo, r.ubicacion, r.espacio, r.fecha, r.hora, r.motivo, r.usuario_id, " +
			"u.nombre AS usuario_nombre, u.correo AS usuario_correo").
		Joins("JOIN usuario u ON r.usuario_id = u.id").
		Order("r.fecha DESC").Order("r.hora ASC").
		Scan(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

// Delete removes a reservation by id, returning gorm.ErrRecordNotFound when nothing matched.
func (r *reservationRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Reservation{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
