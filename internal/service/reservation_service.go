package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"

	"reservas/internal/cache"
	apperrors "reservas/internal/errors"
	"reservas/internal/events"
	"reservas/internal/model"
	"reservas/internal/obs"
	"reservas/internal/repository"
)

const (
	reservationCachePrefix = "reservas:"
	// generationKey sits outside the prefix so invalidation never deletes it.
	generationKey = "reservas-gen"
)

// CreateReservationInput carries the fields of a booking request.
type CreateReservationInput struct {
	Type     string
	Location string
	Space    string
	Date     string
	Time     string
	Reason   string
	UserID   uint
}

// ReservationService handles booking operations.
type ReservationService interface {
	Create(ctx context.Context, in CreateReservationInput) (*model.Reservation, error)
	ListByUser(ctx context.Context, userID uint) ([]model.Reservation, error)
	ListAll(ctx context.Context) ([]model.ReservationWithOwner, error)
	Delete(ctx context.Context, id uint) error
}

type reservationService struct {
	repo     repository.ReservationRepository
	cache    *cache.Client
	cacheTTL time.Duration
	events   events.Emitter
}

// ReservationOption configures optional collaborators of the reservation service.
type ReservationOption func(*reservationService)

// WithEvents publishes reservation events through e.
func WithEvents(e events.Emitter) ReservationOption {
	return func(s *reservationService) {
		s.events = e
	}
}

// NewReservationService creates a new reservation service. A nil cache disables caching.
func NewReservationService(repo repository.ReservationRepository, cache *cache.Client, cacheTTL time.Duration, opts ...ReservationOption) ReservationService {
	s := &reservationService{
		repo:     repo,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// cacheKey scopes a listing key to the current cache generation. Every write
// bumps the generation, so a list read before the write lands under a key
// that is never read again. ok is false when the cache cannot be used.
func (s *reservationService) cacheKey(ctx context.Context, suffix string) (key string, ok bool) {
	gen, ok := s.cache.Counter(ctx, generationKey)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%s%d:%s", reservationCachePrefix, gen, suffix), true
}

// Create books a slot with a single insert; the slot index rejects double bookings.
func (s *reservationService) Create(ctx context.Context, in CreateReservationInput) (reservation *model.Reservation, err error) {
	ctx, span := obs.Start(ctx, "ReservationService.Create",
		attribute.String("espacio", in.Space),
		attribute.String("fecha", in.Date),
		attribute.String("hora", in.Time),
	)
	defer func() { obs.End(span, err) }()

	reservation = &model.Reservation{
		Type:     in.Type,
		Location: in.Location,
		Space:    in.Space,
		Date:     in.Date,
		Time:     in.Time,
		Reason:   in.Reason,
		UserID:   in.UserID,
	}

	if err := s.repo.Create(ctx, reservation); err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, apperrors.ErrSlotTaken
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			return nil, apperrors.ErrUnknownUser
		default:
			return nil, fmt.Errorf("create reservation: %w", err)
		}
	}

	s.invalidate(ctx)
	s.publish(ctx, events.RKReservationCreated, events.ReservationCreated{
		ReservationID: reservation.ID,
		UserID:        reservation.UserID,
		Space:         reservation.Space,
		Date:          reservation.Date,
		Time:          reservation.Time,
	})
	return reservation, nil
}

// ListByUser returns a user's reservations, latest date first.
func (s *reservationService) ListByUser(ctx context.Context, userID uint) (reservations []model.Reservation, err error) {
	ctx, span := obs.Start(ctx, "ReservationService.ListByUser")
	defer func() { obs.End(span, err) }()

	key, cacheable := s.cacheKey(ctx, fmt.Sprintf("usuario:%d", userID))
	if cacheable {
		if data, _ := s.cache.Get(ctx, key); data != nil {
			var cached []model.Reservation
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
		}
	}

	reservations, err = s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	if cacheable {
		s.store(ctx, key, reservations)
	}
	return reservations, nil
}

// ListAll returns every reservation with its owner's identity.
func (s *reservationService) ListAll(ctx context.Context) (reservations []model.ReservationWithOwner, err error) {
	ctx, span := obs.Start(ctx, "ReservationService.ListAll")
	defer func() { obs.End(span, err) }()

	key, cacheable := s.cacheKey(ctx, "todas")
	if cacheable {
		if data, _ := s.cache.Get(ctx, key); data != nil {
			var cached []model.ReservationWithOwner
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
		}
	}

	reservations, err = s.repo.ListWithOwner(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	if cacheable {
		s.store(ctx, key, reservations)
	}
	return reservations, nil
}

// Delete removes a reservation by id.
func (s *reservationService) Delete(ctx context.Context, id uint) (err error) {
	ctx, span := obs.Start(ctx, "ReservationService.Delete")
	defer func() { obs.End(span, err) }()

	if id == 0 {
		return apperrors.ErrReservationNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrReservationNotFound
		}
		return fmt.Errorf("delete reservation: %w", err)
	}

	s.invalidate(ctx)
	s.publish(ctx, events.RKReservationDeleted, events.ReservationDeleted{ReservationID: id})
	return nil
}

func (s *reservationService) store(ctx context.Context, key string, v interface{}) {
	if payload, err := json.Marshal(v); err == nil {
		_ = s.cache.Set(ctx, key, payload, s.cacheTTL)
	}
}

// invalidate moves readers to a fresh generation and drops the old listings;
// a write can change the global list and any user's list.
func (s *reservationService) invalidate(ctx context.Context) {
	_ = s.cache.Incr(ctx, generationKey)
	_ = s.cache.DeletePrefix(ctx, reservationCachePrefix)
}

// publish emits an event; a broker failure never fails the request.
func (s *reservationService) publish(ctx context.Context, key string, v any) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishJSON(ctx, key, v); err != nil {
		log.Printf("publish %s: %v", key, err)
	}
}
