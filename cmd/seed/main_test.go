package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "reservas/internal/errors"
	"reservas/internal/model"
	"reservas/internal/service"
)

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) AuthorizeRole(role, adminKey string) error {
	return m.Called(role, adminKey).Error(0)
}

func (m *mockAuthService) Register(ctx context.Context, in service.RegisterInput) (*model.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*model.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type mockReservationService struct {
	mock.Mock
}

func (m *mockReservationService) Create(ctx context.Context, in service.CreateReservationInput) (*model.Reservation, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Reservation), args.Error(1)
}

func (m *mockReservationService) ListByUser(ctx context.Context, userID uint) ([]model.Reservation, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]model.Reservation), args.Error(1)
}

func (m *mockReservationService) ListAll(ctx context.Context) ([]model.ReservationWithOwner, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.ReservationWithOwner), args.Error(1)
}

func (m *mockReservationService) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func TestLoadSeedFile(t *testing.T) {
	seed, err := loadSeedFile("seed.example.json")
	require.NoError(t, err)
	assert.Len(t, seed.Users, 3)
	assert.Len(t, seed.Reservations, 3)
	assert.Equal(t, "Administrador", seed.Users[0].Role)
	assert.Equal(t, "laura@reservas.local", seed.Reservations[0].OwnerEmail)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o600))
	_, err = loadSeedFile(bad)
	assert.Error(t, err)

	_, err = loadSeedFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestSeedUsers(t *testing.T) {
	svc := new(mockAuthService)
	svc.On("Register", mock.Anything, mock.MatchedBy(func(in service.RegisterInput) bool { return in.Email == "a@x" })).
		Return(&model.User{ID: 1}, nil)
	svc.On("Register", mock.Anything, mock.MatchedBy(func(in service.RegisterInput) bool { return in.Email == "b@x" })).
		Return(nil, apperrors.ErrEmailTaken)
	svc.On("Register", mock.Anything, mock.MatchedBy(func(in service.RegisterInput) bool { return in.Email == "c@x" })).
		Return(nil, errors.New("db down"))

	created, skipped, err := seedUsers(context.Background(), svc, "k", []SeedUser{{Email: "a@x"}, {Email: "b@x"}})
	require.NoError(t, err)
	assert.Equal(t, 1, created)
	assert.Equal(t, 1, skipped)

	_, _, err = seedUsers(context.Background(), svc, "k", []SeedUser{{Email: "c@x"}})
	assert.ErrorContains(t, err, "db down")
}

func TestSeedReservations(t *testing.T) {
	users := new(mockUserRepo)
	users.On("FindByEmail", mock.Anything, "laura@x").Return(&model.User{ID: 8}, nil)
	users.On("FindByEmail", mock.Anything, "ghost@x").Return(nil, gorm.ErrRecordNotFound)

	svc := new(mockReservationService)
	svc.On("Create", mock.Anything, mock.MatchedBy(func(in service.CreateReservationInput) bool { return in.Space == "A" })).
		Return(&model.Reservation{ID: 1}, nil)
	svc.On("Create", mock.Anything, mock.MatchedBy(func(in service.CreateReservationInput) bool { return in.Space == "B" })).
		Return(nil, apperrors.ErrSlotTaken)

	created, skipped, err := seedReservations(context.Background(), users, svc, []SeedReservation{
		{Space: "A", OwnerEmail: "laura@x"},
		{Space: "B", OwnerEmail: "laura@x"},
		{Space: "C", OwnerEmail: "ghost@x"},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, created)
	assert.Equal(t, 2, skipped)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.MatchedBy(func(in service.CreateReservationInput) bool { return in.Space == "C" }))
}

func TestSeedReservations_OwnerLookupFailure(t *testing.T) {
	users := new(mockUserRepo)
	users.On("FindByEmail", mock.Anything, "laura@x").Return(nil, errors.New("connection refused"))
	svc := new(mockReservationService)

	_, _, err := seedReservations(context.Background(), users, svc, []SeedReservation{{Space: "A", OwnerEmail: "laura@x"}})

	assert.ErrorContains(t, err, "connection refused")
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
