package repository

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"reservas/internal/db"
	"reservas/internal/model"
)

// setup connects to the MySQL database named by TEST_MYSQL_DSN and skips otherwise.
func setup(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_MYSQL_DSN")
	if dsn == "" {
		t.Skip("TEST_MYSQL_DSN not set")
	}
	gormDB, err := db.NewMySQL(dsn, db.PoolOptions{MaxOpenConns: 10}, "silent")
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(&model.User{}, &model.Reservation{}))
	return gormDB
}

func createUser(t *testing.T, repo UserRepository) *model.User {
	t.Helper()
	user := &model.User{
		Name:         "Test User",
		Email:        "test-" + uuid.NewString()[:8] + "@test.com",
		PasswordHash: "hash",
		Role:         "Estudiante",
	}
	require.NoError(t, repo.Create(context.Background(), user))
	require.NotZero(t, user.ID)
	return user
}

// uniqueSpace keeps runs against a shared database from colliding on the slot index.
func uniqueSpace() string {
	return "sala-" + uuid.NewString()[:8]
}

func newReservation(userID uint, space, date, hour string) *model.Reservation {
	return &model.Reservation{
		Type:     "Aula",
		Location: "Edificio A",
		Space:    space,
		Date:     date,
		Time:     hour,
		Reason:   "clase",
		UserID:   userID,
	}
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	gormDB := setup(t)
	repo := NewUserRepository(gormDB)
	ctx := context.Background()

	user := createUser(t, repo)

	err := repo.Create(ctx, &model.User{Name: "Other", Email: user.Email, PasswordHash: "h", Role: "Docente"})
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey), "got %v", err)

	found, err := repo.FindByEmail(ctx, user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = repo.FindByEmail(ctx, "nobody-"+uuid.NewString()+"@test.com")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestReservationRepository_SlotConflict(t *testing.T) {
	gormDB := setup(t)
	user := createUser(t, NewUserRepository(gormDB))
	repo := NewReservationRepository(gormDB)
	ctx := context.Background()
	space := uniqueSpace()

	require.NoError(t, repo.Create(ctx, newReservation(user.ID, space, "2030-05-10", "10:00")))

	err := repo.Create(ctx, newReservation(user.ID, space, "2030-05-10", "10:00"))
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey), "got %v", err)

	assert.NoError(t, repo.Create(ctx, newReservation(user.ID, uniqueSpace(), "2030-05-10", "10:00")))
	assert.NoError(t, repo.Create(ctx, newReservation(user.ID, space, "2030-05-11", "10:00")))
	assert.NoError(t, repo.Create(ctx, newReservation(user.ID, space, "2030-05-10", "11:00")))
}

func TestReservationRepository_ConcurrentCreateSameSlot(t *testing.T) {
	gormDB := setup(t)
	user := createUser(t, NewUserRepository(gormDB))
	repo := NewReservationRepository(gormDB)
	space := uniqueSpace()

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repo.Create(context.Background(), newReservation(user.ID, space, "2030-06-01", "09:00"))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey), "got %v", err)
	}
	assert.Equal(t, 1, succeeded)
}

func TestReservationRepository_UnknownUser(t *testing.T) {
	gormDB := setup(t)
	repo := NewReservationRepository(gormDB)

	err := repo.Create(context.Background(), newReservation(4_000_000_000, uniqueSpace(), "2030-01-01", "08:00"))
	assert.True(t, errors.Is(err, gorm.ErrForeignKeyViolated), "got %v", err)
}

func TestReservationRepository_ListByUserOrdering(t *testing.T) {
	gormDB := setup(t)
	user := createUser(t, NewUserRepository(gormDB))
	repo := NewReservationRepository(gormDB)
	ctx := context.Background()
	space := uniqueSpace()

	require.NoError(t, repo.Create(ctx, newReservation(user.ID, space, "2030-03-01", "12:00")))
	require.NoError(t, repo.Create(ctx, newReservation(user.ID, space, "2030-03-05", "12:00")))
	require.NoError(t, repo.Create(ctx, newReservation(user.ID, space, "2030-03-05", "08:00")))

	list, err := repo.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "2030-03-05", list[0].Date)
	assert.Equal(t, "08:00", list[0].Time)
	assert.Equal(t, "2030-03-05", list[1].Date)
	assert.Equal(t, "12:00", list[1].Time)
	assert.Equal(t, "2030-03-01", list[2].Date)

	empty, err := repo.ListByUser(ctx, createUser(t, NewUserRepository(gormDB)).ID)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestReservationRepository_ListWithOwner(t *testing.T) {
	gormDB := setup(t)
	user := createUser(t, NewUserRepository(gormDB))
	repo := NewReservationRepository(gormDB)
	ctx := context.Background()
	space := uniqueSpace()

	require.NoError(t, repo.Create(ctx, newReservation(user.ID, space, "2031-01-01", "10:00")))

	list, err := repo.ListWithOwner(ctx)
	require.NoError(t, err)

	var found *model.ReservationWithOwner
	for i := range list {
		if list[i].Space == space {
			found = &list[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, user.Name, found.OwnerName)
	assert.Equal(t, user.Email, found.OwnerEmail)
	assert.Equal(t, "2031-01-01", found.Date)
}

func TestReservationRepository_Delete(t *testing.T) {
	gormDB := setup(t)
	user := createUser(t, NewUserRepository(gormDB))
	repo := NewReservationRepository(gormDB)
	ctx := context.Background()

	reservation := newReservation(user.ID, uniqueSpace(), "2030-07-07", "07:00")
	require.NoError(t, repo.Create(ctx, reservation))

	assert.NoError(t, repo.Delete(ctx, reservation.ID))
	assert.True(t, errors.Is(repo.Delete(ctx, reservation.ID), gorm.ErrRecordNotFound))
	assert.True(t, errors.Is(repo.Delete(ctx, 4_000_000_000), gorm.ErrRecordNotFound))
}
