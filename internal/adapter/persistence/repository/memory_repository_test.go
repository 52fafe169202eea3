package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"travel_backoffice/internal/domain/entities"
	"travel_backoffice/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingMemoryRepository_CreateIsAtomicPerPackage(t *testing.T) {
	repo := NewBookingMemoryRepository()
	ctx := context.Background()

	const attempts = 50
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		ok, full int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repo.Create(ctx, entities.Booking{ID: fmt.Sprintf("b-%d", i), TravelPackageID: "pkg-1"}, 3)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, interfaces.ErrCapacityExceeded):
				full++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 3, ok)
	assert.Equal(t, attempts-3, full)

	n, err := repo.CountByTravelPackageID(ctx, "pkg-1")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestBookingMemoryRepository_DeleteReleasesSeat(t *testing.T) {
	repo := NewBookingMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, entities.Booking{ID: "b-1", TravelPackageID: "pkg-1", UserID: "u-1"}, 1)
	require.NoError(t, err)
	_, err = repo.Create(ctx, entities.Booking{ID: "b-2", TravelPackageID: "pkg-1"}, 1)
	require.ErrorIs(t, err, interfaces.ErrCapacityExceeded)

	byUser, err := repo.FindByUserID(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, byUser, 1)

	deleted, err := repo.Delete(ctx, "b-1")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, "b-1")
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = repo.Create(ctx, entities.Booking{ID: "b-2", TravelPackageID: "pkg-1"}, 1)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, got.ID)
}

func TestTravelPackageMemoryRepository_FindByMonth(t *testing.T) {
	repo := NewTravelPackageMemoryRepository()
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 25; i++ {
		_, err := repo.Create(ctx, entities.TravelPackage{
			ID:          fmt.Sprintf("pkg-%02d", i),
			TravelMonth: "Março",
			TravelDate:  fmt.Sprintf("%02d/03/2025", i+1),
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, entities.TravelPackage{ID: "jan", TravelMonth: "Janeiro/2026", CreatedAt: base})
	require.NoError(t, err)

	page, err := repo.FindByMonth(ctx, entities.PackageQuery{Month: "março", Page: 3, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 25, page.Total)
	assert.Equal(t, 3, page.Pages)
	require.Len(t, page.Data, 5)
	assert.Equal(t, "pkg-20", page.Data[0].ID)

	page, err = repo.FindByMonth(ctx, entities.PackageQuery{Month: "MARÇO", Page: 4, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, page.Data)
	assert.NotNil(t, page.Data)

	page, err = repo.FindByMonth(ctx, entities.PackageQuery{Month: "Janeiro/2026"})
	require.NoError(t, err)
	require.Equal(t, 1, page.Total)
	assert.Equal(t, "jan", page.Data[0].ID)

	page, err = repo.FindByMonth(ctx, entities.PackageQuery{Limit: 500})
	require.NoError(t, err)
	assert.Equal(t, 26, page.Total)
	assert.Len(t, page.Data, 26)
}

func TestTravelPackageMemoryRepository_UpdateKeepsCounters(t *testing.T) {
	repo := NewTravelPackageMemoryRepository()
	ctx := context.Background()
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := repo.Create(ctx, entities.TravelPackage{ID: "pkg-1", Name: "A", CreatedAt: created})
	require.NoError(t, err)

	out, err := repo.Update(ctx, entities.TravelPackage{ID: "pkg-1", Name: "B"})
	require.NoError(t, err)
	assert.Equal(t, "B", out.Name)
	assert.True(t, out.CreatedAt.Equal(created))

	out, err = repo.Update(ctx, entities.TravelPackage{ID: "missing"})
	require.NoError(t, err)
	assert.Empty(t, out.ID)

	deleted, err := repo.Delete(ctx, "pkg-1")
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestUserMemoryRepository(t *testing.T) {
	repo := NewUserMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, entities.User{ID: "u-1", Email: "ana@example.com"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, entities.User{ID: "u-1"})
	require.Error(t, err)

	u, err := repo.GetByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u-1", u.ID)

	u, err = repo.GetByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Empty(t, u.ID)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
