package repository

import (
	"context"
	"slices"
	"strings"
	"sync"

	"travel_backoffice/internal/domain/entities"
	"travel_backoffice/internal/usecase/interfaces"
)

// The in-memory repositories back STORAGE_DRIVER=memory and the use-case tests.
// They follow the DynamoDB repositories' contracts: zero value for not-found,
// copies in and out, and an atomic seat check on booking creation.

type TravelPackageMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]entities.TravelPackage
}

var _ interfaces.ITravelPackageRepository = (*TravelPackageMemoryRepository)(nil)

func NewTravelPackageMemoryRepository() *TravelPackageMemoryRepository {
	return &TravelPackageMemoryRepository{items: make(map[string]entities.TravelPackage)}
}

func (r *TravelPackageMemoryRepository) Create(_ context.Context, p entities.TravelPackage) (entities.TravelPackage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[p.ID]; ok {
		return entities.TravelPackage{}, errDuplicateID
	}
	p.BoardingLocations = p.BoardingLocations.Clone()
	r.items[p.ID] = p
	return p, nil
}

func (r *TravelPackageMemoryRepository) GetByID(_ context.Context, id string) (entities.TravelPackage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[id]
	if !ok {
		return entities.TravelPackage{}, nil
	}
	p.BoardingLocations = p.BoardingLocations.Clone()
	return p, nil
}

func (r *TravelPackageMemoryRepository) FindAll(_ context.Context) ([]entities.TravelPackage, error) {
	return r.filter(""), nil
}

func (r *TravelPackageMemoryRepository) FindByMonth(_ context.Context, q entities.PackageQuery) (entities.PackagePage, error) {
	q = q.Normalized()
	pkgs := r.filter(q.Month)
	entities.SortTravelPackages(pkgs, q.SortBy, q.SortOrder)
	return entities.PackagePage{
		Data:  entities.Paginate(pkgs, q.Page, q.Limit),
		Total: len(pkgs),
		Pages: entities.TotalPages(len(pkgs), q.Limit),
	}, nil
}

func (r *TravelPackageMemoryRepository) filter(month string) []entities.TravelPackage {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.TravelPackage, 0, len(r.items))
	for _, p := range r.items {
		if month != "" && !strings.HasPrefix(entities.MonthKey(p.TravelMonth), month) {
			continue
		}
		p.BoardingLocations = p.BoardingLocations.Clone()
		out = append(out, p)
	}
	// Map order is random; give callers a deterministic base for stable sorts.
	slices.SortFunc(out, func(a, b entities.TravelPackage) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

func (r *TravelPackageMemoryRepository) Update(_ context.Context, p entities.TravelPackage) (entities.TravelPackage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.items[p.ID]
	if !ok {
		return entities.TravelPackage{}, nil
	}
	p.BookedCount = current.BookedCount
	p.CreatedAt = current.CreatedAt
	p.BoardingLocations = p.BoardingLocations.Clone()
	r.items[p.ID] = p
	return p, nil
}

func (r *TravelPackageMemoryRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

type BookingMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]entities.Booking
	order []string
}

var _ interfaces.IBookingRepository = (*BookingMemoryRepository)(nil)

func NewBookingMemoryRepository() *BookingMemoryRepository {
	return &BookingMemoryRepository{items: make(map[string]entities.Booking)}
}

// Create counts the package bookings and inserts under the same lock.
func (r *BookingMemoryRepository) Create(_ context.Context, b entities.Booking, maxPeople int) (entities.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[b.ID]; ok {
		return entities.Booking{}, errDuplicateID
	}
	if r.countLocked(b.TravelPackageID) >= maxPeople {
		return entities.Booking{}, interfaces.ErrCapacityExceeded
	}
	r.items[b.ID] = b
	r.order = append(r.order, b.ID)
	return b, nil
}

func (r *BookingMemoryRepository) GetByID(_ context.Context, id string) (entities.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items[id], nil
}

func (r *BookingMemoryRepository) FindAll(_ context.Context) ([]entities.Booking, error) {
	return r.collect(func(entities.Booking) bool { return true }), nil
}

func (r *BookingMemoryRepository) FindByTravelPackageID(_ context.Context, travelPackageID string) ([]entities.Booking, error) {
	return r.collect(func(b entities.Booking) bool { return b.TravelPackageID == travelPackageID }), nil
}

func (r *BookingMemoryRepository) CountByTravelPackageID(_ context.Context, travelPackageID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.countLocked(travelPackageID), nil
}

func (r *BookingMemoryRepository) FindByUserID(_ context.Context, userID string) ([]entities.Booking, error) {
	return r.collect(func(b entities.Booking) bool { return b.UserID == userID }), nil
}

func (r *BookingMemoryRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	r.order = slices.DeleteFunc(r.order, func(v string) bool { return v == id })
	return true, nil
}

func (r *BookingMemoryRepository) countLocked(travelPackageID string) int {
	n := 0
	for _, b := range r.items {
		if b.TravelPackageID == travelPackageID {
			n++
		}
	}
	return n
}

func (r *BookingMemoryRepository) collect(keep func(entities.Booking) bool) []entities.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Booking, 0, len(r.order))
	for _, id := range r.order {
		if b := r.items[id]; keep(b) {
			out = append(out, b)
		}
	}
	return out
}

type UserMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]entities.User
	order []string
}

var _ interfaces.IUserRepository = (*UserMemoryRepository)(nil)

func NewUserMemoryRepository() *UserMemoryRepository {
	return &UserMemoryRepository{items: make(map[string]entities.User)}
}

func (r *UserMemoryRepository) Create(_ context.Context, u entities.User) (entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[u.ID]; ok {
		return entities.User{}, errDuplicateID
	}
	r.items[u.ID] = u
	r.order = append(r.order, u.ID)
	return u, nil
}

func (r *UserMemoryRepository) GetByID(_ context.Context, id string) (entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items[id], nil
}

func (r *UserMemoryRepository) GetByEmail(_ context.Context, email string) (entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.items {
		if u.Email == email {
			return u, nil
		}
	}
	return entities.User{}, nil
}

func (r *UserMemoryRepository) FindAll(_ context.Context) ([]entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.User, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *UserMemoryRepository) Update(_ context.Context, u entities.User) (entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.items[u.ID]
	if !ok {
		return entities.User{}, nil
	}
	u.CreatedAt = current.CreatedAt
	r.items[u.ID] = u
	return u, nil
}

func (r *UserMemoryRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	r.order = slices.DeleteFunc(r.order, func(v string) bool { return v == id })
	return true, nil
}
