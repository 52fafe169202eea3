package usecase

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"travel_backoffice/internal/domain/entities"
	"travel_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrBookingNotFound             = errors.New("booking not found")
	ErrInvalidBookingID            = errors.New("invalid booking id")
	ErrTravelPackageNotFound       = errors.New("travel package not found")
	ErrInvalidTravelPackageID      = errors.New("invalid travel package id")
	ErrBoardingLocationUnavailable = errors.New("boarding location not available for this travel package")
	ErrNoSeatsAvailable            = errors.New("no seats available for this travel package")
)

// hoursPerYear matches the 365-day year used for the average age.
const hoursPerYear = 365 * 24

// CreateBookingInput is the validated booking request.
type CreateBookingInput struct {
	TravelPackageID  string
	FullName         string
	RG               string
	CPF              string
	BirthDate        time.Time
	Phone            string
	Email            string
	BoardingLocation string
	City             string
	HowDidYouMeetUs  string
}

// IBookingUseCase exposes booking operations.
//
// Create is the capacity-checked flow: the package must exist, the boarding
// location must be one of the package's locations and a seat must be free.
type IBookingUseCase interface {
	Create(ctx context.Context, userID string, in CreateBookingInput) (entities.Booking, error)
	List(ctx context.Context) ([]entities.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Booking, error)
	ListByTravelPackage(ctx context.Context, travelPackageID string) ([]entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	Delete(ctx context.Context, id string) error
	Details(ctx context.Context) ([]entities.BookingDetails, error)
	StatsByCity(ctx context.Context) ([]entities.CityStat, error)
	StatsBySource(ctx context.Context) ([]entities.SourceStat, error)
}

type BookingUseCase struct {
	bookings  interfaces.IBookingRepository
	packages  interfaces.ITravelPackageRepository
	users     interfaces.IUserRepository
	publisher interfaces.IBookingEventPublisher
	logger    *zap.Logger
	now       func() time.Time
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(
	bookings interfaces.IBookingRepository,
	packages interfaces.ITravelPackageRepository,
	users interfaces.IUserRepository,
	publisher interfaces.IBookingEventPublisher,
	logger *zap.Logger,
) *BookingUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BookingUseCase{
		bookings:  bookings,
		packages:  packages,
		users:     users,
		publisher: publisher,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *BookingUseCase) Create(ctx context.Context, userID string, in CreateBookingInput) (entities.Booking, error) {
	packageID := strings.TrimSpace(in.TravelPackageID)
	if packageID == "" {
		return entities.Booking{}, ErrInvalidTravelPackageID
	}

	pkg, err := u.packages.GetByID(ctx, packageID)
	if err != nil {
		u.logger.Error("[booking][usecase] load travel package failed", zap.String("package_id", packageID), zap.Error(err))
		return entities.Booking{}, err
	}
	if pkg.ID == "" {
		return entities.Booking{}, ErrTravelPackageNotFound
	}

	location := in.BoardingLocation
	if !pkg.BoardingLocations.Contains(location) {
		return entities.Booking{}, fmt.Errorf("%w. Available locations: %s", ErrBoardingLocationUnavailable, pkg.BoardingLocations.String())
	}

	count, err := u.bookings.CountByTravelPackageID(ctx, pkg.ID)
	if err != nil {
		u.logger.Error("[booking][usecase] count bookings failed", zap.String("package_id", pkg.ID), zap.Error(err))
		return entities.Booking{}, err
	}
	if count >= pkg.MaxPeople {
		return entities.Booking{}, ErrNoSeatsAvailable
	}

	userID = strings.TrimSpace(userID)
	if userID == "" {
		userID = uuid.NewString()
	}

	now := u.now()
	b := entities.Booking{
		ID:               uuid.NewString(),
		TravelPackageID:  pkg.ID,
		UserID:           userID,
		FullName:         strings.TrimSpace(in.FullName),
		RG:               strings.TrimSpace(in.RG),
		CPF:              strings.TrimSpace(in.CPF),
		BirthDate:        in.BirthDate,
		Phone:            strings.TrimSpace(in.Phone),
		Email:            strings.TrimSpace(in.Email),
		BoardingLocation: location,
		City:             strings.TrimSpace(in.City),
		HowDidYouMeetUs:  strings.TrimSpace(in.HowDidYouMeetUs),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := u.bookings.Create(ctx, b, pkg.MaxPeople)
	if errors.Is(err, interfaces.ErrCapacityExceeded) {
		u.logger.Info("[booking][usecase] last seat taken concurrently", zap.String("package_id", pkg.ID))
		return entities.Booking{}, ErrNoSeatsAvailable
	}
	if err != nil {
		u.logger.Error("[booking][usecase] create failed", zap.String("package_id", pkg.ID), zap.String("booking_id", b.ID), zap.Error(err))
		return entities.Booking{}, err
	}

	u.logger.Info("[booking][usecase] created",
		zap.String("booking_id", created.ID),
		zap.String("package_id", created.TravelPackageID),
		zap.Int("seats_taken", count+1),
		zap.Int("max_people", pkg.MaxPeople),
	)

	if u.publisher != nil {
		if err := u.publisher.PublishBookingCreated(ctx, created); err != nil {
			u.logger.Warn("[booking][usecase] publish booking.created failed", zap.String("booking_id", created.ID), zap.Error(err))
		}
	}
	return created, nil
}

func (u *BookingUseCase) List(ctx context.Context) ([]entities.Booking, error) {
	return u.bookings.FindAll(ctx)
}

func (u *BookingUseCase) ListByUser(ctx context.Context, userID string) ([]entities.Booking, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.bookings.FindByUserID(ctx, userID)
}

func (u *BookingUseCase) ListByTravelPackage(ctx context.Context, travelPackageID string) ([]entities.Booking, error) {
	travelPackageID = strings.TrimSpace(travelPackageID)
	if travelPackageID == "" {
		return nil, ErrInvalidTravelPackageID
	}

	pkg, err := u.packages.GetByID(ctx, travelPackageID)
	if err != nil {
		return nil, err
	}
	if pkg.ID == "" {
		return nil, ErrTravelPackageNotFound
	}
	return u.bookings.FindByTravelPackageID(ctx, travelPackageID)
}

func (u *BookingUseCase) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}

	b, err := u.bookings.GetByID(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	return b, nil
}

func (u *BookingUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidBookingID
	}

	deleted, err := u.bookings.Delete(ctx, id)
	if err != nil {
		u.logger.Error("[booking][usecase] delete failed", zap.String("booking_id", id), zap.Error(err))
		return err
	}
	if !deleted {
		return ErrBookingNotFound
	}
	u.logger.Info("[booking][usecase] deleted", zap.String("booking_id", id))
	return nil
}

// Details joins every booking with its package and user. References that no
// longer resolve (orphaned bookings) are left nil.
func (u *BookingUseCase) Details(ctx context.Context) ([]entities.BookingDetails, error) {
	bookings, err := u.bookings.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	pkgs := map[string]*entities.BookingPackageSummary{}
	users := map[string]*entities.BookingUserSummary{}
	out := make([]entities.BookingDetails, 0, len(bookings))

	for _, b := range bookings {
		d := entities.BookingDetails{Booking: b}

		summary, seen := pkgs[b.TravelPackageID]
		if !seen {
			p, err := u.packages.GetByID(ctx, b.TravelPackageID)
			if err != nil {
				return nil, err
			}
			if p.ID != "" {
				summary = &entities.BookingPackageSummary{Name: p.Name, Price: p.Price, TravelMonth: p.TravelMonth}
			}
			pkgs[b.TravelPackageID] = summary
		}
		d.TravelPackage = summary

		if u.users != nil {
			user, seen := users[b.UserID]
			if !seen {
				usr, err := u.users.GetByID(ctx, b.UserID)
				if err != nil {
					return nil, err
				}
				if usr.ID != "" {
					user = &entities.BookingUserSummary{Name: usr.Name, Email: usr.Email}
				}
				users[b.UserID] = user
			}
			d.User = user
		}

		out = append(out, d)
	}
	return out, nil
}

// StatsByCity counts bookings per city with the rounded average passenger age,
// most booked city first. Bookings without a city are left out.
func (u *BookingUseCase) StatsByCity(ctx context.Context) ([]entities.CityStat, error) {
	bookings, err := u.bookings.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	now := u.now()
	type acc struct {
		count int
		years float64
	}
	groups := map[string]*acc{}
	order := []string{}
	for _, b := range bookings {
		city := strings.TrimSpace(b.City)
		if city == "" {
			continue
		}
		g, ok := groups[city]
		if !ok {
			g = &acc{}
			groups[city] = g
			order = append(order, city)
		}
		g.count++
		g.years += now.Sub(b.BirthDate).Hours() / hoursPerYear
	}

	out := make([]entities.CityStat, 0, len(order))
	for _, city := range order {
		g := groups[city]
		out = append(out, entities.CityStat{
			City:          city,
			TotalBookings: g.count,
			AverageAge:    int(math.Round(g.years / float64(g.count))),
		})
	}
	slices.SortStableFunc(out, func(a, b entities.CityStat) int {
		return cmp.Compare(b.TotalBookings, a.TotalBookings)
	})
	return out, nil
}

// StatsBySource counts bookings per "how did you meet us" answer with its share
// of the answered bookings formatted as "12.50%".
func (u *BookingUseCase) StatsBySource(ctx context.Context) ([]entities.SourceStat, error) {
	bookings, err := u.bookings.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	order := []string{}
	total := 0
	for _, b := range bookings {
		source := strings.TrimSpace(b.HowDidYouMeetUs)
		if source == "" {
			continue
		}
		if _, ok := counts[source]; !ok {
			order = append(order, source)
		}
		counts[source]++
		total++
	}

	out := make([]entities.SourceStat, 0, len(order))
	for _, source := range order {
		n := counts[source]
		out = append(out, entities.SourceStat{
			Source:        source,
			TotalBookings: n,
			Percentage:    fmt.Sprintf("%.2f%%", float64(n)*100/float64(total)),
		})
	}
	slices.SortStableFunc(out, func(a, b entities.SourceStat) int {
		return cmp.Compare(b.TotalBookings, a.TotalBookings)
	})
	return out, nil
}
