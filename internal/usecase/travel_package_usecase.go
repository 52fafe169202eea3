package usecase

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"travel_backoffice/internal/config"
	"travel_backoffice/internal/domain/entities"
	"travel_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrImageRequired        = errors.New("image file is required")
	ErrPdfRequired          = errors.New("pdf file or pdfUrl is required")
	ErrInvalidTravelPackage = errors.New("invalid travel package")
	ErrImageNotFound        = errors.New("travel package has no image")
	ErrPackageHasBookings   = errors.New("travel package still has bookings")
)

const (
	imageKeyPrefix = "images/"
	pdfKeyPrefix   = "pdfs/"
	jpegMIME       = "image/jpeg"
	pdfMIME        = "application/pdf"
)

// MediaFile is an uploaded file as received from the client.
type MediaFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

type CreateTravelPackageInput struct {
	Name              string
	Price             float64
	Description       string
	PdfURL            string
	MaxPeople         int
	BoardingLocations entities.BoardingLocations
	TravelMonth       string
	TravelDate        string
	ReturnDate        string
	TravelTime        string
	Image             *MediaFile
	Pdf               *MediaFile
}

type UpdateTravelPackageInput struct {
	Patch entities.TravelPackagePatch
	Image *MediaFile
	Pdf   *MediaFile
}

// ITravelPackageUseCase exposes travel package operations.
//
// Media handling on create/update:
//   - the image is optimized and uploaded synchronously, its URL is stored
//   - a PDF file is optimized and handed to the background upload queue, its
//     URL is computed up front and stored immediately
type ITravelPackageUseCase interface {
	Create(ctx context.Context, in CreateTravelPackageInput) (entities.TravelPackage, error)
	List(ctx context.Context, sortBy entities.SortField, order entities.SortOrder) ([]entities.TravelPackage, error)
	Filter(ctx context.Context, q entities.PackageQuery) (entities.PackagePage, entities.PaginationMeta, error)
	GetByID(ctx context.Context, id string) (entities.TravelPackage, error)
	GetImageURL(ctx context.Context, id string) (string, error)
	Update(ctx context.Context, id string, in UpdateTravelPackageInput) (entities.TravelPackage, error)
	Delete(ctx context.Context, id string) error
}

// TravelPackageDeps groups the collaborators of TravelPackageUseCase.
// Cache and Bookings are optional.
type TravelPackageDeps struct {
	Packages     interfaces.ITravelPackageRepository
	Bookings     interfaces.IBookingRepository
	Store        interfaces.IObjectStore
	Queue        interfaces.IUploadQueue
	Optimizer    interfaces.IMediaOptimizer
	Cache        interfaces.ICache
	Logger       *zap.Logger
	DeletePolicy string
}

type TravelPackageUseCase struct {
	packages     interfaces.ITravelPackageRepository
	bookings     interfaces.IBookingRepository
	store        interfaces.IObjectStore
	queue        interfaces.IUploadQueue
	optimizer    interfaces.IMediaOptimizer
	cache        interfaces.ICache
	logger       *zap.Logger
	deletePolicy string
	now          func() time.Time
}

var _ ITravelPackageUseCase = (*TravelPackageUseCase)(nil)

func NewTravelPackageUseCase(deps TravelPackageDeps) *TravelPackageUseCase {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	policy := deps.DeletePolicy
	if policy != config.DeletePolicyReject {
		policy = config.DeletePolicyOrphan
	}
	return &TravelPackageUseCase{
		packages:     deps.Packages,
		bookings:     deps.Bookings,
		store:        deps.Store,
		queue:        deps.Queue,
		optimizer:    deps.Optimizer,
		cache:        deps.Cache,
		logger:       logger,
		deletePolicy: policy,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (u *TravelPackageUseCase) Create(ctx context.Context, in CreateTravelPackageInput) (entities.TravelPackage, error) {
	if in.Image == nil || len(in.Image.Data) == 0 {
		return entities.TravelPackage{}, ErrImageRequired
	}
	pdfURL := strings.TrimSpace(in.PdfURL)
	if in.Pdf == nil && pdfURL == "" {
		return entities.TravelPackage{}, ErrPdfRequired
	}

	now := u.now()
	p := entities.TravelPackage{
		ID:                uuid.NewString(),
		Name:              strings.TrimSpace(in.Name),
		Price:             in.Price,
		Description:       strings.TrimSpace(in.Description),
		PdfURL:            pdfURL,
		MaxPeople:         in.MaxPeople,
		BoardingLocations: in.BoardingLocations.Clone(),
		TravelMonth:       strings.TrimSpace(in.TravelMonth),
		TravelDate:        strings.TrimSpace(in.TravelDate),
		ReturnDate:        strings.TrimSpace(in.ReturnDate),
		TravelTime:        strings.TrimSpace(in.TravelTime),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := validateTravelPackage(p); err != nil {
		return entities.TravelPackage{}, err
	}

	imageURL, err := u.uploadImage(ctx, *in.Image)
	if err != nil {
		return entities.TravelPackage{}, err
	}
	p.ImageURL = imageURL

	if in.Pdf != nil {
		p.PdfURL = u.queuePdf(ctx, *in.Pdf)
	}

	created, err := u.packages.Create(ctx, p)
	if err != nil {
		u.logger.Error("[travel-package][usecase] create failed", zap.String("package_id", p.ID), zap.Error(err))
		return entities.TravelPackage{}, err
	}
	invalidateCached(ctx, u.cache, u.logger, travelPackageCachePrefix)

	u.logger.Info("[travel-package][usecase] created", zap.String("package_id", created.ID), zap.String("name", created.Name))
	return created, nil
}

func (u *TravelPackageUseCase) List(ctx context.Context, sortBy entities.SortField, order entities.SortOrder) ([]entities.TravelPackage, error) {
	sortBy = entities.ParseSortField(string(sortBy))
	order = entities.ParseSortOrder(string(order))

	key := travelPackageCachePrefix + "all"
	pkgs, ok := readCached[[]entities.TravelPackage](ctx, u.cache, u.logger, key)
	if !ok {
		var err error
		pkgs, err = u.packages.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		writeCached(ctx, u.cache, u.logger, key, pkgs)
	}

	entities.SortTravelPackages(pkgs, sortBy, order)
	return pkgs, nil
}

func (u *TravelPackageUseCase) Filter(ctx context.Context, q entities.PackageQuery) (entities.PackagePage, entities.PaginationMeta, error) {
	q = q.Normalized()

	key := fmt.Sprintf("%sfilter:%s:%d:%d:%s:%s", travelPackageCachePrefix, q.Month, q.Page, q.Limit, q.SortBy, q.SortOrder)
	page, ok := readCached[entities.PackagePage](ctx, u.cache, u.logger, key)
	if !ok {
		var err error
		page, err = u.packages.FindByMonth(ctx, q)
		if err != nil {
			return entities.PackagePage{}, entities.PaginationMeta{}, err
		}
		if page.Data == nil {
			page.Data = []entities.TravelPackage{}
		}
		writeCached(ctx, u.cache, u.logger, key, page)
	}

	return page, entities.NewPaginationMeta(q.Page, q.Limit, page.Total, page.Pages), nil
}

func (u *TravelPackageUseCase) GetByID(ctx context.Context, id string) (entities.TravelPackage, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.TravelPackage{}, ErrInvalidTravelPackageID
	}

	key := travelPackageCachePrefix + "id:" + id
	if p, ok := readCached[entities.TravelPackage](ctx, u.cache, u.logger, key); ok {
		return p, nil
	}

	p, err := u.packages.GetByID(ctx, id)
	if err != nil {
		return entities.TravelPackage{}, err
	}
	if p.ID == "" {
		return entities.TravelPackage{}, ErrTravelPackageNotFound
	}
	writeCached(ctx, u.cache, u.logger, key, p)
	return p, nil
}

func (u *TravelPackageUseCase) GetImageURL(ctx context.Context, id string) (string, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if p.ImageURL == "" {
		return "", ErrImageNotFound
	}
	return p.ImageURL, nil
}

func (u *TravelPackageUseCase) Update(ctx context.Context, id string, in UpdateTravelPackageInput) (entities.TravelPackage, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.TravelPackage{}, ErrInvalidTravelPackageID
	}

	current, err := u.packages.GetByID(ctx, id)
	if err != nil {
		return entities.TravelPackage{}, err
	}
	if current.ID == "" {
		return entities.TravelPackage{}, ErrTravelPackageNotFound
	}

	next := in.Patch.Apply(current, u.now())
	if err := validateTravelPackage(next); err != nil {
		return entities.TravelPackage{}, err
	}

	if in.Image != nil && len(in.Image.Data) > 0 {
		imageURL, err := u.uploadImage(ctx, *in.Image)
		if err != nil {
			return entities.TravelPackage{}, err
		}
		next.ImageURL = imageURL
	}
	if in.Pdf != nil {
		next.PdfURL = u.queuePdf(ctx, *in.Pdf)
	}

	if next.MaxPeople < current.MaxPeople && u.bookings != nil {
		if count, err := u.bookings.CountByTravelPackageID(ctx, id); err != nil {
			u.logger.Warn("[travel-package][usecase] count bookings failed", zap.String("package_id", id), zap.Error(err))
		} else if count > next.MaxPeople {
			u.logger.Warn("[travel-package][usecase] maxPeople below current bookings",
				zap.String("package_id", id),
				zap.Int("max_people", next.MaxPeople),
				zap.Int("bookings", count),
			)
		}
	}

	updated, err := u.packages.Update(ctx, next)
	if err != nil {
		u.logger.Error("[travel-package][usecase] update failed", zap.String("package_id", id), zap.Error(err))
		return entities.TravelPackage{}, err
	}
	if updated.ID == "" {
		return entities.TravelPackage{}, ErrTravelPackageNotFound
	}
	invalidateCached(ctx, u.cache, u.logger, travelPackageCachePrefix)

	u.logger.Info("[travel-package][usecase] updated", zap.String("package_id", id))
	return updated, nil
}

// Delete removes the package. Under the orphan policy its bookings stay in
// place; under the reject policy a package with bookings is kept.
func (u *TravelPackageUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidTravelPackageID
	}

	if u.deletePolicy == config.DeletePolicyReject && u.bookings != nil {
		count, err := u.bookings.CountByTravelPackageID(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w (%d)", ErrPackageHasBookings, count)
		}
	}

	deleted, err := u.packages.Delete(ctx, id)
	if err != nil {
		u.logger.Error("[travel-package][usecase] delete failed", zap.String("package_id", id), zap.Error(err))
		return err
	}
	if !deleted {
		return ErrTravelPackageNotFound
	}
	invalidateCached(ctx, u.cache, u.logger, travelPackageCachePrefix)

	u.logger.Info("[travel-package][usecase] deleted", zap.String("package_id", id), zap.String("policy", u.deletePolicy))
	return nil
}

// uploadImage optimizes and uploads the image, blocking until S3 answers.
// An optimization failure falls back to the original bytes.
func (u *TravelPackageUseCase) uploadImage(ctx context.Context, f MediaFile) (string, error) {
	res := u.optimizer.OptimizeImage(ctx, f.Data)
	contentType := jpegMIME
	ext := ".jpg"
	if res.Degraded {
		u.logger.Warn("[media][usecase] image optimization skipped", zap.String("filename", f.Filename), zap.Error(res.Err))
		contentType = f.ContentType
		ext = strings.ToLower(path.Ext(f.Filename))
	}

	key := imageKeyPrefix + uuid.NewString() + ext
	url, err := u.store.Upload(ctx, key, contentType, res.Data)
	if err != nil {
		u.logger.Error("[media][usecase] image upload failed", zap.String("key", key), zap.Error(err))
		return "", err
	}
	return url, nil
}

// queuePdf optimizes the PDF and hands it to the background queue. The returned
// URL is valid once the queue has drained the task.
func (u *TravelPackageUseCase) queuePdf(ctx context.Context, f MediaFile) string {
	res := u.optimizer.OptimizePdf(ctx, f.Data)
	if res.Degraded {
		u.logger.Warn("[media][usecase] pdf optimization skipped", zap.String("filename", f.Filename), zap.Error(res.Err))
	}

	key := pdfKeyPrefix + uuid.NewString() + ".pdf"
	token := u.queue.Queue(res.Data, pdfMIME, key)
	u.logger.Info("[media][usecase] pdf queued", zap.String("key", key), zap.String("token", token))
	return u.queue.GenerateURL(key)
}

func validateTravelPackage(p entities.TravelPackage) error {
	switch {
	case p.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidTravelPackage)
	case p.Price < 0:
		return fmt.Errorf("%w: price must not be negative", ErrInvalidTravelPackage)
	case p.MaxPeople < 1:
		return fmt.Errorf("%w: maxPeople must be at least 1", ErrInvalidTravelPackage)
	case len(p.BoardingLocations) == 0:
		return fmt.Errorf("%w: at least one boarding location is required", ErrInvalidTravelPackage)
	case p.TravelMonth == "":
		return fmt.Errorf("%w: travelMonth is required", ErrInvalidTravelPackage)
	}
	return nil
}
