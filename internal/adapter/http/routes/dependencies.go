package routes

import (
	"context"
	"fmt"

	"travel_backoffice/internal/adapter/http/handlers"
	"travel_backoffice/internal/adapter/persistence/repository"
	"travel_backoffice/internal/config"
	"travel_backoffice/internal/domain/entities"
	"travel_backoffice/internal/infrastructure/auth"
	"travel_backoffice/internal/infrastructure/cache"
	"travel_backoffice/internal/infrastructure/database"
	"travel_backoffice/internal/infrastructure/events"
	"travel_backoffice/internal/infrastructure/mail"
	"travel_backoffice/internal/infrastructure/media"
	"travel_backoffice/internal/infrastructure/metrics"
	"travel_backoffice/internal/infrastructure/storage"
	"travel_backoffice/internal/usecase"
	"travel_backoffice/internal/usecase/interfaces"

	"go.uber.org/zap"
)

type repositories struct {
	packages interfaces.ITravelPackageRepository
	bookings interfaces.IBookingRepository
	users    interfaces.IUserRepository
}

type dependencies struct {
	travelPackages *handlers.TravelPackageHandler
	bookings       *handlers.BookingHandler
	auth           *handlers.AuthHandler
	users          *handlers.UserHandler
	uploads        *handlers.UploadHandler
	testEmail      *handlers.TestEmailHandler
	health         *handlers.HealthHandler

	authUseCase usecase.IAuthUseCase

	// done is closed when every background worker has stopped.
	done <-chan struct{}
}

func newRepositories(ctx context.Context, cfg *config.Config) (repositories, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		return repositories{
			packages: repository.NewTravelPackageMemoryRepository(),
			bookings: repository.NewBookingMemoryRepository(),
			users:    repository.NewUserMemoryRepository(),
		}, nil
	case config.StorageDriverDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return repositories{}, err
		}
		return repositories{
			packages: repository.NewTravelPackageDynamoRepository(ddb, cfg.DynamoDB.PackagesTable),
			bookings: repository.NewBookingDynamoRepository(ddb, cfg.DynamoDB.BookingsTable, cfg.DynamoDB.PackagesTable),
			users:    repository.NewUserDynamoRepository(ddb, cfg.DynamoDB.UsersTable),
		}, nil
	default:
		return repositories{}, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

func newCache(ctx context.Context, cfg *config.Config, logger *zap.Logger, m *metrics.Metrics) interfaces.ICache {
	if cfg.Cache.RedisAddr == "" {
		logger.Info("[routes][cache] using in-memory cache", zap.Duration("ttl", cfg.Cache.TTL))
		return cache.NewMemoryCache(ctx, cfg.Cache.TTL, m)
	}
	logger.Info("[routes][cache] using redis cache", zap.String("addr", cfg.Cache.RedisAddr), zap.Duration("ttl", cfg.Cache.TTL))
	return cache.NewRedisCache(cache.NewRedisClient(cfg.Cache), cfg.Cache.TTL, m)
}

// buildDependencies wires repositories, infrastructure and use cases into the
// HTTP handlers. Background workers live until ctx is cancelled.
func buildDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger, m *metrics.Metrics) (*dependencies, error) {
	repos, err := newRepositories(ctx, cfg)
	if err != nil {
		return nil, err
	}

	s3Client, err := storage.ConnectS3(ctx, cfg)
	if err != nil {
		return nil, err
	}
	store := storage.NewS3ObjectStore(s3Client, cfg.S3.Bucket, cfg.AWS.Region, logger)
	queue := storage.NewUploadQueue(store, cfg.Upload, logger, m)

	pubSub := events.NewPubSub(logger)
	publisher := events.NewBookingEventPublisher(pubSub, logger)

	hasher := auth.NewBcryptHasher()
	tokens := auth.NewJWTService(cfg.Auth)

	userUseCase := usecase.NewUserUseCase(repos.users, hasher, logger)
	authUseCase := usecase.NewAuthUseCase(userUseCase, repos.users, hasher, tokens, logger)
	bookingUseCase := usecase.NewBookingUseCase(repos.bookings, repos.packages, repos.users, publisher, logger)
	notificationUseCase := usecase.NewNotificationUseCase(mail.NewSMTPMailer(cfg.SMTP, logger), repos.packages, logger)
	travelPackageUseCase := usecase.NewTravelPackageUseCase(usecase.TravelPackageDeps{
		Packages:     repos.packages,
		Bookings:     repos.bookings,
		Store:        store,
		Queue:        queue,
		Optimizer:    media.NewOptimizer(cfg.Media, logger),
		Cache:        newCache(ctx, cfg, logger, m),
		Logger:       logger,
		DeletePolicy: cfg.PackageDeletePolicy,
	})

	subscriberDone, err := events.SubscribeBookingCreated(ctx, pubSub, func(ctx context.Context, b entities.Booking) error {
		err := notificationUseCase.SendBookingConfirmation(ctx, b)
		m.RecordEmail("booking_confirmation", err == nil)
		return err
	}, logger)
	if err != nil {
		return nil, err
	}

	queueDone := make(chan struct{})
	go func() {
		defer close(queueDone)
		queue.Run(ctx)
	}()

	done := make(chan struct{})
	go func() {
		<-queueDone
		<-subscriberDone
		if err := pubSub.Close(); err != nil {
			logger.Warn("[routes][events] closing pubsub failed", zap.Error(err))
		}
		close(done)
	}()

	return &dependencies{
		travelPackages: handlers.NewTravelPackageHandler(travelPackageUseCase, cfg.MaxUploadSizeMB),
		bookings:       handlers.NewBookingHandler(bookingUseCase),
		auth:           handlers.NewAuthHandler(authUseCase),
		users:          handlers.NewUserHandler(userUseCase),
		uploads:        handlers.NewUploadHandler(usecase.NewUploadAdminUseCase(queue)),
		testEmail:      handlers.NewTestEmailHandler(notificationUseCase, cfg.SMTP),
		health:         handlers.NewHealthHandler(cfg.AppEnv),
		authUseCase:    authUseCase,
		done:           done,
	}, nil
}
