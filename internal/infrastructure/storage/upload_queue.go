package storage

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"travel_backoffice/internal/config"
	"travel_backoffice/internal/domain/entities"
	"travel_backoffice/internal/infrastructure/metrics"
	"travel_backoffice/internal/usecase/interfaces"

	"go.uber.org/zap"
)

type uploadTask struct {
	token       string
	key         string
	contentType string
	body        []byte
	attempts    int
	lastErr     string
	enqueuedAt  time.Time
}

func (t *uploadTask) view() entities.UploadTask {
	return entities.UploadTask{
		Token:       t.token,
		Key:         t.key,
		ContentType: t.contentType,
		Size:        len(t.body),
		Attempts:    t.attempts,
		LastError:   t.lastErr,
		EnqueuedAt:  t.enqueuedAt,
	}
}

// UploadQueue decouples request handling from S3 latency.
//
// Queue returns immediately; Run drains pending tasks sequentially, in enqueue
// order, whenever something is queued and every retry interval. A failed task
// stays queued for the next pass until it reaches maxAttempts, after which it is
// moved to the failed list (maxAttempts 0 retries forever).
//
// Tasks live in memory only: anything pending at shutdown is lost.
type UploadQueue struct {
	store       interfaces.IObjectStore
	interval    time.Duration
	maxAttempts int
	logger      *zap.Logger
	metrics     *metrics.Metrics

	mu      sync.Mutex
	pending map[string]*uploadTask
	order   []string
	failed  []entities.UploadTask

	draining atomic.Bool
	wake     chan struct{}
}

var _ interfaces.IUploadQueue = (*UploadQueue)(nil)

func NewUploadQueue(store interfaces.IObjectStore, cfg config.UploadConfig, logger *zap.Logger, m *metrics.Metrics) *UploadQueue {
	interval := cfg.RetryInterval
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &UploadQueue{
		store:       store,
		interval:    interval,
		maxAttempts: cfg.MaxAttempts,
		logger:      logger,
		metrics:     m,
		pending:     make(map[string]*uploadTask),
		wake:        make(chan struct{}, 1),
	}
}

// Queue registers body for upload under key and returns a 32 hex char token.
// The buffer is owned by the queue from this point on.
func (q *UploadQueue) Queue(body []byte, contentType string, key string) string {
	t := &uploadTask{
		token:       newToken(),
		key:         key,
		contentType: contentType,
		body:        body,
		enqueuedAt:  time.Now().UTC(),
	}

	q.mu.Lock()
	q.pending[t.token] = t
	q.order = append(q.order, t.token)
	n := len(q.order)
	q.mu.Unlock()

	q.metrics.RecordUploadQueued(n)
	q.logger.Info("[storage][queue] upload queued",
		zap.String("token", t.token),
		zap.String("key", key),
		zap.Int("size", len(body)),
		zap.Int("pending", n),
	)

	select {
	case q.wake <- struct{}{}:
	default:
	}
	return t.token
}

func (q *UploadQueue) GenerateURL(key string) string {
	return q.store.GenerateURL(key)
}

// Run drives the drain loop until ctx is cancelled.
func (q *UploadQueue) Run(ctx context.Context) {
	ticker := time.NewTicker(q.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if n := q.Len(); n > 0 {
				q.logger.Warn("[storage][queue] stopping with pending uploads", zap.Int("pending", n))
			}
			return
		case <-q.wake:
		case <-ticker.C:
		}
		q.DrainOnce(ctx)
	}
}

// DrainOnce makes one sequential pass over the tasks pending when it starts.
// It is a no-op if another pass is already running.
func (q *UploadQueue) DrainOnce(ctx context.Context) {
	if !q.draining.CompareAndSwap(false, true) {
		return
	}
	defer q.draining.Store(false)

	q.mu.Lock()
	batch := make([]*uploadTask, 0, len(q.order))
	for _, token := range q.order {
		batch = append(batch, q.pending[token])
	}
	q.mu.Unlock()

	for _, t := range batch {
		if ctx.Err() != nil {
			return
		}
		q.attempt(ctx, t)
	}
}

func (q *UploadQueue) attempt(ctx context.Context, t *uploadTask) {
	start := time.Now()
	url, err := q.store.Upload(ctx, t.key, t.contentType, t.body)
	elapsed := time.Since(start)

	q.mu.Lock()
	defer q.mu.Unlock()

	if err == nil {
		q.removeLocked(t.token)
		q.metrics.RecordUploadAttempt("success", elapsed, len(q.order))
		q.logger.Info("[storage][queue] upload done",
			zap.String("token", t.token),
			zap.String("key", t.key),
			zap.String("url", url),
			zap.Int("attempts", t.attempts+1),
		)
		return
	}

	t.attempts++
	t.lastErr = err.Error()

	if q.maxAttempts > 0 && t.attempts >= q.maxAttempts {
		q.removeLocked(t.token)
		q.failed = append(q.failed, t.view())
		q.metrics.RecordUploadAttempt("failed", elapsed, len(q.order))
		q.logger.Error("[storage][queue] upload given up",
			zap.String("token", t.token),
			zap.String("key", t.key),
			zap.Int("attempts", t.attempts),
			zap.Error(err),
		)
		return
	}

	q.metrics.RecordUploadAttempt("retry", elapsed, len(q.order))
	q.logger.Warn("[storage][queue] upload failed, will retry",
		zap.String("token", t.token),
		zap.String("key", t.key),
		zap.Int("attempts", t.attempts),
		zap.Duration("retry_in", q.interval),
		zap.Error(err),
	)
}

func (q *UploadQueue) removeLocked(token string) {
	delete(q.pending, token)
	q.order = slices.DeleteFunc(q.order, func(v string) bool { return v == token })
}

func (q *UploadQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.order)
}

// Pending returns a snapshot of the queued tasks in enqueue order.
func (q *UploadQueue) Pending() []entities.UploadTask {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]entities.UploadTask, 0, len(q.order))
	for _, token := range q.order {
		out = append(out, q.pending[token].view())
	}
	return out
}

// Failed returns the tasks that exhausted their attempts.
func (q *UploadQueue) Failed() []entities.UploadTask {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]entities.UploadTask{}, q.failed...)
}

func newToken() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
