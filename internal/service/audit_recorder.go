package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"sidehustle/internal/model"
	"sidehustle/internal/repository"
)

const (
	auditBatchSize     = 10
	auditBufferSize    = 100
	auditFlushInterval = time.Second
)

// AuditRecorder records admin actions without ever failing the caller.
type AuditRecorder interface {
	Record(ctx context.Context, entry model.AuditLog)
	Close()
}

type nopAuditRecorder struct{}

// NewNopAuditRecorder returns a recorder that drops everything.
func NewNopAuditRecorder() AuditRecorder { return nopAuditRecorder{} }

func (nopAuditRecorder) Record(context.Context, model.AuditLog) {}
func (nopAuditRecorder) Close()                                 {}

type auditRecorder struct {
	repo     repository.AuditLogRepository
	logs     chan model.AuditLog
	done     chan struct{}
	interval time.Duration

	mu     sync.RWMutex
	closed bool
}

// NewAuditRecorder starts a worker that writes audit entries in batches.
func NewAuditRecorder(repo repository.AuditLogRepository) AuditRecorder {
	return newAuditRecorder(repo, auditFlushInterval)
}

func newAuditRecorder(repo repository.AuditLogRepository, interval time.Duration) *auditRecorder {
	r := &auditRecorder{
		repo:     repo,
		logs:     make(chan model.AuditLog, auditBufferSize),
		done:     make(chan struct{}),
		interval: interval,
	}

	// Start async log worker
	go r.worker()

	return r
}

// Record queues an entry. When the queue is full the entry is written synchronously.
func (r *auditRecorder) Record(ctx context.Context, entry model.AuditLog) {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return
	}

	select {
	case r.logs <- entry:
	default:
		// Channel full, log synchronously as fallback
		if err := r.repo.Create(context.WithoutCancel(ctx), &entry); err != nil {
			log.Ctx(ctx).Warn().Err(err).Str("action", string(entry.Action)).Msg("audit write failed")
		}
	}
}

// Close flushes queued entries and stops the worker.
func (r *auditRecorder) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	close(r.logs)
	r.mu.Unlock()

	<-r.done
}

func (r *auditRecorder) worker() {
	defer close(r.done)

	batch := make([]model.AuditLog, 0, auditBatchSize)
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}
		if err := r.repo.CreateBatch(context.Background(), batch); err != nil {
			log.Warn().Err(err).Int("count", len(batch)).Msg("audit batch write failed")
		}
		batch = make([]model.AuditLog, 0, auditBatchSize)
	}

	for {
		select {
		case entry, ok := <-r.logs:
			if !ok {
				flush()
				return
			}
			batch = append(batch, entry)
			if len(batch) >= auditBatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		}
	}
}
