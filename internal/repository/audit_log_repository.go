package repository

import (
	"context"

	"gorm.io/gorm"

	"sidehustle/internal/model"
)

// AuditLogRepository defines audit trail persistence operations.
type AuditLogRepository interface {
	Create(ctx context.Context, log *model.AuditLog) error
	CreateBatch(ctx context.Context, logs []model.AuditLog) error
}

type auditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new audit log repository.
func NewAuditLogRepository(db *gorm.DB) AuditLogRepository {
	return &auditLogRepository{db: db}
}

// Create creates a new audit log entry.
func (r *auditLogRepository) Create(ctx context.Context, log *model.AuditLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// CreateBatch creates multiple audit log entries in batches of 100.
func (r *auditLogRepository) CreateBatch(ctx context.Context, logs []model.AuditLog) error {
	if len(logs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(logs, 100).Error
}
