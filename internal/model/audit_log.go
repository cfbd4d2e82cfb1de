package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditAction names an admin action recorded in the audit trail.
type AuditAction string

const (
	AuditEntryCreate AuditAction = "entry.create"
	AuditEntryUpdate AuditAction = "entry.update"
	AuditEntryDelete AuditAction = "entry.delete"
	AuditLogin       AuditAction = "auth.login"
	AuditLogout      AuditAction = "auth.logout"
)

// AuditLog is a best-effort record of an admin action.
type AuditLog struct {
	ID        uuid.UUID   `json:"id" gorm:"type:char(36);primaryKey"`
	Action    AuditAction `json:"action" gorm:"type:varchar(32);not null;index"`
	EntryID   string      `json:"entry_id,omitempty" gorm:"size:64;index"`
	Actor     string      `json:"actor" gorm:"size:255;index"`
	Detail    string      `json:"detail,omitempty" gorm:"type:text"`
	CreatedAt time.Time   `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
