package domain

import (
	"context"
	"time"
)

// AuditAction — тип действия администратора.
type AuditAction string

const (
	AuditCreate  AuditAction = "create"
	AuditUpdate  AuditAction = "update"
	AuditApprove AuditAction = "approve"
	AuditReject  AuditAction = "reject"
	AuditDelete  AuditAction = "delete"
	AuditLink    AuditAction = "link"
)

// AuditEntry — запись журнала о выполненном действии.
type AuditEntry struct {
	ID        int64
	Action    AuditAction
	UserID    string
	Detail    string
	CreatedAt time.Time
}

// AuditRepository определяет контракт для журнала действий.
type AuditRepository interface {
	Record(ctx context.Context, entry *AuditEntry) error
	Recent(ctx context.Context, limit int) ([]*AuditEntry, error)
	Enabled() bool
}
