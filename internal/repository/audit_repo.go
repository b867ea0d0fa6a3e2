package repository

import (
	"context"
	"database/sql"
	"fmt"

	"adizon-admin/internal/domain"
)

const (
	insertAuditEntry = `
INSERT INTO audit_log (action, user_id, detail)
VALUES ($1, $2, $3)
RETURNING id, created_at`

	selectRecentAuditEntries = `
SELECT id, action, user_id, detail, created_at
FROM audit_log
ORDER BY created_at DESC, id DESC
LIMIT $1`
)

// AuditRepository хранит журнал действий администратора в PostgreSQL.
type AuditRepository struct {
	db *sql.DB
}

// NewAuditRepository создает новый экземпляр AuditRepository.
func NewAuditRepository(db *sql.DB) domain.AuditRepository {
	return &AuditRepository{
		db: db,
	}
}

// Record сохраняет запись и заполняет ID и время создания.
func (r *AuditRepository) Record(ctx context.Context, entry *domain.AuditEntry) error {
	err := r.db.QueryRowContext(ctx, insertAuditEntry, string(entry.Action), entry.UserID, entry.Detail).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record audit entry: %w", err)
	}
	return nil
}

// Recent возвращает последние записи журнала, новые первыми.
func (r *AuditRepository) Recent(ctx context.Context, limit int) ([]*domain.AuditEntry, error) {
	rows, err := r.db.QueryContext(ctx, selectRecentAuditEntries, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get audit entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.AuditEntry, 0, limit)
	for rows.Next() {
		var (
			e      domain.AuditEntry
			action string
		)
		if err := rows.Scan(&e.ID, &action, &e.UserID, &e.Detail, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		e.Action = domain.AuditAction(action)
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate audit entries: %w", err)
	}

	return entries, nil
}

func (r *AuditRepository) Enabled() bool { return true }

// NopAuditRepository используется, когда журнал выключен.
type NopAuditRepository struct{}

func NewNopAuditRepository() domain.AuditRepository { return NopAuditRepository{} }

func (NopAuditRepository) Record(context.Context, *domain.AuditEntry) error { return nil }

func (NopAuditRepository) Recent(context.Context, int) ([]*domain.AuditEntry, error) {
	return nil, nil
}

func (NopAuditRepository) Enabled() bool { return false }
