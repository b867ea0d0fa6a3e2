package usecase

import (
	"context"

	"adizon-admin/internal/domain"

	"github.com/sirupsen/logrus"
)

// journal пишет успешные действия; сбой записи только логируется.
type journal struct {
	repo   domain.AuditRepository
	logger *logrus.Logger
}

func newJournal(repo domain.AuditRepository, logger *logrus.Logger) *journal {
	return &journal{repo: repo, logger: logger}
}

func (j *journal) record(ctx context.Context, action domain.AuditAction, userID, detail string) {
	if !j.repo.Enabled() {
		return
	}

	entry := &domain.AuditEntry{Action: action, UserID: userID, Detail: detail}
	if err := j.repo.Record(ctx, entry); err != nil {
		j.logger.WithError(err).WithFields(logrus.Fields{
			"action":  action,
			"user_id": userID,
		}).Warn("Failed to record audit entry")
	}
}
