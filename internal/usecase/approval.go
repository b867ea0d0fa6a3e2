package usecase

import (
	"context"

	"adizon-admin/internal/domain"

	"github.com/sirupsen/logrus"
)

// ApprovalUseCase реализует очередь одобрения.
type ApprovalUseCase struct {
	client  domain.UserClient
	journal *journal
	logger  *logrus.Logger
}

// NewApprovalUseCase создает новый экземпляр ApprovalUseCase.
func NewApprovalUseCase(client domain.UserClient, audit domain.AuditRepository, logger *logrus.Logger) domain.ApprovalUseCase {
	return &ApprovalUseCase{
		client:  client,
		journal: newJournal(audit, logger),
		logger:  logger,
	}
}

// Pending загружает пользователей, ожидающих одобрения.
func (uc *ApprovalUseCase) Pending(ctx context.Context) *domain.ApprovalsView {
	view := &domain.ApprovalsView{Page: domain.NewPage()}

	pending, err := uc.client.ListPending(ctx)
	if err != nil {
		uc.logger.WithError(err).Error("Failed to load pending users")
		view.Fail(domain.MsgLoadPendingFailed)
		return view
	}

	view.Pending = pending
	view.Ready()
	return view
}

// Approve одобряет пользователя. Идемпотентность обеспечивает бэкенд.
func (uc *ApprovalUseCase) Approve(ctx context.Context, userID string) error {
	user, err := uc.client.Approve(ctx, userID)
	if err != nil {
		return domain.NewActionError(err, domain.MsgApproveFailed)
	}

	uc.journal.record(ctx, domain.AuditApprove, userID, user.Email)
	return nil
}

// Reject отклоняет заявку, удаляя пользователя.
func (uc *ApprovalUseCase) Reject(ctx context.Context, userID string) error {
	if err := uc.client.Delete(ctx, userID); err != nil {
		return domain.NewActionError(err, domain.MsgRejectFailed)
	}

	uc.journal.record(ctx, domain.AuditReject, userID, "")
	return nil
}
