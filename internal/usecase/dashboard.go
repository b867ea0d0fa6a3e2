package usecase

import (
	"context"

	"adizon-admin/internal/domain"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const recentActivityLimit = 10

// DashboardUseCase собирает статистику и очередь одобрения для главной страницы.
type DashboardUseCase struct {
	client domain.UserClient
	audit  domain.AuditRepository
	logger *logrus.Logger
}

// NewDashboardUseCase создает новый экземпляр DashboardUseCase.
func NewDashboardUseCase(client domain.UserClient, audit domain.AuditRepository, logger *logrus.Logger) domain.DashboardUseCase {
	return &DashboardUseCase{
		client: client,
		audit:  audit,
		logger: logger,
	}
}

// Load параллельно запрашивает статистику и ожидающих пользователей.
func (uc *DashboardUseCase) Load(ctx context.Context) *domain.DashboardView {
	view := &domain.DashboardView{Page: domain.NewPage()}

	var (
		stats   *domain.Stats
		pending []*domain.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats, err = uc.client.Stats(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		pending, err = uc.client.ListPending(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		uc.logger.WithError(err).Error("Failed to load dashboard data")
		view.Fail(domain.MsgLoadDashboardFailed)
		return view
	}

	view.Stats = stats
	view.Pending = pending
	view.Recent = uc.recentActivity(ctx)
	view.Ready()
	return view
}

// журнал вспомогательный: ошибка не ломает страницу
func (uc *DashboardUseCase) recentActivity(ctx context.Context) []*domain.AuditEntry {
	if !uc.audit.Enabled() {
		return nil
	}
	entries, err := uc.audit.Recent(ctx, recentActivityLimit)
	if err != nil {
		uc.logger.WithError(err).Warn("Failed to load recent activity")
		return nil
	}
	return entries
}
