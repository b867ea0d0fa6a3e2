package usecase

import (
	"context"
	"strings"

	"adizon-admin/internal/domain"

	"github.com/sirupsen/logrus"
)

// UserUseCase реализует список, карточку и изменения пользователей.
type UserUseCase struct {
	client  domain.UserClient
	journal *journal
	logger  *logrus.Logger
}

// NewUserUseCase создает новый экземпляр UserUseCase.
func NewUserUseCase(client domain.UserClient, audit domain.AuditRepository, logger *logrus.Logger) domain.UserUseCase {
	return &UserUseCase{
		client:  client,
		journal: newJournal(audit, logger),
		logger:  logger,
	}
}

// List загружает пользователей и применяет фильтр поиска.
func (uc *UserUseCase) List(ctx context.Context, search string) *domain.UsersView {
	view := &domain.UsersView{Page: domain.NewPage(), Search: strings.TrimSpace(search)}

	users, err := uc.client.List(ctx, 0, 0)
	if err != nil {
		uc.logger.WithError(err).Error("Failed to load users")
		view.Fail(domain.MsgLoadUsersFailed)
		return view
	}

	view.Total = len(users)
	view.Users = FilterUsers(users, view.Search)
	view.Ready()
	return view
}

// Get возвращает пользователя по ID.
func (uc *UserUseCase) Get(ctx context.Context, userID string) (*domain.User, error) {
	user, err := uc.client.GetByID(ctx, userID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, domain.NewActionError(err, domain.MsgLoadUserFailed)
	}
	return user, nil
}

// Create создает пользователя. Проверки уникальности выполняет бэкенд.
func (uc *UserUseCase) Create(ctx context.Context, in *domain.UserCreate) (*domain.User, error) {
	user, err := uc.client.Create(ctx, in)
	if err != nil {
		return nil, domain.NewActionError(err, domain.MsgCreateFailed)
	}

	uc.journal.record(ctx, domain.AuditCreate, user.ID, user.Email)
	return user, nil
}

// Update частично обновляет пользователя.
func (uc *UserUseCase) Update(ctx context.Context, userID string, in *domain.UserUpdate) (*domain.User, error) {
	user, err := uc.client.Update(ctx, userID, in)
	if err != nil {
		return nil, domain.NewActionError(err, domain.MsgUpdateFailed)
	}

	uc.journal.record(ctx, domain.AuditUpdate, userID, user.Email)
	return user, nil
}

// LinkPlatform связывает пользователя с внешним мессенджером.
func (uc *UserUseCase) LinkPlatform(ctx context.Context, userID string, platform domain.Platform, platformID string) (*domain.User, error) {
	user, err := uc.client.LinkPlatform(ctx, userID, platform, platformID)
	if err != nil {
		return nil, domain.NewActionError(err, domain.MsgLinkFailed)
	}

	uc.journal.record(ctx, domain.AuditLink, userID, string(platform)+":"+platformID)
	return user, nil
}

// Delete удаляет пользователя.
func (uc *UserUseCase) Delete(ctx context.Context, userID string) error {
	if err := uc.client.Delete(ctx, userID); err != nil {
		return domain.NewActionError(err, domain.MsgDeleteFailed)
	}

	uc.journal.record(ctx, domain.AuditDelete, userID, "")
	return nil
}

// FilterUsers оставляет пользователей, чье имя или email содержит строку поиска
// без учета регистра. Пустой поиск возвращает всех.
func FilterUsers(users []*domain.User, search string) []*domain.User {
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return users
	}

	filtered := make([]*domain.User, 0, len(users))
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Name), needle) ||
			strings.Contains(strings.ToLower(u.Email), needle) {
			filtered = append(filtered, u)
		}
	}
	return filtered
}
