package domain

import "context"

// DashboardUseCase собирает данные для главной страницы.
type DashboardUseCase interface {
	Load(ctx context.Context) *DashboardView
}

// UserUseCase определяет операции списка и карточки пользователя.
type UserUseCase interface {
	List(ctx context.Context, search string) *UsersView
	Get(ctx context.Context, userID string) (*User, error)
	Create(ctx context.Context, in *UserCreate) (*User, error)
	Update(ctx context.Context, userID string, in *UserUpdate) (*User, error)
	LinkPlatform(ctx context.Context, userID string, platform Platform, platformID string) (*User, error)
	Delete(ctx context.Context, userID string) error
}

// ApprovalUseCase определяет операции очереди одобрения.
type ApprovalUseCase interface {
	Pending(ctx context.Context) *ApprovalsView
	Approve(ctx context.Context, userID string) error
	Reject(ctx context.Context, userID string) error
}
