package mocks

import (
	"context"

	"adizon-admin/internal/domain"

	"github.com/stretchr/testify/mock"
)

type UserClient struct{ mock.Mock }

func (m *UserClient) List(ctx context.Context, skip, limit int) ([]*domain.User, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *UserClient) ListPending(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *UserClient) Stats(ctx context.Context) (*domain.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stats), args.Error(1)
}

func (m *UserClient) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	return userResult(m.Called(ctx, userID))
}

func (m *UserClient) Create(ctx context.Context, in *domain.UserCreate) (*domain.User, error) {
	return userResult(m.Called(ctx, in))
}

func (m *UserClient) Update(ctx context.Context, userID string, in *domain.UserUpdate) (*domain.User, error) {
	return userResult(m.Called(ctx, userID, in))
}

func (m *UserClient) Approve(ctx context.Context, userID string) (*domain.User, error) {
	return userResult(m.Called(ctx, userID))
}

func (m *UserClient) LinkPlatform(ctx context.Context, userID string, platform domain.Platform, platformID string) (*domain.User, error) {
	return userResult(m.Called(ctx, userID, platform, platformID))
}

func (m *UserClient) Delete(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func userResult(args mock.Arguments) (*domain.User, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
