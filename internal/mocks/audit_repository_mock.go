package mocks

import (
	"context"

	"adizon-admin/internal/domain"

	"github.com/stretchr/testify/mock"
)

type AuditRepository struct{ mock.Mock }

func (m *AuditRepository) Record(ctx context.Context, entry *domain.AuditEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *AuditRepository) Recent(ctx context.Context, limit int) ([]*domain.AuditEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.AuditEntry), args.Error(1)
}

func (m *AuditRepository) Enabled() bool {
	return m.Called().Bool(0)
}
