package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"adizon-admin/internal/client"
	"adizon-admin/internal/domain"
	"adizon-admin/internal/mocks"
	"adizon-admin/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestApprovalUseCase_Pending_Success(t *testing.T) {
	ctx := context.Background()
	userClient := &mocks.UserClient{}
	uc := usecase.NewApprovalUseCase(userClient, disabledAudit(), newLogger())

	pending := []*domain.User{{ID: "u1", Name: "Anna"}}
	userClient.On("ListPending", ctx).Return(pending, nil)

	view := uc.Pending(ctx)

	assert.Equal(t, domain.PageReady, view.State)
	assert.Equal(t, pending, view.Pending)
}

func TestApprovalUseCase_Pending_Error(t *testing.T) {
	ctx := context.Background()
	userClient := &mocks.UserClient{}
	uc := usecase.NewApprovalUseCase(userClient, disabledAudit(), newLogger())

	userClient.On("ListPending", ctx).Return(nil, assert.AnError)

	view := uc.Pending(ctx)

	assert.Equal(t, domain.PageError, view.State)
	assert.Equal(t, domain.MsgLoadPendingFailed, view.Error)
}

func TestApprovalUseCase_Approve_Success(t *testing.T) {
	ctx := context.Background()
	userClient := &mocks.UserClient{}
	audit := &mocks.AuditRepository{}
	uc := usecase.NewApprovalUseCase(userClient, audit, newLogger())

	userClient.On("Approve", ctx, "u1").Return(&domain.User{ID: "u1", Email: "anna@example.com", IsApproved: true}, nil).Once()
	audit.On("Enabled").Return(true)
	audit.On("Record", ctx, mock.MatchedBy(func(e *domain.AuditEntry) bool {
		return e.Action == domain.AuditApprove && e.UserID == "u1"
	})).Return(nil)

	err := uc.Approve(ctx, "u1")

	assert.NoError(t, err)
	userClient.AssertExpectations(t)
	userClient.AssertNotCalled(t, "ListPending", mock.Anything)
	audit.AssertExpectations(t)
}

func TestApprovalUseCase_Approve_Failure(t *testing.T) {
	ctx := context.Background()
	userClient := &mocks.UserClient{}
	uc := usecase.NewApprovalUseCase(userClient, disabledAudit(), newLogger())

	userClient.On("Approve", ctx, "u1").Return(nil, assert.AnError)

	err := uc.Approve(ctx, "u1")

	assert.Error(t, err)
	assert.Equal(t, domain.MsgApproveFailed, domain.ActionMessage(err, ""))
}

func TestApprovalUseCase_Reject_DeletesUser(t *testing.T) {
	ctx := context.Background()
	userClient := &mocks.UserClient{}
	uc := usecase.NewApprovalUseCase(userClient, disabledAudit(), newLogger())

	userClient.On("Delete", ctx, "u1").Return(nil).Once()

	err := uc.Reject(ctx, "u1")

	assert.NoError(t, err)
	userClient.AssertExpectations(t)
}

func TestApprovalUseCase_Reject_BackendDetail(t *testing.T) {
	ctx := context.Background()
	userClient := &mocks.UserClient{}
	uc := usecase.NewApprovalUseCase(userClient, disabledAudit(), newLogger())

	userClient.On("Delete", ctx, "u1").Return(&client.APIError{Status: http.StatusNotFound, Message: "User not found"})

	err := uc.Reject(ctx, "u1")

	assert.Equal(t, "User not found", domain.ActionMessage(err, domain.MsgRejectFailed))
}
