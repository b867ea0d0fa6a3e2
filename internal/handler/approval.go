package handler

import (
	"net/http"

	"adizon-admin/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

const approvalsPath = "/approvals"

// ApprovalHandler обрабатывает очередь одобрения.
type ApprovalHandler struct {
	*BaseHandler
	approvalUseCase domain.ApprovalUseCase
}

// NewApprovalHandler создает новый экземпляр ApprovalHandler.
func NewApprovalHandler(approvalUseCase domain.ApprovalUseCase, logger *logrus.Logger) *ApprovalHandler {
	return &ApprovalHandler{
		BaseHandler:     NewBaseHandler(logger),
		approvalUseCase: approvalUseCase,
	}
}

// GetApprovals отрисовывает пользователей, ожидающих одобрения.
func (h *ApprovalHandler) GetApprovals(c echo.Context) error {
	view := h.approvalUseCase.Pending(c.Request().Context())
	if view.IsError() {
		h.logRequest(c, "get_approvals").Warn("Approvals rendered with error")
	}
	return c.Render(http.StatusOK, "approvals", newPageData(c, "approvals", view))
}

// PostApprove одобряет заявку и перезагружает очередь.
func (h *ApprovalHandler) PostApprove(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return h.notFound(c)
	}

	logEntry := h.logRequest(c, "approve_user").WithField("user_id", userID)

	if err := h.approvalUseCase.Approve(c.Request().Context(), userID); err != nil {
		logEntry.WithError(err).Warn("Failed to approve user")
		return redirectWithAlert(c, approvalsPath, nil, domain.ActionMessage(err, domain.MsgApproveFailed))
	}

	logEntry.Info("User approved")
	return redirect(c, approvalsPath, nil)
}

// PostReject отклоняет заявку (удаляет пользователя).
func (h *ApprovalHandler) PostReject(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return h.notFound(c)
	}

	logEntry := h.logRequest(c, "reject_user").WithField("user_id", userID)

	if err := h.approvalUseCase.Reject(c.Request().Context(), userID); err != nil {
		logEntry.WithError(err).Warn("Failed to reject user")
		return redirectWithAlert(c, approvalsPath, nil, domain.ActionMessage(err, domain.MsgRejectFailed))
	}

	logEntry.Info("User rejected")
	return redirect(c, approvalsPath, nil)
}
