package handler

import (
	"net/http"

	"adizon-admin/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// DashboardHandler обрабатывает главную страницу консоли.
type DashboardHandler struct {
	*BaseHandler
	dashboardUseCase domain.DashboardUseCase
	approvalUseCase  domain.ApprovalUseCase
}

// NewDashboardHandler создает новый экземпляр DashboardHandler.
func NewDashboardHandler(dashboardUseCase domain.DashboardUseCase, approvalUseCase domain.ApprovalUseCase, logger *logrus.Logger) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler:      NewBaseHandler(logger),
		dashboardUseCase: dashboardUseCase,
		approvalUseCase:  approvalUseCase,
	}
}

// GetDashboard отрисовывает статистику и последние заявки.
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	logEntry := h.logRequest(c, "get_dashboard")

	view := h.dashboardUseCase.Load(c.Request().Context())
	if view.IsError() {
		logEntry.Warn("Dashboard rendered with error")
	} else {
		logEntry.WithField("pending_count", len(view.Pending)).Debug("Dashboard loaded")
	}

	return c.Render(http.StatusOK, "dashboard", newPageData(c, "dashboard", view))
}

// PostApprove одобряет пользователя прямо с главной страницы.
func (h *DashboardHandler) PostApprove(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return h.notFound(c)
	}

	logEntry := h.logRequest(c, "approve_user").WithField("user_id", userID)

	if err := h.approvalUseCase.Approve(c.Request().Context(), userID); err != nil {
		logEntry.WithError(err).Warn("Failed to approve user")
		return redirectWithAlert(c, "/", nil, domain.ActionMessage(err, domain.MsgApproveFailed))
	}

	logEntry.Info("User approved")
	return redirect(c, "/", nil)
}
