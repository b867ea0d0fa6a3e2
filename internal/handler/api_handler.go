package handler

import (
	"net/http"

	"adizon-admin/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type ConsoleHandler struct {
	*DashboardHandler
	*UserHandler
	*ApprovalHandler
}

func NewConsoleHandler(
	dashboardUseCase domain.DashboardUseCase,
	userUseCase domain.UserUseCase,
	approvalUseCase domain.ApprovalUseCase,
	logger *logrus.Logger,
) *ConsoleHandler {

	return &ConsoleHandler{
		DashboardHandler: NewDashboardHandler(dashboardUseCase, approvalUseCase, logger),
		UserHandler:      NewUserHandler(userUseCase, logger),
		ApprovalHandler:  NewApprovalHandler(approvalUseCase, logger),
	}
}

// RegisterHandlers регистрирует маршруты консоли.
func RegisterHandlers(e *echo.Echo, h *ConsoleHandler) {
	e.GET("/", h.GetDashboard)
	e.POST("/users/:id/approve", h.DashboardHandler.PostApprove)

	e.GET(usersPath, h.GetUsers)
	e.POST(usersPath, h.PostUsers)
	e.GET("/users/new", h.GetNewUser)
	e.GET("/users/:id", h.GetUser)
	e.POST("/users/:id", h.PostUser)
	e.POST("/users/:id/link", h.PostLinkPlatform)
	e.POST("/users/:id/delete", h.PostDeleteUser)

	e.GET(approvalsPath, h.GetApprovals)
	e.POST("/approvals/:id/approve", h.ApprovalHandler.PostApprove)
	e.POST("/approvals/:id/reject", h.PostReject)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
}
