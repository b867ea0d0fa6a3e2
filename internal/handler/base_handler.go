package handler

import (
	"net/http"
	"net/url"

	"adizon-admin/internal/domain"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type BaseHandler struct {
	logger *logrus.Logger
}

func NewBaseHandler(logger *logrus.Logger) *BaseHandler {
	return &BaseHandler{
		logger: logger,
	}
}

func (h *BaseHandler) logRequest(c echo.Context, operation string) *logrus.Entry {
	return h.logger.WithFields(logrus.Fields{
		"operation":  operation,
		"method":     c.Request().Method,
		"path":       c.Request().URL.Path,
		"ip":         c.RealIP(),
		"user_agent": c.Request().UserAgent(),
	})
}

// userIDParam достает :id и проверяет, что это UUID.
func userIDParam(c echo.Context) (string, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return "", domain.ErrInvalidUserID
	}
	return id.String(), nil
}

// redirect выполняет перезагрузку страницы после действия (POST → GET).
func redirect(c echo.Context, path string, query url.Values) error {
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	return c.Redirect(http.StatusSeeOther, path)
}

// redirectWithAlert возвращает на страницу и показывает сообщение об ошибке.
func redirectWithAlert(c echo.Context, path string, query url.Values, msg string) error {
	q := url.Values{}
	for k, v := range query {
		q[k] = v
	}
	q.Set("alert", msg)
	return redirect(c, path, q)
}

func (h *BaseHandler) notFound(c echo.Context) error {
	return c.Render(http.StatusNotFound, "not_found", newPageData(c, "users", nil))
}
