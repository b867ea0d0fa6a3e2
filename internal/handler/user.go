package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"adizon-admin/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

const usersPath = "/users"

// UserHandler обрабатывает список пользователей, форму создания и карточку.
type UserHandler struct {
	*BaseHandler
	userUseCase domain.UserUseCase
}

// NewUserHandler создает новый экземпляр UserHandler.
func NewUserHandler(userUseCase domain.UserUseCase, logger *logrus.Logger) *UserHandler {
	return &UserHandler{
		BaseHandler: NewBaseHandler(logger),
		userUseCase: userUseCase,
	}
}

// userFormData — данные формы создания.
type userFormData struct {
	Form  *createUserForm
	Error string
}

// userDetailData — данные карточки пользователя в режиме просмотра или редактирования.
type userDetailData struct {
	UserID  string
	User    *domain.User
	Editing bool
	Form    *updateUserForm
	Error   string
}

// GetUsers отрисовывает список с фильтром ?q=.
func (h *UserHandler) GetUsers(c echo.Context) error {
	view := h.userUseCase.List(c.Request().Context(), c.QueryParam("q"))
	if view.IsError() {
		h.logRequest(c, "list_users").Warn("Users rendered with error")
	}
	return c.Render(http.StatusOK, "users", newPageData(c, "users", view))
}

// GetNewUser отрисовывает пустую форму создания со значениями по умолчанию.
func (h *UserHandler) GetNewUser(c echo.Context) error {
	form := &createUserForm{Role: string(domain.RoleUser)}
	return c.Render(http.StatusOK, "user_form", newPageData(c, "users", &userFormData{Form: form}))
}

// PostUsers создает пользователя. Форма отправляется один раз; при ошибке
// она показывается снова с введенными значениями.
func (h *UserHandler) PostUsers(c echo.Context) error {
	logEntry := h.logRequest(c, "create_user")

	var form createUserForm
	if err := c.Bind(&form); err != nil {
		logEntry.WithError(err).Warn("Failed to bind create form")
		return h.renderCreateForm(c, http.StatusBadRequest, &form, "Invalid form data")
	}
	form.normalize()

	if err := c.Validate(&form); err != nil {
		return h.renderCreateForm(c, http.StatusUnprocessableEntity, &form, validationMessage(err))
	}

	logEntry = logEntry.WithField("email", form.Email)

	user, err := h.userUseCase.Create(c.Request().Context(), form.toDomain())
	if err != nil {
		logEntry.WithError(err).Warn("Failed to create user")
		return h.renderCreateForm(c, http.StatusUnprocessableEntity, &form, domain.ActionMessage(err, domain.MsgCreateFailed))
	}

	logEntry.WithField("user_id", user.ID).Info("User created")
	return redirect(c, usersPath, nil)
}

func (h *UserHandler) renderCreateForm(c echo.Context, status int, form *createUserForm, msg string) error {
	return c.Render(status, "user_form", newPageData(c, "users", &userFormData{Form: form, Error: msg}))
}

// GetUser отрисовывает карточку; ?mode=edit переключает в режим редактирования.
func (h *UserHandler) GetUser(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return h.notFound(c)
	}

	user, err := h.userUseCase.Get(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return h.notFound(c)
		}
		h.logRequest(c, "get_user").WithError(err).Warn("Failed to load user")
		data := &userDetailData{UserID: userID, Error: domain.ActionMessage(err, domain.MsgLoadUserFailed)}
		return c.Render(http.StatusOK, "user_detail", newPageData(c, "users", data))
	}

	data := &userDetailData{UserID: userID, User: user}
	if c.QueryParam("mode") == "edit" {
		data.Editing = true
		data.Form = newUpdateUserForm(user)
	}
	return c.Render(http.StatusOK, "user_detail", newPageData(c, "users", data))
}

// PostUser отправляет частичное обновление из формы редактирования.
func (h *UserHandler) PostUser(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return h.notFound(c)
	}

	logEntry := h.logRequest(c, "update_user").WithField("user_id", userID)

	var form updateUserForm
	if err := c.Bind(&form); err != nil {
		logEntry.WithError(err).Warn("Failed to bind update form")
		return h.renderEditForm(c, http.StatusBadRequest, userID, &form, "Invalid form data")
	}
	form.normalize()

	if err := c.Validate(&form); err != nil {
		return h.renderEditForm(c, http.StatusUnprocessableEntity, userID, &form, validationMessage(err))
	}

	if _, err := h.userUseCase.Update(c.Request().Context(), userID, form.toDomain()); err != nil {
		logEntry.WithError(err).Warn("Failed to update user")
		return h.renderEditForm(c, http.StatusUnprocessableEntity, userID, &form, domain.ActionMessage(err, domain.MsgUpdateFailed))
	}

	logEntry.Info("User updated")
	return redirect(c, usersPath, nil)
}

func (h *UserHandler) renderEditForm(c echo.Context, status int, userID string, form *updateUserForm, msg string) error {
	data := &userDetailData{UserID: userID, Editing: true, Form: form, Error: msg}
	return c.Render(status, "user_detail", newPageData(c, "users", data))
}

// PostLinkPlatform связывает пользователя с Telegram или Slack.
func (h *UserHandler) PostLinkPlatform(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return h.notFound(c)
	}

	detailPath := usersPath + "/" + userID
	logEntry := h.logRequest(c, "link_platform").WithField("user_id", userID)

	var form linkPlatformForm
	if err := c.Bind(&form); err != nil {
		logEntry.WithError(err).Warn("Failed to bind link form")
		return redirectWithAlert(c, detailPath, nil, domain.MsgLinkFailed)
	}
	if err := c.Validate(&form); err != nil {
		return redirectWithAlert(c, detailPath, nil, validationMessage(err))
	}

	platformID := strings.TrimSpace(form.PlatformID)
	if platformID == "" {
		return redirect(c, detailPath, nil)
	}

	platform, err := domain.ParsePlatform(form.Platform)
	if err != nil {
		return redirectWithAlert(c, detailPath, nil, domain.MsgLinkFailed)
	}

	logEntry = logEntry.WithField("platform", platform)

	if _, err := h.userUseCase.LinkPlatform(c.Request().Context(), userID, platform, platformID); err != nil {
		logEntry.WithError(err).Warn("Failed to link platform")
		return redirectWithAlert(c, detailPath, nil, domain.ActionMessage(err, domain.MsgLinkFailed))
	}

	logEntry.Info("Platform linked")
	return redirect(c, usersPath, nil)
}

// PostDeleteUser удаляет пользователя и возвращает к списку с тем же поиском.
func (h *UserHandler) PostDeleteUser(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return h.notFound(c)
	}

	var query url.Values
	if q := strings.TrimSpace(c.FormValue("q")); q != "" {
		query = url.Values{"q": {q}}
	}

	logEntry := h.logRequest(c, "delete_user").WithField("user_id", userID)

	if err := h.userUseCase.Delete(c.Request().Context(), userID); err != nil {
		logEntry.WithError(err).Warn("Failed to delete user")
		return redirectWithAlert(c, usersPath, query, domain.ActionMessage(err, domain.MsgDeleteFailed))
	}

	logEntry.Info("User deleted")
	return redirect(c, usersPath, query)
}
