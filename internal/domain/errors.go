package domain

import (
	"errors"
	"net/http"
)

// Domain errors (для консоли)
var (
	// Validation errors
	ErrInvalidUserID   = errors.New("invalid user id")
	ErrInvalidPlatform = errors.New("invalid platform")

	// User errors
	ErrUserNotFound = errors.New("user not found")
)

// Сообщения, которые видит администратор
const (
	MsgLoadDashboardFailed = "Failed to load dashboard data"
	MsgLoadUsersFailed     = "Failed to load users"
	MsgLoadPendingFailed   = "Failed to load pending users"
	MsgLoadUserFailed      = "Failed to load user"

	MsgApproveFailed = "Failed to approve user"
	MsgRejectFailed  = "Failed to reject user"
	MsgDeleteFailed  = "Failed to delete user"
	MsgCreateFailed  = "Failed to create user"
	MsgUpdateFailed  = "Failed to update user"
	MsgLinkFailed    = "Failed to link platform"
)

// Detailer реализуют ошибки бэкенда, несущие сообщение для пользователя.
type Detailer interface {
	error
	Detail() string
	StatusCode() int
}

// DetailOrDefault возвращает сообщение бэкенда из цепочки ошибок или fallback.
func DetailOrDefault(err error, fallback string) string {
	var d Detailer
	if errors.As(err, &d) && d.Detail() != "" {
		return d.Detail()
	}
	return fallback
}

// IsNotFound сообщает, что бэкенд ответил 404 или пользователь не найден.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrUserNotFound) {
		return true
	}
	var d Detailer
	return errors.As(err, &d) && d.StatusCode() == http.StatusNotFound
}

// ActionError описывает неудачное действие администратора.
type ActionError struct {
	Message string
	Err     error
}

// NewActionError строит ActionError с сообщением бэкенда или fallback.
func NewActionError(err error, fallback string) *ActionError {
	return &ActionError{
		Message: DetailOrDefault(err, fallback),
		Err:     err,
	}
}

func (e *ActionError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *ActionError) Unwrap() error {
	return e.Err
}

// ActionMessage возвращает текст для администратора из любой ошибки действия.
func ActionMessage(err error, fallback string) string {
	var ae *ActionError
	if errors.As(err, &ae) {
		return ae.Message
	}
	return DetailOrDefault(err, fallback)
}
