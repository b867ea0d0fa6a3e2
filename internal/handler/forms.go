package handler

import (
	"errors"
	"fmt"
	"strings"

	"adizon-admin/internal/domain"

	"github.com/go-playground/validator/v10"
)

// createUserForm — поля формы создания пользователя.
type createUserForm struct {
	Email          string `form:"email" validate:"required,email"`
	Name           string `form:"name" validate:"required"`
	CRMDisplayName string `form:"crm_display_name"`
	TelegramID     string `form:"telegram_id"`
	SlackID        string `form:"slack_id"`
	IsApproved     string `form:"is_approved"`
	Role           string `form:"role" validate:"omitempty,oneof=user admin"`
}

func (f *createUserForm) normalize() {
	f.Email = strings.TrimSpace(f.Email)
	f.Name = strings.TrimSpace(f.Name)
}

func (f *createUserForm) toDomain() *domain.UserCreate {
	in := domain.NewUserCreate(f.Email, f.Name)
	in.CRMDisplayName = domain.OptionalString(f.CRMDisplayName)
	in.TelegramID = domain.OptionalString(f.TelegramID)
	in.SlackID = domain.OptionalString(f.SlackID)
	in.IsApproved = checked(f.IsApproved)
	if f.Role != "" {
		in.Role = domain.Role(f.Role)
	}
	return in
}

// updateUserForm — поля формы редактирования. Форма всегда содержит
// текущие значения, поэтому email, имя, флаги и роль отправляются целиком.
type updateUserForm struct {
	Email          string `form:"email" validate:"required,email"`
	Name           string `form:"name" validate:"required"`
	CRMDisplayName string `form:"crm_display_name"`
	TelegramID     string `form:"telegram_id"`
	SlackID        string `form:"slack_id"`
	IsActive       string `form:"is_active"`
	IsApproved     string `form:"is_approved"`
	Role           string `form:"role" validate:"required,oneof=user admin"`
}

func newUpdateUserForm(u *domain.User) *updateUserForm {
	return &updateUserForm{
		Email:          u.Email,
		Name:           u.Name,
		CRMDisplayName: u.CRMDisplayName,
		TelegramID:     u.PlatformID(domain.PlatformTelegram),
		SlackID:        u.PlatformID(domain.PlatformSlack),
		IsActive:       boolValue(u.IsActive),
		IsApproved:     boolValue(u.IsApproved),
		Role:           string(u.Role),
	}
}

func (f *updateUserForm) normalize() {
	f.Email = strings.TrimSpace(f.Email)
	f.Name = strings.TrimSpace(f.Name)
}

func (f *updateUserForm) toDomain() *domain.UserUpdate {
	isActive := checked(f.IsActive)
	isApproved := checked(f.IsApproved)
	role := domain.Role(f.Role)

	return &domain.UserUpdate{
		Email:          &f.Email,
		Name:           &f.Name,
		CRMDisplayName: domain.OptionalString(f.CRMDisplayName),
		TelegramID:     domain.OptionalString(f.TelegramID),
		SlackID:        domain.OptionalString(f.SlackID),
		IsActive:       &isActive,
		IsApproved:     &isApproved,
		Role:           &role,
	}
}

// Checked используется шаблоном для чекбоксов.
func (f *updateUserForm) Checked(field string) bool {
	switch field {
	case "is_active":
		return checked(f.IsActive)
	case "is_approved":
		return checked(f.IsApproved)
	}
	return false
}

type linkPlatformForm struct {
	Platform   string `form:"platform" validate:"required,oneof=telegram slack"`
	PlatformID string `form:"platform_id"`
}

// checkbox values as sent by browsers and by our own prefill
func checked(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}

func boolValue(b bool) string {
	if b {
		return "on"
	}
	return ""
}

// validationMessage превращает ошибки валидатора в короткий текст для формы.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid form data"
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "email":
			msgs = append(msgs, fmt.Sprintf("%s must be a valid email address", field))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", field, fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", field))
		}
	}
	return strings.Join(msgs, "; ")
}
