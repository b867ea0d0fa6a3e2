package domain

import (
	"context"
	"strings"
)

// Role определяет роль пользователя в Adizon.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Platform — внешний мессенджер, с которым связывается пользователь.
type Platform string

const (
	PlatformTelegram Platform = "telegram"
	PlatformSlack    Platform = "slack"
)

// Platforms перечисляет поддерживаемые платформы в порядке отображения.
var Platforms = []Platform{PlatformTelegram, PlatformSlack}

// ParsePlatform проверяет название платформы без учета регистра.
func ParsePlatform(s string) (Platform, error) {
	switch p := Platform(strings.ToLower(strings.TrimSpace(s))); p {
	case PlatformTelegram, PlatformSlack:
		return p, nil
	default:
		return "", ErrInvalidPlatform
	}
}

// User представляет учетную запись пользователя, как ее возвращает бэкенд.
type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	CRMDisplayName string    `json:"crm_display_name"`
	TelegramID     *string   `json:"telegram_id"`
	SlackID        *string   `json:"slack_id"`
	IsActive       bool      `json:"is_active"`
	IsApproved     bool      `json:"is_approved"`
	Role           Role      `json:"role"`
	CreatedAt      Timestamp `json:"created_at"`
	UpdatedAt      Timestamp `json:"updated_at"`
}

// PlatformID возвращает идентификатор пользователя на платформе или пустую строку.
func (u *User) PlatformID(p Platform) string {
	var id *string
	switch p {
	case PlatformTelegram:
		id = u.TelegramID
	case PlatformSlack:
		id = u.SlackID
	}
	if id == nil {
		return ""
	}
	return *id
}

// Initial возвращает первую букву имени для аватара.
func (u *User) Initial() string {
	for _, r := range u.Name {
		return strings.ToUpper(string(r))
	}
	return "?"
}

// UserCreate — данные для создания пользователя.
type UserCreate struct {
	Email          string  `json:"email"`
	Name           string  `json:"name"`
	CRMDisplayName *string `json:"crm_display_name,omitempty"`
	TelegramID     *string `json:"telegram_id,omitempty"`
	SlackID        *string `json:"slack_id,omitempty"`
	IsApproved     bool    `json:"is_approved"`
	Role           Role    `json:"role"`
}

// NewUserCreate создает запрос на создание с полями по умолчанию:
// пользователь не одобрен и имеет роль user.
func NewUserCreate(email, name string) *UserCreate {
	return &UserCreate{
		Email:      email,
		Name:       name,
		IsApproved: false,
		Role:       RoleUser,
	}
}

// UserUpdate — частичное обновление; nil-поля не отправляются.
type UserUpdate struct {
	Email          *string `json:"email,omitempty"`
	Name           *string `json:"name,omitempty"`
	CRMDisplayName *string `json:"crm_display_name,omitempty"`
	TelegramID     *string `json:"telegram_id,omitempty"`
	SlackID        *string `json:"slack_id,omitempty"`
	IsActive       *bool   `json:"is_active,omitempty"`
	IsApproved     *bool   `json:"is_approved,omitempty"`
	Role           *Role   `json:"role,omitempty"`
}

// UserClient определяет контракт доступа к REST API пользователей Adizon.
type UserClient interface {
	List(ctx context.Context, skip, limit int) ([]*User, error)
	ListPending(ctx context.Context) ([]*User, error)
	Stats(ctx context.Context) (*Stats, error)
	GetByID(ctx context.Context, userID string) (*User, error)
	Create(ctx context.Context, in *UserCreate) (*User, error)
	Update(ctx context.Context, userID string, in *UserUpdate) (*User, error)
	Approve(ctx context.Context, userID string) (*User, error)
	LinkPlatform(ctx context.Context, userID string, platform Platform, platformID string) (*User, error)
	Delete(ctx context.Context, userID string) error
}

// OptionalString превращает пустую строку в nil.
func OptionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
