package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"adizon-admin/internal/client"
	"adizon-admin/internal/domain"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testToken  = "test-admin-token"
	testUserID = "6f1c2a44-8d0e-4b8a-9a57-1f3c1d2e7b90"
)

const userJSON = `{
	"id": "6f1c2a44-8d0e-4b8a-9a57-1f3c1d2e7b90",
	"email": "anna@example.com",
	"name": "Anna",
	"telegram_id": "123456",
	"slack_id": null,
	"is_active": true,
	"is_approved": false,
	"role": "user",
	"crm_display_name": "Anna",
	"created_at": "2025-03-01T09:30:00.123456",
	"updated_at": "2025-03-02T10:00:00Z"
}`

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Auth   string
	CType  string
	Body   string
}

func newTestServer(t *testing.T, status int, body string) (*client.Client, *recordedRequest) {
	t.Helper()

	rec := &recordedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		*rec = recordedRequest{
			Method: r.Method,
			Path:   r.URL.EscapedPath(),
			Query:  r.URL.RawQuery,
			Auth:   r.Header.Get("Authorization"),
			CType:  r.Header.Get("Content-Type"),
			Body:   string(raw),
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return client.NewClient(srv.URL+"/", testToken, logger, client.WithTimeout(2*time.Second)), rec
}

func TestClient_List(t *testing.T) {
	c, rec := newTestServer(t, http.StatusOK, "["+userJSON+"]")

	users, err := c.List(context.Background(), 0, 0)

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, http.MethodGet, rec.Method)
	assert.Equal(t, "/api/users", rec.Path)
	assert.Equal(t, "limit=100&skip=0", rec.Query)
	assert.Equal(t, "Bearer "+testToken, rec.Auth)
	assert.Empty(t, rec.CType)

	u := users[0]
	assert.Equal(t, testUserID, u.ID)
	assert.Equal(t, "123456", u.PlatformID(domain.PlatformTelegram))
	assert.Nil(t, u.SlackID)
	assert.Equal(t, domain.RoleUser, u.Role)
	assert.Equal(t, time.Date(2025, 3, 1, 9, 30, 0, 123456000, time.UTC), u.CreatedAt.Time)
	assert.Equal(t, time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC), u.UpdatedAt.Time)
}

func TestClient_ListPendingAndStats(t *testing.T) {
	c, rec := newTestServer(t, http.StatusOK, "[]")

	users, err := c.ListPending(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
	assert.Equal(t, "/api/users/pending", rec.Path)

	c, rec = newTestServer(t, http.StatusOK, `{"total_users":10,"active_users":7,"pending_users":3}`)

	stats, err := c.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/api/users/stats", rec.Path)
	assert.Equal(t, &domain.Stats{TotalUsers: 10, ActiveUsers: 7, PendingUsers: 3}, stats)
}

func TestClient_GetByID(t *testing.T) {
	c, rec := newTestServer(t, http.StatusOK, userJSON)

	user, err := c.GetByID(context.Background(), testUserID)

	require.NoError(t, err)
	assert.Equal(t, "/api/users/"+testUserID, rec.Path)
	assert.Equal(t, "Anna", user.Name)
}

func TestClient_Create_SendsDefaults(t *testing.T) {
	c, rec := newTestServer(t, http.StatusCreated, userJSON)

	_, err := c.Create(context.Background(), domain.NewUserCreate("anna@example.com", "Anna"))

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, rec.Method)
	assert.Equal(t, "/api/users", rec.Path)
	assert.Equal(t, "application/json", rec.CType)
	assert.JSONEq(t, `{"email":"anna@example.com","name":"Anna","is_approved":false,"role":"user"}`, rec.Body)
}

func TestClient_Update_OnlySetFields(t *testing.T) {
	c, rec := newTestServer(t, http.StatusOK, userJSON)

	inactive := false
	name := "Anna K."
	_, err := c.Update(context.Background(), testUserID, &domain.UserUpdate{Name: &name, IsActive: &inactive})

	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, rec.Method)
	assert.JSONEq(t, `{"name":"Anna K.","is_active":false}`, rec.Body)
}

func TestClient_Approve(t *testing.T) {
	c, rec := newTestServer(t, http.StatusOK, userJSON)

	_, err := c.Approve(context.Background(), testUserID)

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, rec.Method)
	assert.Equal(t, "/api/users/"+testUserID+"/approve", rec.Path)
	assert.Empty(t, rec.Body)
}

func TestClient_LinkPlatform_QueryParams(t *testing.T) {
	c, rec := newTestServer(t, http.StatusOK, userJSON)

	_, err := c.LinkPlatform(context.Background(), testUserID, domain.PlatformSlack, "U02 AB&C")

	require.NoError(t, err)
	assert.Equal(t, "/api/users/"+testUserID+"/link", rec.Path)
	assert.Equal(t, "platform=slack&platform_id=U02+AB%26C", rec.Query)
}

func TestClient_Delete_NoContent(t *testing.T) {
	c, rec := newTestServer(t, http.StatusNoContent, "")

	err := c.Delete(context.Background(), testUserID)

	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, rec.Method)
}

func TestClient_PathEscaping(t *testing.T) {
	c, rec := newTestServer(t, http.StatusOK, userJSON)

	_, err := c.GetByID(context.Background(), "a/b")

	require.NoError(t, err)
	assert.Equal(t, "/api/users/a%2Fb", rec.Path)
}

func TestClient_APIError_StringDetail(t *testing.T) {
	c, _ := newTestServer(t, http.StatusBadRequest, `{"detail":"Email already registered"}`)

	_, err := c.Create(context.Background(), domain.NewUserCreate("anna@example.com", "Anna"))

	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode())
	assert.Equal(t, "Email already registered", apiErr.Detail())
	assert.Equal(t, "Email already registered", domain.DetailOrDefault(err, domain.MsgCreateFailed))
}

func TestClient_APIError_ValidationDetail(t *testing.T) {
	body, _ := json.Marshal(map[string]any{
		"detail": []map[string]any{
			{"loc": []string{"body", "email"}, "msg": "value is not a valid email address", "type": "value_error"},
			{"loc": []string{"body", "name"}, "msg": "field required", "type": "value_error.missing"},
		},
	})
	c, _ := newTestServer(t, http.StatusUnprocessableEntity, string(body))

	_, err := c.Create(context.Background(), domain.NewUserCreate("bad", ""))

	assert.Equal(t, "value is not a valid email address; field required", domain.DetailOrDefault(err, domain.MsgCreateFailed))
}

func TestClient_APIError_NoDetail(t *testing.T) {
	c, _ := newTestServer(t, http.StatusInternalServerError, "upstream exploded")

	err := c.Delete(context.Background(), testUserID)

	require.Error(t, err)
	assert.Equal(t, domain.MsgDeleteFailed, domain.DetailOrDefault(err, domain.MsgDeleteFailed))
}

func TestClient_NotFound(t *testing.T) {
	c, _ := newTestServer(t, http.StatusNotFound, `{"detail":"User not found"}`)

	_, err := c.GetByID(context.Background(), testUserID)

	assert.True(t, domain.IsNotFound(err))
}

func TestClient_TransportError(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	c := client.NewClient("http://127.0.0.1:1", testToken, logger, client.WithTimeout(time.Second))

	_, err := c.ListPending(context.Background())

	require.Error(t, err)
	assert.Equal(t, domain.MsgLoadPendingFailed, domain.DetailOrDefault(err, domain.MsgLoadPendingFailed))
}
