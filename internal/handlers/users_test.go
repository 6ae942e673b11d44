package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bistroboss/bistro-server/internal/models"
)

func TestCreateUserIdempotentByEmail(t *testing.T) {
	h := &UserHandler{DB: initTestDB(t)}

	payload := map[string]string{
		"name":  "Test User",
		"email": "user@bistro.test",
	}

	rec, c := doJSONRequest(t, http.MethodPost, "/users", payload)
	require.NoError(t, h.CreateUser(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var created models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	require.Equal(t, "user@bistro.test", created.Email)

	rec2, c2 := doJSONRequest(t, http.MethodPost, "/users", payload)
	require.NoError(t, h.CreateUser(c2))
	require.Equal(t, http.StatusOK, rec2.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec2.Body.Bytes(), &resp))
	require.Equal(t, "User already exists!", resp["message"])

	var count int64
	h.DB.Model(&models.User{}).Where("email = ?", "user@bistro.test").Count(&count)
	require.EqualValues(t, 1, count)
}

func TestGetUsers(t *testing.T) {
	h := &UserHandler{DB: initTestDB(t)}
	h.DB.Create(&models.User{Name: "A", Email: "a@bistro.test"})
	h.DB.Create(&models.User{Name: "B", Email: "b@bistro.test"})

	rec, c := doJSONRequest(t, http.MethodGet, "/users", nil)
	require.NoError(t, h.GetUsers(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var users []models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	require.Len(t, users, 2)
}

func TestIsAdminSelfCheckMismatch(t *testing.T) {
	h := &UserHandler{DB: initTestDB(t)}
	h.DB.Create(&models.User{Email: "other@bistro.test", Role: "admin"})

	rec, c := doJSONRequest(t, http.MethodGet, "/users/admin/other@bistro.test", nil)
	c.SetParamNames("email")
	c.SetParamValues("other@bistro.test")
	c.Set("email", "caller@bistro.test")

	require.NoError(t, h.IsAdmin(c))
	require.Equal(t, http.StatusForbidden, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, true, body["error"])
	require.Equal(t, "Forbidden Access", body["message"])
}

func TestIsAdminSelfCheck(t *testing.T) {
	h := &UserHandler{DB: initTestDB(t)}
	h.DB.Create(&models.User{Email: "boss@bistro.test", Role: "admin"})
	h.DB.Create(&models.User{Email: "user@bistro.test", Role: ""})

	tests := []struct {
		email string
		admin bool
	}{
		{email: "boss@bistro.test", admin: true},
		{email: "user@bistro.test", admin: false},
		{email: "nobody@bistro.test", admin: false},
	}

	for _, tt := range tests {
		rec, c := doJSONRequest(t, http.MethodGet, "/users/admin/"+tt.email, nil)
		c.SetParamNames("email")
		c.SetParamValues(tt.email)
		c.Set("email", tt.email)

		require.NoError(t, h.IsAdmin(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]bool
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, tt.admin, body["admin"], "email %s", tt.email)
	}
}

func TestPromoteAdmin(t *testing.T) {
	h := &UserHandler{DB: initTestDB(t)}
	user := models.User{Email: "user@bistro.test", Role: ""}
	h.DB.Create(&user)

	rec, c := doJSONRequest(t, http.MethodPatch, "/users/admin/1", nil)
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, h.PromoteAdmin(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var result UpdateResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.EqualValues(t, 1, result.ModifiedCount)

	var updated models.User
	require.NoError(t, h.DB.First(&updated, user.ID).Error)
	require.Equal(t, "admin", updated.Role)
}
