package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bistroboss/bistro-server/internal/models"
)

func TestGetMenu(t *testing.T) {
	h := &MenuHandler{DB: initTestDB(t)}
	h.DB.Create(&models.MenuItem{Name: "Pasta", Category: "pasta", Price: 12})
	h.DB.Create(&models.MenuItem{Name: "Soup", Category: "soup", Price: 8})

	rec, c := doJSONRequest(t, http.MethodGet, "/menu", nil)
	require.NoError(t, h.GetMenu(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var items []models.MenuItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 2)
}

func TestCreateMenuItem(t *testing.T) {
	h := &MenuHandler{DB: initTestDB(t)}

	payload := map[string]any{
		"name":     "Roast Duck",
		"recipe":   "duck, honey, thyme",
		"category": "offered",
		"price":    28.5,
	}
	rec, c := doJSONRequest(t, http.MethodPost, "/menu", payload)

	require.NoError(t, h.CreateMenuItem(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var item models.MenuItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	require.NotEmpty(t, item.ID)
	require.Equal(t, "Roast Duck", item.Name)
	require.Equal(t, 28.5, item.Price)

	var count int64
	h.DB.Model(&models.MenuItem{}).Count(&count)
	require.EqualValues(t, 1, count)
}

func TestDeleteMenuItem(t *testing.T) {
	h := &MenuHandler{DB: initTestDB(t)}
	item := models.MenuItem{Name: "Pasta", Price: 12}
	h.DB.Create(&item)

	rec, c := doJSONRequest(t, http.MethodDelete, "/menu/1", nil)
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, h.DeleteMenuItem(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var result DeleteResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.EqualValues(t, 1, result.DeletedCount)

	var count int64
	h.DB.Model(&models.MenuItem{}).Count(&count)
	require.EqualValues(t, 0, count)
}

func TestDeleteMenuItemMissing(t *testing.T) {
	h := &MenuHandler{DB: initTestDB(t)}

	rec, c := doJSONRequest(t, http.MethodDelete, "/menu/42", nil)
	c.SetParamNames("id")
	c.SetParamValues("42")

	require.NoError(t, h.DeleteMenuItem(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var result DeleteResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.EqualValues(t, 0, result.DeletedCount)
}

func TestSearchMenuRequiresQuery(t *testing.T) {
	h := &MenuHandler{DB: initTestDB(t)}

	rec, c := doJSONRequest(t, http.MethodGet, "/menu/search", nil)
	require.NoError(t, h.SearchMenu(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchMenuUnavailableWithoutES(t *testing.T) {
	h := &MenuHandler{DB: initTestDB(t)}

	rec, c := doJSONRequest(t, http.MethodGet, "/menu/search?q=pasta", nil)
	require.NoError(t, h.SearchMenu(c))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
