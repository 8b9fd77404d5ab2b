package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"outfitapi/models"
	"outfitapi/recommender"
	"outfitapi/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stockCloset(t *testing.T, closet *test.ClosetRepositoryMock, ownerID string) (top, bottom, shoes, coat models.Garment) {
	top = addGarment(t, closet, models.Garment{OwnerID: ownerID, Name: "Oxford shirt", Category: models.CategoryTop, Colors: test.NewRefString("white")})
	bottom = addGarment(t, closet, models.Garment{OwnerID: ownerID, Name: "Chinos", Category: models.CategoryBottom, Colors: test.NewRefString("khaki")})
	shoes = addGarment(t, closet, models.Garment{OwnerID: ownerID, Name: "Sneakers", Category: models.Category("shoe")})
	coat = addGarment(t, closet, models.Garment{OwnerID: ownerID, Name: "Trench", Category: models.Category("coat")})
	return
}

func postRecommendation(t *testing.T, e http.Handler, req *http.Request) (*httptest.ResponseRecorder, models.Outfit) {
	t.Helper()
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	var outfit models.Outfit
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &outfit))
	}
	return rec, outfit
}

func TestRecommendMildWeather(t *testing.T) {
	e, closet := setupTestServer(t, nil, nil)
	top, bottom, shoes, _ := stockCloset(t, closet, "demo")

	rec, outfit := postRecommendation(t, e, test.NewJSONRequest(http.MethodPost, "/recommendations", map[string]interface{}{
		"occasion":    "casual",
		"temperature": 20,
	}))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "casual", outfit.Occasion)
	assert.Equal(t, []models.OutfitItem{
		{ID: top.ID, Name: top.Name, Category: "top"},
		{ID: bottom.ID, Name: bottom.Name, Category: "bottom"},
		{ID: shoes.ID, Name: shoes.Name, Category: "shoe"},
	}, outfit.Items)
	assert.Empty(t, outfit.Notes)
	assert.NotContains(t, rec.Body.String(), "notes")
}

func TestRecommendColdViaTempCAlias(t *testing.T) {
	e, closet := setupTestServer(t, nil, nil)
	_, _, _, coat := stockCloset(t, closet, "demo")

	rec, outfit := postRecommendation(t, e, test.NewJSONRequest(http.MethodPost, "/recommendations", map[string]interface{}{
		"occasion": "casual",
		"temp_c":   5,
	}))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, outfit.Items, 4)
	assert.Equal(t, coat.ID, outfit.Items[3].ID)
	assert.Equal(t, recommender.NoteOuterwearAdded, outfit.Notes)
}

func TestRecommendTemperatureWinsOverTempC(t *testing.T) {
	e, closet := setupTestServer(t, nil, nil)
	stockCloset(t, closet, "demo")

	rec, outfit := postRecommendation(t, e, test.NewJSONRequest(http.MethodPost, "/recommendations", map[string]interface{}{
		"occasion":    "casual",
		"temperature": 25,
		"temp_c":      0,
	}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, outfit.Items, 3)
}

func TestRecommendRaining(t *testing.T) {
	e, closet := setupTestServer(t, nil, nil)
	stockCloset(t, closet, "demo")

	rec, outfit := postRecommendation(t, e, test.NewJSONRequest(http.MethodPost, "/recommendations", map[string]interface{}{
		"occasion": "casual",
		"raining":  true,
	}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, outfit.Items, 4)
	assert.Equal(t, recommender.NoteOuterwearAdded, outfit.Notes)
}

func TestRecommendEmptyCloset(t *testing.T) {
	e, _ := setupTestServer(t, nil, nil)

	rec, outfit := postRecommendation(t, e, test.NewJSONRequest(http.MethodPost, "/recommendations", map[string]interface{}{
		"occasion": "formal",
	}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "formal", outfit.Occasion)
	assert.NotNil(t, outfit.Items)
	assert.Empty(t, outfit.Items)
	assert.Contains(t, rec.Body.String(), `"items":[]`)
	assert.Equal(t, recommender.NoteMissingBasics, outfit.Notes)
}

func TestRecommendMissingOccasion(t *testing.T) {
	for _, body := range []map[string]interface{}{
		{"temperature": 10},
		{"occasion": ""},
		{"occasion": "   "},
	} {
		e, closet := setupTestServer(t, nil, nil)
		stockCloset(t, closet, "demo")
		calls := closet.ListCalls

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, test.NewJSONRequest(http.MethodPost, "/recommendations", body))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var response map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Contains(t, response["error"], "occasion")
		assert.Equal(t, calls, closet.ListCalls, "engine must not run on invalid input")
	}
}

func TestRecommendMalformedBody(t *testing.T) {
	e, _ := setupTestServer(t, nil, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, test.NewJSONRequest(http.MethodPost, "/recommendations", map[string]interface{}{
		"occasion":    "casual",
		"temperature": "warm",
	}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecommendFetchFailure(t *testing.T) {
	e, closet := setupTestServer(t, nil, nil)
	closet.ListErr = errors.New("db down")

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, test.NewJSONRequest(http.MethodPost, "/recommendations", map[string]interface{}{
		"occasion": "casual",
	}))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, 1, closet.ListCalls)
}

func TestRecommendOwnerResolution(t *testing.T) {
	e, closet := setupTestServer(t, nil, nil)
	top, _, _, _ := stockCloset(t, closet, "user-1")

	// anonymous callers may pick the closet in the body
	rec, outfit := postRecommendation(t, e, test.NewJSONRequest(http.MethodPost, "/recommendations", map[string]interface{}{
		"occasion": "casual",
		"owner_id": "user-1",
	}))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, outfit.Items)
	assert.Equal(t, top.ID, outfit.Items[0].ID)

	// a token owner is never overridden by the body
	rec, outfit = postRecommendation(t, e, test.NewJSONAuthRequest(http.MethodPost, "/recommendations", "user-2", map[string]interface{}{
		"occasion": "casual",
		"owner_id": "user-1",
	}))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, outfit.Items)
	assert.Equal(t, recommender.NoteMissingBasics, outfit.Notes)

	rec, outfit = postRecommendation(t, e, test.NewJSONAuthRequest(http.MethodPost, "/recommendations", "user-1", map[string]interface{}{
		"occasion": "casual",
	}))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, outfit.Items)
}

func TestRecommendUnauthorized(t *testing.T) {
	e, closet := setupTestServer(t, nil, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, test.NewJSONAuthRequestCustomAuth(http.MethodPost, "/recommendations", "Token abc", map[string]interface{}{
		"occasion": "casual",
	}))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, closet.ListCalls)
}

func TestRecommendRejectsPathLikeBodyOwner(t *testing.T) {
	e, closet := setupTestServer(t, nil, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, test.NewJSONRequest(http.MethodPost, "/recommendations", map[string]interface{}{
		"occasion": "casual",
		"owner_id": "../admin",
	}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, closet.ListCalls)
}
