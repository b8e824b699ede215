package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/placewise/backend/internal/api/handlers"
	"github.com/placewise/backend/internal/application/services"
	"github.com/placewise/backend/internal/domain/entities"
)

func newPlaceFixture() (*handlers.PlaceHandler, *fakePlaceRepo, *fakeTagRepo) {
	placeRepo := &fakePlaceRepo{}
	tagRepo := &fakeTagRepo{}
	placeService := services.NewPlaceService(placeRepo, tagRepo, &fakeListeRepo{})
	recommendationService := services.NewRecommendationService(nil, placeRepo, &fakeReviewRepo{})
	return handlers.NewPlaceHandler(placeService, recommendationService), placeRepo, tagRepo
}

func TestPlaceHandler_GetPlace_InvalidID(t *testing.T) {
	handler, _, _ := newPlaceFixture()

	req := httptest.NewRequest("GET", "/api/places/not-an-id", nil)
	req.SetPathValue("id", "not-an-id")
	w := httptest.NewRecorder()

	handler.GetPlace(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlaceHandler_GetPlace_Unknown(t *testing.T) {
	handler, _, _ := newPlaceFixture()

	id := primitive.NewObjectID().Hex()
	req := httptest.NewRequest("GET", "/api/places/"+id, nil)
	req.SetPathValue("id", id)
	w := httptest.NewRecorder()

	handler.GetPlace(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPlaceHandler_CreatePlace_RegistersTags(t *testing.T) {
	handler, placeRepo, tagRepo := newPlaceFixture()

	body := `{"name":"Café de Flore","category":"Café","city":"Paris","latitude":48.854,"longitude":2.3325,"tags":["wifi"]}`
	req := httptest.NewRequest("POST", "/api/places", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.CreatePlace(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, placeRepo.places, 1)

	var created entities.Place
	require.NoError(t, json.NewDecoder(w.Body).Decode(&created))
	assert.False(t, created.ID.IsZero())

	// A tag used on a place enters the vocabulary automatically.
	require.Len(t, tagRepo.tags, 1)
	assert.Equal(t, "wifi", tagRepo.tags[0].Libelle)
}

func TestPlaceHandler_CreatePlace_InvalidLatitude(t *testing.T) {
	handler, placeRepo, _ := newPlaceFixture()

	body := `{"name":"Nowhere","category":"Café","latitude":123.0,"longitude":0}`
	req := httptest.NewRequest("POST", "/api/places", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.CreatePlace(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, placeRepo.places)
}

func TestPlaceHandler_SearchPlaces_BadMinRating(t *testing.T) {
	handler, _, _ := newPlaceFixture()

	req := httptest.NewRequest("GET", "/api/places/search?minRating=abc", nil)
	w := httptest.NewRecorder()

	handler.SearchPlaces(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlaceHandler_RecommendPlaces_RequiresAuth(t *testing.T) {
	handler, _, _ := newPlaceFixture()

	req := httptest.NewRequest("GET", "/api/places/recommandations", nil)
	w := httptest.NewRecorder()

	handler.RecommendPlaces(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
