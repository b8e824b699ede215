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

func newListeFixture() (*handlers.ListeHandler, *fakeListeRepo) {
	listeRepo := &fakeListeRepo{}
	listeService := services.NewListeService(listeRepo, &fakePlaceRepo{})
	return handlers.NewListeHandler(listeService), listeRepo
}

func TestListeHandler_GetListe_PrivateHiddenFromAnonymous(t *testing.T) {
	handler, listeRepo := newListeFixture()

	liste := &entities.Liste{ID: primitive.NewObjectID(), Name: "Mes favoris", IsPrivate: true, OwnerID: primitive.NewObjectID()}
	listeRepo.listes = append(listeRepo.listes, liste)

	req := httptest.NewRequest("GET", "/api/listes/"+liste.ID.Hex(), nil)
	req.SetPathValue("id", liste.ID.Hex())
	w := httptest.NewRecorder()

	handler.GetListe(w, req)

	// Indistinguishable from a list that does not exist.
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListeHandler_GetListe_PrivateVisibleToOwner(t *testing.T) {
	handler, listeRepo := newListeFixture()
	authenticator := newTestAuthenticator()

	owner := &entities.User{ID: primitive.NewObjectID(), Username: "marie"}
	liste := &entities.Liste{ID: primitive.NewObjectID(), Name: "Mes favoris", IsPrivate: true, OwnerID: owner.ID}
	listeRepo.listes = append(listeRepo.listes, liste)

	req := httptest.NewRequest("GET", "/api/listes/"+liste.ID.Hex(), nil)
	req.SetPathValue("id", liste.ID.Hex())
	withBearer(t, authenticator, owner, req)
	w := httptest.NewRecorder()

	authenticator.RequireAuth(http.HandlerFunc(handler.GetListe)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListeHandler_ListListes_AnonymousSeesOnlyPublic(t *testing.T) {
	handler, listeRepo := newListeFixture()

	listeRepo.listes = append(listeRepo.listes,
		&entities.Liste{ID: primitive.NewObjectID(), Name: "Terrasses de Paris", OwnerID: primitive.NewObjectID()},
		&entities.Liste{ID: primitive.NewObjectID(), Name: "Mes favoris", IsPrivate: true, OwnerID: primitive.NewObjectID()},
	)

	req := httptest.NewRequest("GET", "/api/listes", nil)
	w := httptest.NewRecorder()

	handler.ListListes(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var listes []*entities.Liste
	require.NoError(t, json.NewDecoder(w.Body).Decode(&listes))
	require.Len(t, listes, 1)
	assert.Equal(t, "Terrasses de Paris", listes[0].Name)
}

func TestListeHandler_ListListes_OwnerSeesOwnPrivate(t *testing.T) {
	handler, listeRepo := newListeFixture()
	authenticator := newTestAuthenticator()

	owner := &entities.User{ID: primitive.NewObjectID(), Username: "marie"}
	listeRepo.listes = append(listeRepo.listes,
		&entities.Liste{ID: primitive.NewObjectID(), Name: "Terrasses de Paris", OwnerID: primitive.NewObjectID()},
		&entities.Liste{ID: primitive.NewObjectID(), Name: "Mes favoris", IsPrivate: true, OwnerID: owner.ID},
		&entities.Liste{ID: primitive.NewObjectID(), Name: "Secrets d'un autre", IsPrivate: true, OwnerID: primitive.NewObjectID()},
	)

	req := httptest.NewRequest("GET", "/api/listes", nil)
	withBearer(t, authenticator, owner, req)
	w := httptest.NewRecorder()

	authenticator.RequireAuth(http.HandlerFunc(handler.ListListes)).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var listes []*entities.Liste
	require.NoError(t, json.NewDecoder(w.Body).Decode(&listes))
	assert.Len(t, listes, 2)
}

func TestListeHandler_UpdateListe_NonOwnerForbidden(t *testing.T) {
	handler, listeRepo := newListeFixture()
	authenticator := newTestAuthenticator()

	liste := &entities.Liste{ID: primitive.NewObjectID(), Name: "Mes favoris", OwnerID: primitive.NewObjectID()}
	listeRepo.listes = append(listeRepo.listes, liste)

	stranger := &entities.User{ID: primitive.NewObjectID(), Username: "paul"}
	req := httptest.NewRequest("PUT", "/api/listes/"+liste.ID.Hex(),
		strings.NewReader(`{"nom":"Volés","isPrivate":false}`))
	req.SetPathValue("id", liste.ID.Hex())
	withBearer(t, authenticator, stranger, req)
	w := httptest.NewRecorder()

	authenticator.RequireAuth(http.HandlerFunc(handler.UpdateListe)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Mes favoris", liste.Name)
}

func TestListeHandler_CreateListe_OwnerFromToken(t *testing.T) {
	handler, listeRepo := newListeFixture()
	authenticator := newTestAuthenticator()

	owner := &entities.User{ID: primitive.NewObjectID(), Username: "marie"}
	req := httptest.NewRequest("POST", "/api/listes",
		strings.NewReader(`{"nom":"Brunchs du dimanche","description":"","isPrivate":true}`))
	withBearer(t, authenticator, owner, req)
	w := httptest.NewRecorder()

	authenticator.RequireAuth(http.HandlerFunc(handler.CreateListe)).ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, listeRepo.listes, 1)
	assert.Equal(t, owner.ID, listeRepo.listes[0].OwnerID)
	assert.True(t, listeRepo.listes[0].IsPrivate)
}
