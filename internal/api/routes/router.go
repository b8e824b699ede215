package routes

import (
	"net/http"

	"github.com/placewise/backend/internal/api/handlers"
	"github.com/placewise/backend/internal/api/middleware"
	"github.com/placewise/backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	authHandler        *handlers.AuthHandler
	userHandler        *handlers.UserHandler
	placeHandler       *handlers.PlaceHandler
	reviewHandler      *handlers.ReviewHandler
	reportHandler      *handlers.ReportHandler
	listeHandler       *handlers.ListeHandler
	tagHandler         *handlers.TagHandler
	preferencesHandler *handlers.PreferencesHandler
	statsHandler       *handlers.StatsHandler

	authenticator   *middleware.Authenticator
	cacheMiddleware *middleware.CacheMiddleware
	metrics         *observability.Metrics

	uploadsDir string
}

// NewRouter creates a new router
func NewRouter(
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	placeHandler *handlers.PlaceHandler,
	reviewHandler *handlers.ReviewHandler,
	reportHandler *handlers.ReportHandler,
	listeHandler *handlers.ListeHandler,
	tagHandler *handlers.TagHandler,
	preferencesHandler *handlers.PreferencesHandler,
	statsHandler *handlers.StatsHandler,
	authenticator *middleware.Authenticator,
	cacheMiddleware *middleware.CacheMiddleware,
	metrics *observability.Metrics,
	uploadsDir string,
) *Router {
	return &Router{
		mux:                http.NewServeMux(),
		authHandler:        authHandler,
		userHandler:        userHandler,
		placeHandler:       placeHandler,
		reviewHandler:      reviewHandler,
		reportHandler:      reportHandler,
		listeHandler:       listeHandler,
		tagHandler:         tagHandler,
		preferencesHandler: preferencesHandler,
		statsHandler:       statsHandler,
		authenticator:      authenticator,
		cacheMiddleware:    cacheMiddleware,
		metrics:            metrics,
		uploadsDir:         uploadsDir,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	auth := func(h http.HandlerFunc) http.Handler { return r.authenticator.RequireAuth(h) }
	admin := func(h http.HandlerFunc) http.Handler { return r.authenticator.RequireAdmin(h) }

	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Auth endpoints
	r.mux.HandleFunc("POST /api/auth/register", r.authHandler.Register)
	r.mux.HandleFunc("POST /api/auth/login", r.authHandler.Login)
	r.mux.HandleFunc("POST /api/auth/forgot-password", r.authHandler.ForgotPassword)
	r.mux.HandleFunc("POST /api/auth/reset-password", r.authHandler.ResetPassword)

	// Place endpoints; the catalog is public, writes are admin-only
	r.mux.HandleFunc("GET /api/places", r.placeHandler.ListPlaces)
	r.mux.HandleFunc("GET /api/places/search", r.placeHandler.SearchPlaces)
	r.mux.Handle("GET /api/places/recommandations", auth(r.placeHandler.RecommendPlaces))
	r.mux.HandleFunc("GET /api/places/{id}", r.placeHandler.GetPlace)
	r.mux.Handle("POST /api/places", admin(r.placeHandler.CreatePlace))
	r.mux.Handle("PUT /api/places/{id}", admin(r.placeHandler.UpdatePlace))
	r.mux.Handle("DELETE /api/places/{id}", admin(r.placeHandler.DeletePlace))

	// Review endpoints
	r.mux.HandleFunc("GET /api/places/{id}/reviews", r.reviewHandler.GetPlaceReviews)
	r.mux.Handle("POST /api/places/{id}/reviews", auth(r.reviewHandler.CreateReview))
	r.mux.Handle("GET /api/reviews", admin(r.reviewHandler.ListReviews))
	r.mux.HandleFunc("GET /api/reviews/{id}", r.reviewHandler.GetReview)
	r.mux.Handle("PUT /api/reviews/{id}", auth(r.reviewHandler.UpdateReview))
	r.mux.Handle("DELETE /api/reviews/{id}", auth(r.reviewHandler.DeleteReview))

	// Report endpoints; reading reports is moderation work
	r.mux.Handle("POST /api/reviews/{id}/reports", auth(r.reportHandler.CreateReport))
	r.mux.Handle("GET /api/reviews/{id}/reports", admin(r.reportHandler.GetReviewReports))
	r.mux.Handle("GET /api/reports", admin(r.reportHandler.ListReports))
	r.mux.Handle("GET /api/reports/{id}", admin(r.reportHandler.GetReport))
	r.mux.Handle("GET /api/users/{id}/reports", admin(r.reportHandler.GetReportsAgainstUser))

	// List endpoints
	r.mux.HandleFunc("GET /api/listes", r.listeHandler.ListListes)
	r.mux.Handle("GET /api/listes/mine", auth(r.listeHandler.GetMyListes))
	r.mux.HandleFunc("GET /api/listes/{id}", r.listeHandler.GetListe)
	r.mux.Handle("POST /api/listes", auth(r.listeHandler.CreateListe))
	r.mux.Handle("PUT /api/listes/{id}", auth(r.listeHandler.UpdateListe))
	r.mux.Handle("DELETE /api/listes/{id}", auth(r.listeHandler.DeleteListe))
	r.mux.HandleFunc("GET /api/listes/{id}/places", r.listeHandler.GetListePlaces)
	r.mux.Handle("POST /api/listes/{id}/places/{placeId}", auth(r.listeHandler.AddPlaceToListe))
	r.mux.Handle("DELETE /api/listes/{id}/places/{placeId}", auth(r.listeHandler.RemovePlaceFromListe))
	r.mux.Handle("POST /api/listes/{id}/public", auth(r.listeHandler.MakeListePublic))
	r.mux.Handle("POST /api/listes/{id}/private", auth(r.listeHandler.MakeListePrivate))

	// Tag endpoints; the vocabulary is public, writes are admin-only
	r.mux.HandleFunc("GET /api/tags", r.tagHandler.ListTags)
	r.mux.HandleFunc("GET /api/tags/{id}", r.tagHandler.GetTag)
	r.mux.Handle("POST /api/tags", admin(r.tagHandler.CreateTag))
	r.mux.Handle("PUT /api/tags/{id}", admin(r.tagHandler.UpdateTag))
	r.mux.Handle("DELETE /api/tags/{id}", admin(r.tagHandler.DeleteTag))

	// Preferences endpoints (always scoped to the caller)
	r.mux.Handle("GET /api/preferences", auth(r.preferencesHandler.GetPreferences))
	r.mux.Handle("PUT /api/preferences", auth(r.preferencesHandler.PutPreferences))

	// User endpoints
	r.mux.Handle("GET /api/users", admin(r.userHandler.ListUsers))
	r.mux.Handle("GET /api/users/banned", admin(r.userHandler.ListBannedUsers))
	r.mux.Handle("GET /api/users/me", auth(r.userHandler.GetMe))
	r.mux.HandleFunc("GET /api/users/{id}", r.userHandler.GetUser)
	r.mux.Handle("GET /api/users/{id}/reviews", auth(r.reviewHandler.GetUserReviews))
	r.mux.Handle("PATCH /api/users/{id}", auth(r.userHandler.UpdateUser))
	r.mux.Handle("POST /api/users/{id}/photo", auth(r.userHandler.UploadPhoto))
	r.mux.Handle("POST /api/users/{id}/ban", admin(r.userHandler.BanUser))
	r.mux.Handle("DELETE /api/users/{id}/ban", admin(r.userHandler.UnbanUser))
	r.mux.Handle("DELETE /api/users/{id}", auth(r.userHandler.DeleteUser))

	// Statistics endpoints (recomputed on demand, admin dashboards)
	r.mux.Handle("GET /api/stats/users", admin(r.statsHandler.GetUserStats))
	r.mux.Handle("GET /api/stats/places", admin(r.statsHandler.GetPlaceStats))
	r.mux.Handle("GET /api/stats/reviews", admin(r.statsHandler.GetReviewStats))
	r.mux.Handle("GET /api/stats/lists", admin(r.statsHandler.GetListeStats))

	// Uploaded profile photos
	if r.uploadsDir != "" {
		r.mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(r.uploadsDir))))
	}

	// Apply middleware in reverse order (last middleware wraps first)
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)

	// CORS wraps everything so headers are set even on cache HITs
	handler = middleware.CORSMiddleware(handler)

	return handler
}
