package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/placewise/backend/internal/adapters/database"
	"github.com/placewise/backend/internal/application/services"
	"github.com/placewise/backend/internal/domain/entities"
	"github.com/placewise/backend/internal/infrastructure/clients/mongo"
	"github.com/placewise/backend/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	mongoClient, err := mongo.NewClient(&cfg.Mongo)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	ctx := context.Background()
	defer func() {
		if err := mongoClient.Close(ctx); err != nil {
			log.Printf("Error closing MongoDB client: %v", err)
		}
	}()

	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping collections before seeding")
		for _, name := range []string{"places", "reviews", "reports", "listes", "tags", "preferences", "users"} {
			if err := mongoClient.Collection(name).Drop(ctx); err != nil {
				log.Fatalf("Failed to drop collection %s: %v", name, err)
			}
		}
	}

	placeAdapter := database.NewPlaceAdapter(mongoClient)
	reviewAdapter := database.NewReviewAdapter(mongoClient)
	reportAdapter := database.NewReportAdapter(mongoClient)
	listeAdapter, err := database.NewListeAdapter(ctx, mongoClient)
	if err != nil {
		log.Fatalf("Failed to initialize liste adapter: %v", err)
	}
	tagAdapter, err := database.NewTagAdapter(ctx, mongoClient)
	if err != nil {
		log.Fatalf("Failed to initialize tag adapter: %v", err)
	}
	userAdapter, err := database.NewUserAdapter(ctx, mongoClient)
	if err != nil {
		log.Fatalf("Failed to initialize user adapter: %v", err)
	}

	placeService := services.NewPlaceService(placeAdapter, tagAdapter, listeAdapter)
	reviewService := services.NewReviewService(reviewAdapter, placeAdapter, reportAdapter)
	tagService := services.NewTagService(tagAdapter, placeAdapter)
	userService := services.NewUserService(userAdapter, listeAdapter, nil, nil, cfg.Server.BaseURL)

	// 1. Seed Tags
	tags := []string{"wifi", "terrasse", "familial", "romantique", "vue", "brunch", "vegan"}
	for _, label := range tags {
		if err := tagService.Create(ctx, &entities.Tag{Libelle: label}); err != nil {
			log.Printf("Failed to create tag %s: %v", label, err)
		}
	}

	// 2. Seed Places
	places := []entities.Place{
		{
			Name:        "Café de Flore",
			Category:    "Café",
			Description: "Célèbre café littéraire de Saint-Germain-des-Prés.",
			Address:     "172 Boulevard Saint-Germain",
			City:        "Paris",
			Latitude:    48.8540,
			Longitude:   2.3325,
			PhoneNumber: "+33 1 45 48 55 26",
			OpeningHours: map[string]string{
				"lundi":    "07:30-01:30",
				"dimanche": "07:30-01:30",
			},
			Tags: []string{"wifi", "terrasse"},
		},
		{
			Name:        "Le Jules Verne",
			Category:    "Restaurant",
			Description: "Restaurant gastronomique au deuxième étage de la tour Eiffel.",
			Address:     "Avenue Gustave Eiffel",
			City:        "Paris",
			Latitude:    48.8580,
			Longitude:   2.2945,
			PhoneNumber: "+33 1 72 76 16 61",
			Tags:        []string{"romantique", "vue"},
		},
		{
			Name:        "Hôtel du Vieux Port",
			Category:    "Hôtel",
			Description: "Hôtel avec vue sur le Vieux-Port de Marseille.",
			Address:     "3 bis Rue de la Reine Élisabeth",
			City:        "Marseille",
			Latitude:    43.2951,
			Longitude:   5.3743,
			Tags:        []string{"vue", "familial"},
		},
		{
			Name:        "Parc de la Tête d'Or",
			Category:    "Parc",
			Description: "Grand parc urbain avec lac, zoo et jardin botanique.",
			Address:     "Place Général Leclerc",
			City:        "Lyon",
			Latitude:    45.7772,
			Longitude:   4.8558,
			Tags:        []string{"familial"},
		},
		{
			Name:        "Green Garden",
			Category:    "Restaurant",
			Description: "Cuisine végétale de saison près de la place du Capitole.",
			Address:     "12 Rue des Filatiers",
			City:        "Toulouse",
			Latitude:    43.5997,
			Longitude:   1.4442,
			Tags:        []string{"vegan", "brunch", "wifi"},
		},
	}

	for i := range places {
		if err := placeService.Create(ctx, &places[i]); err != nil {
			log.Printf("Failed to create place %s: %v", places[i].Name, err)
		}
	}

	// 3. Seed Users
	admin, err := userService.Register(ctx, "admin", "admin@placewise.local", getEnv("SEED_ADMIN_PASSWORD", "changeme-admin"))
	if err != nil {
		log.Printf("Failed to create admin user: %v", err)
	} else {
		isAdmin := true
		if _, err := userService.Update(ctx, admin.ID, services.UserUpdateInput{IsAdmin: &isAdmin}); err != nil {
			log.Printf("Failed to promote admin user: %v", err)
		}
	}

	demo, err := userService.Register(ctx, "marie", "marie@example.com", getEnv("SEED_USER_PASSWORD", "changeme-user"))
	if err != nil {
		log.Printf("Failed to create demo user: %v", err)
	}

	// 4. Seed Reviews so the rating stats have something to show
	if demo != nil {
		notes := []int{5, 4, 3, 4, 5}
		comments := []string{
			"Un classique, service impeccable.",
			"Vue magnifique, prix en conséquence.",
			"Chambres un peu petites mais bien situées.",
			"Parfait pour une sortie en famille.",
			"Le brunch du dimanche vaut le détour.",
		}
		for i := range places {
			review := &entities.Review{
				PlaceID:   places[i].ID,
				UserID:    demo.ID,
				Note:      notes[i%len(notes)],
				Comment:   comments[i%len(comments)],
				CreatedAt: time.Now().UTC(),
			}
			if err := reviewService.Create(ctx, review); err != nil {
				log.Printf("Failed to create review for %s: %v", places[i].Name, err)
			}
		}
	}

	log.Println("Seeding complete")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
