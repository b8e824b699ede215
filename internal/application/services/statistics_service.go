package services

import (
	"context"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/placewise/backend/internal/domain/entities"
	"github.com/placewise/backend/internal/domain/repositories"
	"github.com/placewise/backend/pkg/utils"
)

const (
	topRatedCount   = 5
	worstRatedCount = 5
)

// StatisticsService computes the read-only summary views. Every call
// recomputes from scratch; nothing here is cached.
type StatisticsService struct {
	userRepo   repositories.UserRepository
	placeRepo  repositories.PlaceRepository
	reviewRepo repositories.ReviewRepository
	reportRepo repositories.ReportRepository
	listeRepo  repositories.ListeRepository
}

// NewStatisticsService creates a new statistics service
func NewStatisticsService(
	userRepo repositories.UserRepository,
	placeRepo repositories.PlaceRepository,
	reviewRepo repositories.ReviewRepository,
	reportRepo repositories.ReportRepository,
	listeRepo repositories.ListeRepository,
) *StatisticsService {
	return &StatisticsService{
		userRepo:   userRepo,
		placeRepo:  placeRepo,
		reviewRepo: reviewRepo,
		reportRepo: reportRepo,
		listeRepo:  listeRepo,
	}
}

// UserStats summarizes the user base
func (s *StatisticsService) UserStats(ctx context.Context) (*entities.UserStats, error) {
	now := time.Now().UTC()

	total, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	thisWeek, err := s.userRepo.CountSince(ctx, now.AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}
	thisMonth, err := s.userRepo.CountSince(ctx, now.AddDate(0, 0, -30))
	if err != nil {
		return nil, err
	}
	banned, err := s.userRepo.CountBanned(ctx, now)
	if err != nil {
		return nil, err
	}

	return &entities.UserStats{
		TotalUsers:        int(total),
		NewUsersThisWeek:  int(thisWeek),
		NewUsersThisMonth: int(thisMonth),
		BannedUsers:       int(banned),
	}, nil
}

// PlaceStats summarizes the place catalog. Categories are grouped on a
// normalized key (diacritics stripped, lower-cased, trimmed) but the key
// shown is the label spelled the way it was first seen.
func (s *StatisticsService) PlaceStats(ctx context.Context) (*entities.PlaceStats, error) {
	places, err := s.placeRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	byCategory := map[string]int{}
	displayLabel := map[string]string{}
	for _, place := range places {
		key := utils.NormalizeCategory(place.Category)
		if _, seen := displayLabel[key]; !seen {
			displayLabel[key] = place.Category
		}
		byCategory[displayLabel[key]]++
	}

	byRatingDesc := make([]*entities.Place, len(places))
	copy(byRatingDesc, places)
	sort.SliceStable(byRatingDesc, func(i, j int) bool {
		return byRatingDesc[i].AverageRating > byRatingDesc[j].AverageRating
	})

	// Only places somebody actually reviewed can be "worst rated"; an
	// unreviewed place sits at 0 without having earned it.
	reviewedAsc := []*entities.Place{}
	for _, place := range places {
		if place.ReviewCount > 0 {
			reviewedAsc = append(reviewedAsc, place)
		}
	}
	sort.SliceStable(reviewedAsc, func(i, j int) bool {
		return reviewedAsc[i].AverageRating < reviewedAsc[j].AverageRating
	})

	return &entities.PlaceStats{
		TotalPlaces:      len(places),
		PlacesByCategory: byCategory,
		TopRatedPlaces:   head(byRatingDesc, topRatedCount),
		WorstRatedPlaces: head(reviewedAsc, worstRatedCount),
	}, nil
}

// ReviewStats summarizes the review corpus
func (s *StatisticsService) ReviewStats(ctx context.Context) (*entities.ReviewStats, error) {
	reviews, err := s.reviewRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	average := 0.0
	if len(reviews) > 0 {
		sum := 0
		for _, review := range reviews {
			sum += review.Note
		}
		average = float64(sum) / float64(len(reviews))
	}

	recent, err := s.reviewRepo.CountSince(ctx, time.Now().UTC().AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}
	reported, err := s.reportRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &entities.ReviewStats{
		TotalReviews:         len(reviews),
		AverageRating:        average,
		RecentReviewsCount:   int(recent),
		ReportedReviewsCount: int(reported),
	}, nil
}

// ListeStats summarizes curated lists. With zero lists both percentages read
// "0%" and the average is 0.
func (s *StatisticsService) ListeStats(ctx context.Context) (*entities.ListeStats, error) {
	listes, err := s.listeRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	total := len(listes)
	if total == 0 {
		return &entities.ListeStats{
			TotalListes:          0,
			PourcentagePubliques: "0%",
			PourcentagePrivees:   "0%",
			MoyenneLieuxParListe: 0,
		}, nil
	}

	private := 0
	placeRefs := 0
	for _, liste := range listes {
		if liste.IsPrivate {
			private++
		}
		placeRefs += len(liste.PlaceIDs)
	}
	public := total - private

	return &entities.ListeStats{
		TotalListes:          total,
		PourcentagePubliques: formatPercent(float64(public) * 100 / float64(total)),
		PourcentagePrivees:   formatPercent(float64(private) * 100 / float64(total)),
		MoyenneLieuxParListe: round2(float64(placeRefs) / float64(total)),
	}, nil
}

// formatPercent renders a percentage with at most two decimals, trailing
// zeros trimmed: 50 -> "50%", 33.333 -> "33.33%".
func formatPercent(value float64) string {
	return strconv.FormatFloat(round2(value), 'f', -1, 64) + "%"
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}

func head(places []*entities.Place, n int) []*entities.Place {
	if len(places) > n {
		return places[:n]
	}
	return places
}
