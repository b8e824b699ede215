package entities

// UserStats summarizes the user base at the time of computation.
type UserStats struct {
	TotalUsers        int `json:"totalUsers"`
	NewUsersThisWeek  int `json:"newUsersThisWeek"`
	NewUsersThisMonth int `json:"newUsersThisMonth"`
	BannedUsers       int `json:"bannedUsers"`
}

// PlaceStats summarizes the place catalog. PlacesByCategory groups on a
// diacritic-insensitive key but displays the first-seen original label.
type PlaceStats struct {
	TotalPlaces      int            `json:"totalPlaces"`
	PlacesByCategory map[string]int `json:"placesByCategory"`
	TopRatedPlaces   []*Place       `json:"topRatedPlaces"`
	WorstRatedPlaces []*Place       `json:"worstRatedPlaces"`
}

// ReviewStats summarizes the review corpus.
type ReviewStats struct {
	TotalReviews         int     `json:"totalReviews"`
	AverageRating        float64 `json:"averageRating"`
	RecentReviewsCount   int     `json:"recentReviewsCount"`
	ReportedReviewsCount int     `json:"reportedReviewsCount"`
}

// ListeStats summarizes curated lists. Percentages are formatted with at
// most two decimals and a "%" suffix; both read "0%" when no list exists.
type ListeStats struct {
	TotalListes          int     `json:"TotalListes"`
	PourcentagePubliques string  `json:"PourcentagePubliques"`
	PourcentagePrivees   string  `json:"PourcentagePrivees"`
	MoyenneLieuxParListe float64 `json:"MoyenneLieuxParListe"`
}
