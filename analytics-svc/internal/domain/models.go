package domain

type RestrictionHits struct {
	Restriction string `json:"restriction"`
	Hits        int    `json:"hits"`
}

type ScanStats struct {
	RestaurantID  int     `json:"restaurant_id"`
	Scans         int     `json:"scans"`
	TotalDishes   int     `json:"total_dishes"`
	FlaggedDishes int     `json:"flagged_dishes"`
	FlaggedRatio  float64 `json:"flagged_ratio"`
}
