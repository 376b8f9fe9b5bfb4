package dtos

// DashboardStats is the lot census across every property collection.
type DashboardStats struct {
	TotalLots     int                  `json:"total_lots"`
	AvailableLots int                  `json:"available_lots"`
	ReservedLots  int                  `json:"reserved_lots"`
	SoldLots      int                  `json:"sold_lots"`
	Projects      []SubdivisionProgress `json:"projects"`
}

// SubdivisionProgress tracks sell-through per project.
type SubdivisionProgress struct {
	Name  string `json:"name"`
	Sold  int    `json:"sold"`
	Total int    `json:"total"`
}
