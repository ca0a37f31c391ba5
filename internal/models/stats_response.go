package models

type Stats struct {
	Total    int64 `json:"total"`
	Unread   int64 `json:"unread"`
	Today    int64 `json:"today"`
	ThisWeek int64 `json:"thisWeek"`
}

type StatsResponse struct {
	Success bool  `json:"success"`
	Stats   Stats `json:"stats"`
}
