package models

type Pagination struct {
	CurrentPage   int   `json:"currentPage"`
	TotalPages    int   `json:"totalPages"`
	TotalMessages int64 `json:"totalMessages"`
	Limit         int   `json:"limit"`
}

type MessageListResponse struct {
	Success    bool       `json:"success"`
	Messages   []Message  `json:"messages"`
	Pagination Pagination `json:"pagination"`
}
