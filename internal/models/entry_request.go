package models

// EntryRequest represents the request body for creating or updating an entry.
// Fields carry no binding rules on purpose: business validation (order and
// messages) belongs to the entry service, not to request binding.
type EntryRequest struct {
	Description string  `json:"description"`
	Month       int     `json:"month"`
	Year        int     `json:"year"`
	Value       float64 `json:"value"`
	Type        string  `json:"type"`
	Status      string  `json:"status"`
	UserID      int64   `json:"user"`
}

// UpdateStatusRequest represents the request body for updating an entry's status
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
