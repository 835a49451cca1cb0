package models

import "time"

type FilterPreset struct {
	ID        string    `json:"id"`
	Context   string    `json:"context"`
	Label     string    `json:"label"`
	Category  string    `json:"category"`
	Name      string    `json:"name"`
	DateFrom  *string   `json:"date_from"`
	DateTo    *string   `json:"date_to"`
	Pinned    bool      `json:"pinned"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
