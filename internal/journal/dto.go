package journal

import (
	"time"

	"github.com/lifetracker/lifetracker-api/internal/search"
)

type CreateJournalDTO struct {
	Content       string   `json:"content"`
	ContentFormat string   `json:"contentFormat,omitempty"`
	Date          string   `json:"date"`
	Mood          string   `json:"mood,omitempty"`
	Tags          []string `json:"tags,omitempty"`
}

type UpdateJournalDTO struct {
	Content       *string   `json:"content"`
	ContentFormat *string   `json:"contentFormat"`
	Date          *string   `json:"date"`
	Mood          *string   `json:"mood"`
	Tags          *[]string `json:"tags"`
}

// ListFilter narrows a user's journal listing.
type ListFilter struct {
	Mood string
	From *time.Time
	To   *time.Time
}

type ListJournalsResponse struct {
	Items  []JournalEntry `json:"items"`
	Total  int64          `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

type SearchResponse struct {
	Items []search.Document `json:"items"`
	Total int               `json:"total"`
}

type RenderedEntry struct {
	ID   string `json:"id"`
	HTML string `json:"html"`
}
