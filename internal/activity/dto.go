package activity

import "time"

type CreateActivityDTO struct {
	Type     string `json:"type"`
	Duration int    `json:"duration"`
	Calories int    `json:"calories"`
	Date     string `json:"date"`
	Notes    string `json:"notes,omitempty"`
}

type UpdateActivityDTO struct {
	Type     *string `json:"type"`
	Duration *int    `json:"duration"`
	Calories *int    `json:"calories"`
	Date     *string `json:"date"`
	Notes    *string `json:"notes"`
}

// ListFilter narrows a user's activity listing.
type ListFilter struct {
	Type string
	From *time.Time
	To   *time.Time
}

// ListActivitiesResponse is the standard list envelope.
type ListActivitiesResponse struct {
	Items  []Activity `json:"items"`
	Total  int64      `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}
