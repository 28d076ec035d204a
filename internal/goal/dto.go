package goal

type CreateGoalDTO struct {
	Title      string `json:"title"`
	TargetDate string `json:"targetDate"`
	Notes      string `json:"notes,omitempty"`
	Progress   *int   `json:"progress"`
}

type UpdateGoalDTO struct {
	Title      *string `json:"title"`
	TargetDate *string `json:"targetDate"`
	Notes      *string `json:"notes"`
	Achieved   *bool   `json:"achieved"`
	Progress   *int    `json:"progress"`
}

// ListFilter narrows a user's goal listing by status.
type ListFilter struct {
	Status string
}

type ListGoalsResponse struct {
	Items  []FitnessGoal `json:"items"`
	Total  int64         `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}
