package goal

import "time"

// FitnessGoal is a user-owned goal with progress tracking.
type FitnessGoal struct {
	ID         string    `bson:"_id" json:"id"`
	UserID     string    `bson:"userId" json:"userId"`
	Title      string    `bson:"title" json:"title"`
	TargetDate time.Time `bson:"targetDate" json:"targetDate"`
	Notes      string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Achieved   bool      `bson:"achieved" json:"achieved"`
	Progress   int       `bson:"progress" json:"progress"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

const Collection = "goals"

const PartitionField = "userId"

// Status filter values accepted by the list endpoint.
const (
	StatusAchieved = "achieved"
	StatusActive   = "active"
)
