package activity

import "time"

// Activity is a logged fitness activity, partitioned by its owner.
type Activity struct {
	ID        string    `bson:"_id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	Type      string    `bson:"type" json:"type"`
	Duration  int       `bson:"duration" json:"duration"`
	Calories  int       `bson:"calories" json:"calories"`
	Date      time.Time `bson:"date" json:"date"`
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Collection is the container name for activities.
const Collection = "activities"

// PartitionField is the ownership/partition attribute.
const PartitionField = "userId"
