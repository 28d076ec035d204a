package profile

import "time"

// Preferences holds per-user display settings.
type Preferences struct {
	Theme         string `bson:"theme" json:"theme"`
	Notifications bool   `bson:"notifications" json:"notifications"`
}

// Profile is the one-per-user record. Unlike the other entities it is
// partitioned by its own id, which equals the owning user id.
type Profile struct {
	ID          string      `bson:"_id" json:"id"`
	Name        string      `bson:"name" json:"name"`
	Email       string      `bson:"email" json:"email"`
	AvatarURL   string      `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	Bio         string      `bson:"bio,omitempty" json:"bio,omitempty"`
	Preferences Preferences `bson:"preferences" json:"preferences"`
	CreatedAt   time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time   `bson:"updatedAt" json:"updatedAt"`
}

const Collection = "profiles"

const PartitionField = "_id"
