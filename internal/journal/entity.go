package journal

import "time"

// ContentFormat values accepted for journal entries.
const (
	FormatPlain    = "plain"
	FormatMarkdown = "markdown"
)

// Attachment records an uploaded file linked to an entry. Only the URL
// returned by the blob collaborator is persisted here.
type Attachment struct {
	ID          string `bson:"id" json:"id"`
	FileName    string `bson:"fileName" json:"fileName"`
	ContentType string `bson:"contentType" json:"contentType"`
	Size        int64  `bson:"size" json:"size"`
	URL         string `bson:"url" json:"url"`
}

// JournalEntry is a dated journal record with computed sentiment.
// SentimentScore is always within [0, 1]; Attachments may be empty but
// never nil.
type JournalEntry struct {
	ID             string       `bson:"_id" json:"id"`
	UserID         string       `bson:"userId" json:"userId"`
	Content        string       `bson:"content" json:"content"`
	ContentFormat  string       `bson:"contentFormat" json:"contentFormat"`
	Date           time.Time    `bson:"date" json:"date"`
	Mood           string       `bson:"mood,omitempty" json:"mood,omitempty"`
	SentimentScore float64      `bson:"sentimentScore" json:"sentimentScore"`
	Attachments    []Attachment `bson:"attachments" json:"attachments"`
	Tags           []string     `bson:"tags" json:"tags"`
	CreatedAt      time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time    `bson:"updatedAt" json:"updatedAt"`
}

const Collection = "journals"

const PartitionField = "userId"
