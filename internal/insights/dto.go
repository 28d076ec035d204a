package insights

import "time"

// TypeBreakdown aggregates one activity type within a summary window.
type TypeBreakdown struct {
	Count       int     `json:"count"`
	Duration    int     `json:"duration"`
	Calories    int     `json:"calories"`
	AvgDuration float64 `json:"avgDuration"`
	AvgCalories float64 `json:"avgCalories"`
}

// FitnessSummary reduces a user's activities over a date range.
type FitnessSummary struct {
	From              time.Time                `json:"from"`
	To                time.Time                `json:"to"`
	TotalActivities   int                      `json:"totalActivities"`
	TotalDuration     int                      `json:"totalDuration"`
	TotalCalories     int                      `json:"totalCalories"`
	ActiveDays        int                      `json:"activeDays"`
	AvgDurationPerDay float64                  `json:"avgDurationPerDay"`
	AvgCaloriesPerDay float64                  `json:"avgCaloriesPerDay"`
	ByType            map[string]TypeBreakdown `json:"byType"`
}

// MetricChange compares one metric across two adjacent windows.
type MetricChange struct {
	Previous  float64 `json:"previous"`
	Current   float64 `json:"current"`
	ChangePct float64 `json:"changePct"`
}

// WeeklyTrend compares the current 7-day window against the one before it.
type WeeklyTrend struct {
	CurrentFrom  time.Time    `json:"currentFrom"`
	PreviousFrom time.Time    `json:"previousFrom"`
	Activities   MetricChange `json:"activities"`
	Duration     MetricChange `json:"duration"`
	Calories     MetricChange `json:"calories"`
}

// DaySentiment is one point of the per-day sentiment trend.
type DaySentiment struct {
	Day      string  `json:"day"`
	AvgScore float64 `json:"avgScore"`
	Entries  int     `json:"entries"`
}

type TopicCount struct {
	Topic string `json:"topic"`
	Count int    `json:"count"`
}

type MoodCount struct {
	Mood  string `json:"mood"`
	Count int    `json:"count"`
}

// JournalInsights reduces journal entries over a date range. When no
// entries exist the shape is returned zeroed with empty lists.
type JournalInsights struct {
	From             time.Time      `json:"from"`
	To               time.Time      `json:"to"`
	EntryCount       int            `json:"entryCount"`
	AverageSentiment float64        `json:"averageSentiment"`
	SentimentByDay   []DaySentiment `json:"sentimentByDay"`
	TopTopics        []TopicCount   `json:"topTopics"`
	TopMoods         []MoodCount    `json:"topMoods"`
}
