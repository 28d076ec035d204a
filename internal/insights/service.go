package insights

import (
	"context"
	"sort"
	"time"

	"github.com/lifetracker/lifetracker-api/internal/activity"
	"github.com/lifetracker/lifetracker-api/internal/config"
	"github.com/lifetracker/lifetracker-api/internal/journal"
	"github.com/lifetracker/lifetracker-api/internal/pagination"
	"github.com/lifetracker/lifetracker-api/internal/textanalytics"
	util "github.com/lifetracker/lifetracker-api/internal/utils"
)

// fetchLimit approximates "all records in range" for in-memory reduction.
const fetchLimit = 1000

type Service interface {
	FitnessSummary(ctx context.Context, userID string, from, to time.Time) (*FitnessSummary, error)
	WeeklyTrend(ctx context.Context, userID string) (*WeeklyTrend, error)
	JournalInsights(ctx context.Context, userID string, from, to time.Time) (*JournalInsights, error)
}

// service is stateless and read-only; it composes the resource services
// and reduces their listings in memory.
type service struct {
	activities activity.Service
	journals   journal.Service
	analyzer   textanalytics.Analyzer
}

func NewService(activities activity.Service, journals journal.Service, analyzer textanalytics.Analyzer) Service {
	return &service{
		activities: activities,
		journals:   journals,
		analyzer:   analyzer,
	}
}

func (s *service) FitnessSummary(ctx context.Context, userID string, from, to time.Time) (*FitnessSummary, error) {
	items, err := s.fetchActivities(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	summary := &FitnessSummary{
		From:   from,
		To:     to,
		ByType: make(map[string]TypeBreakdown),
	}

	days := make(map[string]struct{})
	for _, a := range items {
		summary.TotalActivities++
		summary.TotalDuration += a.Duration
		summary.TotalCalories += a.Calories
		days[util.DayKey(a.Date)] = struct{}{}

		breakdown := summary.ByType[a.Type]
		breakdown.Count++
		breakdown.Duration += a.Duration
		breakdown.Calories += a.Calories
		summary.ByType[a.Type] = breakdown
	}
	summary.ActiveDays = len(days)

	// Averages are zero when there is nothing to average over.
	if summary.ActiveDays > 0 {
		summary.AvgDurationPerDay = float64(summary.TotalDuration) / float64(summary.ActiveDays)
		summary.AvgCaloriesPerDay = float64(summary.TotalCalories) / float64(summary.ActiveDays)
	}
	for t, breakdown := range summary.ByType {
		if breakdown.Count > 0 {
			breakdown.AvgDuration = float64(breakdown.Duration) / float64(breakdown.Count)
			breakdown.AvgCalories = float64(breakdown.Calories) / float64(breakdown.Count)
		}
		summary.ByType[t] = breakdown
	}
	return summary, nil
}

func (s *service) WeeklyTrend(ctx context.Context, userID string) (*WeeklyTrend, error) {
	now := time.Now().UTC()
	currentFrom := now.AddDate(0, 0, -7)
	previousFrom := now.AddDate(0, 0, -14)

	current, err := s.fetchActivities(ctx, userID, currentFrom, now)
	if err != nil {
		return nil, err
	}
	previous, err := s.fetchActivities(ctx, userID, previousFrom, currentFrom)
	if err != nil {
		return nil, err
	}

	curCount, curDuration, curCalories := reduceTotals(current)
	prevCount, prevDuration, prevCalories := reduceTotals(previous)

	return &WeeklyTrend{
		CurrentFrom:  currentFrom,
		PreviousFrom: previousFrom,
		Activities:   change(prevCount, curCount),
		Duration:     change(prevDuration, curDuration),
		Calories:     change(prevCalories, curCalories),
	}, nil
}

func (s *service) JournalInsights(ctx context.Context, userID string, from, to time.Time) (*JournalInsights, error) {
	log := config.WithContext(ctx)

	page, err := s.journals.List(ctx, userID, journal.ListFilter{From: &from, To: &to},
		pagination.Params{Limit: fetchLimit})
	if err != nil {
		return nil, err
	}

	result := &JournalInsights{
		From:           from,
		To:             to,
		SentimentByDay: []DaySentiment{},
		TopTopics:      []TopicCount{},
		TopMoods:       []MoodCount{},
	}
	if len(page.Items) == 0 {
		return result, nil
	}

	var sentimentSum float64
	type dayAgg struct {
		sum     float64
		entries int
	}
	byDay := make(map[string]dayAgg)
	topics := make(map[string]int)
	moods := make(map[string]int)

	for _, e := range page.Items {
		result.EntryCount++
		sentimentSum += e.SentimentScore

		day := util.DayKey(e.Date)
		agg := byDay[day]
		agg.sum += e.SentimentScore
		agg.entries++
		byDay[day] = agg

		if e.Mood != "" {
			moods[e.Mood]++
		}

		phrases, err := s.analyzer.ExtractKeyPhrases(ctx, e.Content)
		if err != nil {
			log.WithError(err).Warn("Key phrase extraction failed for entry")
			continue
		}
		for _, phrase := range phrases {
			topics[phrase]++
		}
	}

	result.AverageSentiment = sentimentSum / float64(result.EntryCount)

	for day, agg := range byDay {
		result.SentimentByDay = append(result.SentimentByDay, DaySentiment{
			Day:      day,
			AvgScore: agg.sum / float64(agg.entries),
			Entries:  agg.entries,
		})
	}
	sort.Slice(result.SentimentByDay, func(i, j int) bool {
		return result.SentimentByDay[i].Day < result.SentimentByDay[j].Day
	})

	result.TopTopics = topCounts(topics, 10, func(k string, v int) TopicCount { return TopicCount{Topic: k, Count: v} })
	result.TopMoods = topCounts(moods, 5, func(k string, v int) MoodCount { return MoodCount{Mood: k, Count: v} })
	return result, nil
}

func (s *service) fetchActivities(ctx context.Context, userID string, from, to time.Time) ([]activity.Activity, error) {
	page, err := s.activities.List(ctx, userID, activity.ListFilter{From: &from, To: &to},
		pagination.Params{Limit: fetchLimit})
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

func reduceTotals(items []activity.Activity) (count, duration, calories float64) {
	for _, a := range items {
		count++
		duration += float64(a.Duration)
		calories += float64(a.Calories)
	}
	return count, duration, calories
}

// change computes the percentage delta between windows. A zero baseline
// reports 100 when the new value is positive, else 0.
func change(previous, current float64) MetricChange {
	c := MetricChange{Previous: previous, Current: current}
	switch {
	case previous == 0 && current > 0:
		c.ChangePct = 100
	case previous == 0:
		c.ChangePct = 0
	default:
		c.ChangePct = (current - previous) / previous * 100
	}
	return c
}

func topCounts[T any](counts map[string]int, limit int, build func(string, int) T) []T {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) > limit {
		keys = keys[:limit]
	}
	out := make([]T, 0, len(keys))
	for _, k := range keys {
		out = append(out, build(k, counts[k]))
	}
	return out
}
