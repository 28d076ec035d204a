package container

import (
	"context"
	"fmt"

	"github.com/lifetracker/lifetracker-api/internal/activity"
	"github.com/lifetracker/lifetracker-api/internal/blob"
	"github.com/lifetracker/lifetracker-api/internal/config"
	"github.com/lifetracker/lifetracker-api/internal/goal"
	"github.com/lifetracker/lifetracker-api/internal/insights"
	"github.com/lifetracker/lifetracker-api/internal/journal"
	"github.com/lifetracker/lifetracker-api/internal/profile"
	"github.com/lifetracker/lifetracker-api/internal/search"
	"github.com/lifetracker/lifetracker-api/internal/store"
	"github.com/lifetracker/lifetracker-api/internal/textanalytics"
)

// Container wires the store client and every resource service once at
// process start.
type Container struct {
	Config config.Config
	Store  store.Client

	ActivityContainer *activity.Container
	GoalContainer     *goal.Container
	JournalContainer  *journal.Container
	ProfileContainer  *profile.Container
	InsightsContainer *insights.Container
}

func New(ctx context.Context) (*Container, error) {
	config.Init()
	cfg := config.Load()

	client, err := store.Connect(ctx, cfg.MongoURI, cfg.MongoDB, !cfg.IsProduction())
	if err != nil {
		return nil, fmt.Errorf("connect document store: %w", err)
	}
	config.WithContext(ctx).WithField("backend", client.Backend()).Info("Document store ready")

	analyzer := textanalytics.NewLocalAnalyzer()
	searcher := search.NewInMemoryService()
	uploader := blob.NewLocalUploader("")

	activityContainer := activity.NewContainer(client)
	goalContainer := goal.NewContainer(client)
	journalContainer := journal.NewContainer(client, analyzer, searcher, uploader)
	profileContainer := profile.NewContainer(client, uploader)
	insightsContainer := insights.NewContainer(
		activityContainer.Service,
		journalContainer.Service,
		analyzer,
	)

	return &Container{
		Config:            cfg,
		Store:             client,
		ActivityContainer: activityContainer,
		GoalContainer:     goalContainer,
		JournalContainer:  journalContainer,
		ProfileContainer:  profileContainer,
		InsightsContainer: insightsContainer,
	}, nil
}
