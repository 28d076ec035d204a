package insights

import (
	"github.com/lifetracker/lifetracker-api/internal/activity"
	"github.com/lifetracker/lifetracker-api/internal/journal"
	"github.com/lifetracker/lifetracker-api/internal/textanalytics"
)

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(activities activity.Service, journals journal.Service, analyzer textanalytics.Analyzer) *Container {
	service := NewService(activities, journals, analyzer)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
