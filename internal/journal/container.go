package journal

import (
	"github.com/lifetracker/lifetracker-api/internal/blob"
	"github.com/lifetracker/lifetracker-api/internal/search"
	"github.com/lifetracker/lifetracker-api/internal/store"
	"github.com/lifetracker/lifetracker-api/internal/textanalytics"
)

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(client store.Client, analyzer textanalytics.Analyzer, searcher search.Service, uploader blob.Uploader) *Container {
	repo := NewRepository(client)
	service := NewService(repo, analyzer, searcher, uploader)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
