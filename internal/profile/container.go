package profile

import (
	"github.com/lifetracker/lifetracker-api/internal/blob"
	"github.com/lifetracker/lifetracker-api/internal/store"
)

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(client store.Client, uploader blob.Uploader) *Container {
	repo := NewRepository(client)
	service := NewService(repo, uploader)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
