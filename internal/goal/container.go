package goal

import "github.com/lifetracker/lifetracker-api/internal/store"

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(client store.Client) *Container {
	repo := NewRepository(client)
	service := NewService(repo)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
