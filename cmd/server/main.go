package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"

	"github.com/lifetracker/lifetracker-api/internal/container"
	"github.com/lifetracker/lifetracker-api/internal/router"
)

func main() {
	ctx := context.Background()

	c, err := container.New(ctx)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	r := router.New(router.RouterConfig{
		Config:          c.Config,
		ActivityHandler: c.ActivityContainer.Handler,
		GoalHandler:     c.GoalContainer.Handler,
		JournalHandler:  c.JournalContainer.Handler,
		ProfileHandler:  c.ProfileContainer.Handler,
		InsightsHandler: c.InsightsContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		adapter := chiadapter.New(r)
		lambda.Start(adapter.ProxyWithContext)
		return
	}

	log.Printf("listening on %s", c.Config.HTTPAddress)
	if err := http.ListenAndServe(c.Config.HTTPAddress, r); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
