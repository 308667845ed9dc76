package main

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"freshtrack-backend/infrastructure/config"
	"freshtrack-backend/infrastructure/di"
)

// container holds the dependency injection container
var container *di.Container

// response mirrors the Lambda proxy result shape so the scheduled run leaves
// an inspectable record in the invocation logs.
type response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// init runs during cold start
func init() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	container, err = di.InitializeContainer(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
}

// Handler runs one notifier pass per scheduled event. A failed store scan is
// reported in the response body rather than raised, so the schedule keeps
// firing without retry storms.
func Handler(ctx context.Context, event events.CloudWatchEvent) (response, error) {
	summary, err := container.ExpiryNotifier.Run(ctx)
	if err != nil {
		return response{
			StatusCode: 500,
			Body:       fmt.Sprintf("Error processing items: %v", err),
		}, nil
	}

	return response{
		StatusCode: 200,
		Body:       fmt.Sprintf("Successfully processed %d expiring items.", summary.ItemsProcessed),
	}, nil
}

func main() {
	lambda.Start(Handler)
}
