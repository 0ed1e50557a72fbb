// Command posts-handler serves the /posts routes of the records API.
//
// Configuration comes from the environment: TABLE_NAME (required) and
// ALLOWED_ORIGIN (optional, defaults to "*").
package main

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"

	"github.com/copperline/records-api/internal/dispatch"
	"github.com/copperline/records-api/internal/record"
	"github.com/copperline/records-api/internal/store"
)

// postsSchema is the payload shape of the posts collection.
var postsSchema = record.Schema{
	Collection: "posts",
	Fields:     []string{"title", "description"},
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	table := os.Getenv("TABLE_NAME")
	if table == "" {
		logger.Fatal("TABLE_NAME is not set")
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		logger.Fatal("load aws config", zap.Error(err))
	}

	st := store.New(dynamodb.NewFromConfig(cfg), table)
	d := dispatch.New(st, postsSchema, os.Getenv("ALLOWED_ORIGIN"), logger)

	lambda.Start(d.ProxyHandler())
}
