package database

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB builds the DynamoDB client all repositories share. The
// process cannot serve anything without storage, so failure here is fatal.
//
// Environment:
//   - AWS_REGION (default us-east-1)
//   - AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (default "local", enough for
//     DynamoDB Local which never validates them)
//   - DYNAMODB_ENDPOINT (optional, e.g. http://dynamodb:8000 in compose)
func ConnectDynamoDB() *dynamodb.Client {
	client, err := NewClient(context.Background())
	if err != nil {
		log.Fatalf("[storage][dynamodb] config failed err=%v", err)
	}
	return client
}

// NewClient is the error-returning constructor; ConnectDynamoDB wraps it for
// startup wiring.
func NewClient(ctx context.Context) (*dynamodb.Client, error) {
	region := envOr("AWS_REGION", "us-east-1")

	opts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			envOr("AWS_ACCESS_KEY_ID", "local"),
			envOr("AWS_SECRET_ACCESS_KEY", "local"),
			"",
		)),
	}

	if endpoint := os.Getenv("DYNAMODB_ENDPOINT"); endpoint != "" {
		log.Printf("[storage][dynamodb] using local endpoint url=%s region=%s", endpoint, region)
		opts = append(opts, config.WithEndpointResolverWithOptions(
			aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
				if service == dynamodb.ServiceID {
					return aws.Endpoint{URL: endpoint, SigningRegion: region, HostnameImmutable: true}, nil
				}
				return aws.Endpoint{}, &aws.EndpointNotFoundError{}
			}),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return dynamodb.NewFromConfig(cfg), nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
