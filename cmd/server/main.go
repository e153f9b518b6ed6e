package main

import (
	"context"
	"os"
	"strconv"

	"vacstats/internal/api"
	"vacstats/internal/backends"
	"vacstats/internal/hh"
	"vacstats/internal/pub"
	"vacstats/internal/stats"
	"vacstats/internal/types"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	PortEnvKey     = "PORT"
	StatsKeyEnvKey = "STATS_KEY"
	TopicArnEnvKey = "SNS_TOPIC_ARN"
)

func main() {
	// Load environment variables
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	err := godotenv.Load(envFile)
	if err != nil {
		log.Info("The .env file not found.")
	}

	ctx := context.Background()

	port := 8080
	if p := os.Getenv(PortEnvKey); p != "" {
		port, err = strconv.Atoi(p)
		if err != nil {
			log.Fatalf("Invalid %s: %v", PortEnvKey, err)
		}
	}

	key := os.Getenv(StatsKeyEnvKey)
	if key == "" {
		key = types.DefaultObjectKey
	}

	// All required configuration is resolved here, before serving: a bad
	// environment fails the process, not individual requests.
	blobStore, err := backends.BlobBackendFromEnv()
	if err != nil {
		log.Fatalf("Failed to initialize blob store: %v", err)
	}

	counterCfg, err := hh.ConfigFromEnv()
	if err != nil {
		log.Fatalf("Failed to load counter config: %v", err)
	}
	counter, err := hh.NewClient(counterCfg)
	if err != nil {
		log.Fatalf("Failed to initialize vacancy counter: %v", err)
	}
	log.WithFields(log.Fields{
		"query":       counterCfg.Query,
		"remote_only": counterCfg.RemoteOnly,
		"per_page":    counterCfg.PerPage,
	}).Info("vacancy counter configured")

	updater := stats.NewUpdater(blobStore, counter, key)
	if arn := os.Getenv(TopicArnEnvKey); arn != "" {
		snsClient, err := snsClientFromEnv(ctx)
		if err != nil {
			log.Fatalf("Failed to initialize SNS client: %v", err)
		}
		updater.Pub = pub.NewSNS(snsClient)
		updater.TopicArn = arn
	}
	fetcher := stats.NewFetcher(blobStore, key)

	api.RunServer(port, fetcher, updater)
}

// snsClientFromEnv creates an SNS client, honoring SNS_ENDPOINT for local mocks.
func snsClientFromEnv(ctx context.Context) (*sns.Client, error) {
	var snsEndpoint *string
	se := os.Getenv("SNS_ENDPOINT")
	if se != "" {
		snsEndpoint = aws.String(se)
	}

	awsCfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}

	snsClient := sns.NewFromConfig(awsCfg, func(o *sns.Options) {
		if snsEndpoint != nil {
			o.BaseEndpoint = snsEndpoint
			if o.Region == "" {
				o.Region = "us-east-1"
			}
			credProvider := credentials.NewStaticCredentialsProvider("test", "test", "")
			o.Credentials = credProvider
		}
	})
	return snsClient, nil
}
