//go:build integration

package integration

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/placewise/backend/internal/infrastructure/clients/mongo"
	"github.com/placewise/backend/pkg/config"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func newTestMongoClient(t *testing.T) *mongo.Client {
	t.Helper()

	cfg := &config.MongoConfig{
		URI:      getEnv("TEST_MONGO_URI", "mongodb://localhost:27017"),
		Database: getEnv("TEST_MONGO_DATABASE", "placewise_test"),
	}

	client, err := mongo.NewClient(cfg)
	require.NoError(t, err, "Failed to create mongo client")
	require.NoError(t, client.Ping(context.Background()), "Mongo not reachable")
	return client
}

func dropCollections(t *testing.T, client *mongo.Client, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, client.Collection(name).Drop(context.Background()))
	}
}
