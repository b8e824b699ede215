package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_MongoConfig(t *testing.T) {
	os.Setenv("MONGO_URI", "mongodb://test-mongo:27017")
	os.Setenv("MONGO_DATABASE", "placewise_test")
	defer func() {
		os.Unsetenv("MONGO_URI")
		os.Unsetenv("MONGO_DATABASE")
	}()

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "mongodb://test-mongo:27017", cfg.Mongo.URI)
	assert.Equal(t, "placewise_test", cfg.Mongo.Database)
}

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("MONGO_URI")
	os.Unsetenv("MONGO_DATABASE")
	os.Unsetenv("JWT_TTL")

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "placewise", cfg.Mongo.Database)
	assert.Equal(t, 24*time.Hour, cfg.JWT.TTL)
	assert.Equal(t, "localhost:6379", cfg.Redis.RedisAddr())
	assert.False(t, cfg.SMTP.Configured())
}
