package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
			"kafka": map[string]any{
				"writeTimeout": "5s",
			},
		},
		"redis": map[string]any{
			"productTTL": "5m",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "PUBSUB_KAFKA_WRITETIMEOUT", want: "pubsub.kafka.writeTimeout"},
		{envKey: "REDIS_PRODUCTTTL", want: "redis.productTTL"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

type testConfig struct {
	HTTP struct {
		Port int `yaml:"port"`
	} `yaml:"http"`
	Redis struct {
		Addr       string        `yaml:"addr"`
		ProductTTL time.Duration `yaml:"productTTL"`
	} `yaml:"redis"`
}

func TestLoadWithEnv_AppliesEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	content := []byte("http:\n  port: 8080\nredis:\n  addr: localhost:6379\n  productTTL: 1m\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), content, 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("REDIS_PRODUCTTTL", "30s")

	cfg, err := LoadWithEnv[testConfig]("test", rel)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 30*time.Second, cfg.Redis.ProductTTL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[testConfig]("does-not-exist", t.TempDir())
	require.Error(t, err)
}

func TestReplicasFromEnv(t *testing.T) {
	env := map[string]string{
		"POSTGRES_REPLICAS_0_HOST":     "replica-0",
		"POSTGRES_REPLICAS_0_PORT":     "5432",
		"POSTGRES_REPLICAS_0_USERNAME": "reader",
		"POSTGRES_REPLICAS_1_HOST":     "replica-1",
		"POSTGRES_REPLICAS_1_PORT":     "5433",
		// Index 2 has no port, so scanning stops before index 3.
		"POSTGRES_REPLICAS_2_HOST": "replica-2",
		"POSTGRES_REPLICAS_3_HOST": "replica-3",
		"POSTGRES_REPLICAS_3_PORT": "5434",
	}

	replicas := replicasFromEnv(func(key string) string { return env[key] })

	require.Len(t, replicas, 2)
	assert.Equal(t, "replica-0", replicas[0].Host)
	assert.Equal(t, "reader", replicas[0].UserName)
	assert.Equal(t, "5433", replicas[1].Port)
	assert.Empty(t, replicasFromEnv(func(string) string { return "" }))
}

func TestFindConfigFile_AbsoluteDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.yaml"), []byte("http: {}\n"), 0o600))

	path, err := findConfigFile("app.yaml", []string{dir})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "app.yaml"), path)
}
