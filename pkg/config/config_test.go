package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "local.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadConfig_KafkaSection(t *testing.T) {
	path := writeConfigFile(t, `
env: local
kafka:
  brokers:
    - "kafka-1:9092"
    - "kafka-2:9092"
  group_id: "stock-consumers"
  backoff: 10s
`)

	var cfg Config
	require.NoError(t, cleanenv.ReadConfig(path, &cfg))

	require.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	require.Equal(t, "stock-consumers", cfg.Kafka.GroupID)
	require.Equal(t, 10*time.Second, cfg.Kafka.Backoff)
}

func TestReadConfig_KafkaDefaults(t *testing.T) {
	path := writeConfigFile(t, "env: local\n")

	var cfg Config
	require.NoError(t, cleanenv.ReadConfig(path, &cfg))

	require.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	require.Equal(t, "product-service-group", cfg.Kafka.GroupID)
	require.Equal(t, 5*time.Second, cfg.Kafka.Backoff)
}

func TestReadConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
env: local
kafka:
  group_id: "from-file"
`)

	t.Setenv("KAFKA_GROUP_ID", "from-env")

	var cfg Config
	require.NoError(t, cleanenv.ReadConfig(path, &cfg))

	require.Equal(t, "from-env", cfg.Kafka.GroupID)
}
