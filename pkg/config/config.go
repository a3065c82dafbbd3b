package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/MamangRust/simple-microservice-ecommerce-go/pkg/utils"
)

type Config struct {
	Env      string   `yaml:"env" env:"ENV" env-default:"local"`
	HTTP     HTTP     `yaml:"http"`
	GRPC     GRPC     `yaml:"grpc"`
	Postgres PG       `yaml:"postgres"`
	Redis    Redis    `yaml:"redis"`
	Kafka    Kafka    `yaml:"kafka"`
	Services Services `yaml:"services"`
	Limiter  Limiter  `yaml:"limiter"`
	Auth     Auth     `yaml:"auth"`
}

type HTTP struct {
	Port    string        `yaml:"port" env:"HTTP_PORT" env-default:":3000"`
	Timeout time.Duration `yaml:"timeout" env-default:"4s"`
}

type GRPC struct {
	Port    string        `yaml:"port" env:"GRPC_PORT" env-default:":50051"`
	Timeout time.Duration `yaml:"timeout" env-default:"4s"`
}

type PG struct {
	URL string `yaml:"url" env:"DB_URL"`
}

type Redis struct {
	Addr     string        `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	CacheTTL time.Duration `yaml:"cache_ttl" env:"CACHE_TTL" env-default:"5m"`
}

type Kafka struct {
	Brokers []string      `yaml:"brokers" env:"KAFKA_BROKERS" env-default:"localhost:9092"`
	GroupID string        `yaml:"group_id" env:"KAFKA_GROUP_ID" env-default:"product-service-group"`
	Backoff time.Duration `yaml:"backoff" env:"KAFKA_BACKOFF" env-default:"5s"`
}

type Services struct {
	OrderRPC   string `yaml:"order_rpc" env:"ORDER_RPC_URL"`
	ProductRPC string `yaml:"product_rpc" env:"PRODUCT_RPC_URL"`
}

type Limiter struct {
	Max        int           `yaml:"max" env-default:"20"`
	Expiration time.Duration `yaml:"expiration" env-default:"1m"`
}

type Auth struct {
	JWTSecret string `yaml:"jwt_secret" env:"JWT_SECRET"`
}

func MustLoad() *Config {
	configPath := utils.ParseWithFallback("CONFIG_PATH", "./config/local.yaml")

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %v\n", err)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("error reading config: %v", err)
	}

	return &cfg
}
