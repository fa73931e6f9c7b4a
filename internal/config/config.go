package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

type StoreDriver string

const (
	StoreSQL   StoreDriver = "sql"
	StoreMongo StoreDriver = "mongo"
)

type Config struct {
	HTTPAddr string

	StoreDriver StoreDriver

	DBDriver string // sqlite|postgres, when StoreDriver == sql
	DBDSN    string

	MongoURI string
	MongoDB  string

	AuthSecret string
	BcryptCost int

	CORSOrigins []string

	AMQPURI      string // optional; events disabled when empty
	AMQPExchange string
}

// FromEnv builds the config from the environment. Missing required values
// (the HMAC secret, the postgres DSN, the mongo URI) are startup errors,
// never silent fallbacks.
func FromEnv() (Config, error) {
	cfg := Config{
		HTTPAddr:     envOr("HTTP_ADDR", ":8080"),
		StoreDriver:  StoreDriver(envOr("STORE_DRIVER", "sql")),
		DBDriver:     envOr("DB_DRIVER", "sqlite"),
		DBDSN:        os.Getenv("DB_DSN"),
		MongoURI:     os.Getenv("MONGO_URI"),
		MongoDB:      envOr("MONGO_DB", "quizhive"),
		AuthSecret:   os.Getenv("AUTH_HMAC_SECRET"),
		BcryptCost:   envInt("BCRYPT_COST", 12),
		CORSOrigins:  csvOr("CORS_ORIGINS", "http://localhost:3000"),
		AMQPURI:      os.Getenv("RABBITMQ_URI"),
		AMQPExchange: envOr("RABBITMQ_EXCHANGE", "quizhive.events"),
	}

	if cfg.AuthSecret == "" {
		return Config{}, errors.New("AUTH_HMAC_SECRET is required")
	}
	switch cfg.StoreDriver {
	case StoreSQL:
		if cfg.DBDriver == "postgres" && cfg.DBDSN == "" {
			return Config{}, errors.New("DB_DSN is required when DB_DRIVER=postgres")
		}
	case StoreMongo:
		if cfg.MongoURI == "" {
			return Config{}, errors.New("MONGO_URI is required when STORE_DRIVER=mongo")
		}
	default:
		return Config{}, errors.New("unsupported STORE_DRIVER: " + string(cfg.StoreDriver))
	}
	return cfg, nil
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
