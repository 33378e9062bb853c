package config

import (
	"log"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

type Config struct {
	Port      string `env:"PORT" envDefault:"8000"`
	MongoURI  string `env:"MONGO_URI,required"`
	MongoDB   string `env:"MONGO_DB" envDefault:"ukm_baru"`
	JWTSecret string `env:"JWT_SECRET,required"`

	// MinIO asset store
	MinioEndpoint  string `env:"MINIO_ENDPOINT" envDefault:"localhost:9000"`
	MinioAccessKey string `env:"MINIO_ACCESS_KEY" envDefault:"minioadmin"`
	MinioSecretKey string `env:"MINIO_SECRET_KEY" envDefault:"minioadmin"`
	MinioBucket    string `env:"MINIO_BUCKET" envDefault:"ukm-assets"`
	MinioUseSSL    bool   `env:"MINIO_USE_SSL" envDefault:"false"`
	MinioPublicURL string `env:"MINIO_PUBLIC_URL" envDefault:"http://localhost:9000"`
}

func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}
