package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type MongoDBConfig struct {
	URI    string
	DBName string
}

type KafkaConfig struct {
	BrokerAddress   string
	BrokerTopic     string
	BrokerPartition int
}

type TracingConfig struct {
	CollectorHost string
}

type Config struct {
	ServicePort    string
	MetricsPort    string
	MongoDBConfig  MongoDBConfig
	KafkaConfig    KafkaConfig
	TracingConfig  TracingConfig
	JWTSecret      string
	AllowedOrigins []string
	UploadDir      string
	PayPalClientID string
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort: getEnv("SERVICE_PORT", "8080"),
		MetricsPort: getEnv("METRICS_PORT", "9090"),
		MongoDBConfig: MongoDBConfig{
			URI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
			DBName: getEnv("DB_NAME", "shopsphere"),
		},
		KafkaConfig: KafkaConfig{
			BrokerAddress: os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:   os.Getenv("BROKER_TOPIC"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
		JWTSecret:      os.Getenv("JWT_SECRET"),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		PayPalClientID: os.Getenv("PAYPAL_CLIENT_ID"),
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			conf.AllowedOrigins = append(conf.AllowedOrigins, strings.TrimSpace(origin))
		}
	}

	brokerPartition, err := strconv.Atoi(os.Getenv("BROKER_PARTITION"))
	if err == nil {
		conf.KafkaConfig.BrokerPartition = brokerPartition
	}

	return &conf
}

func getEnv(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
