package main

import (
	"context"
	"log"

	"github.com/keerthanakottapalli/ShopSphere/config"
	"github.com/keerthanakottapalli/ShopSphere/internal/app"
	"github.com/keerthanakottapalli/ShopSphere/internal/infrastructure/database/mongodb"
	"github.com/keerthanakottapalli/ShopSphere/internal/infrastructure/message-queue/kafka"
)

func main() {
	config := config.CreateNewConfig()

	db, err := mongodb.ConnectToMongoDB(config.MongoDBConfig.URI, config.MongoDBConfig.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.Client().Disconnect(context.Background())

	if err := mongodb.EnsureIndexes(context.Background(), db); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	producer, err := kafka.CreateKafkaProducer(config)
	if err != nil {
		log.Fatalf("Failed to connect to Kafka: %v", err)
	}
	defer producer.Close()

	server := app.App{
		DB:       db,
		Config:   config,
		Producer: producer,
	}

	server.Start()
}
