package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/keerthanakottapalli/ShopSphere/config"
	"github.com/keerthanakottapalli/ShopSphere/internal/dto"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

// Producer publishes catalog and order integration events. A nil Producer is
// valid and drops every event, so the broker stays optional.
type Producer struct {
	conn *kafka.Conn
}

func CreateKafkaProducer(config *config.Config) (*Producer, error) {
	if config.KafkaConfig.BrokerAddress == "" {
		return nil, nil
	}

	conn, err := kafka.DialLeader(context.Background(), "tcp", config.KafkaConfig.BrokerAddress, config.KafkaConfig.BrokerTopic, config.KafkaConfig.BrokerPartition)
	if err != nil {
		return nil, err
	}

	return &Producer{conn: conn}, nil
}

func (p *Producer) Publish(eventType string, data interface{}) error {
	if p == nil {
		return nil
	}

	jsonMsg, err := json.Marshal(dto.KafkaMessage{
		EventType: eventType,
		Data:      data,
	})
	if err != nil {
		return err
	}

	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		_, err = p.conn.WriteMessages(kafka.Message{Value: jsonMsg})
		if err == nil {
			return nil
		}
		log.Error().Err(err).Str("component", "Publish").Str("event", eventType).Msg("")
		time.Sleep(time.Second * time.Duration(i+1)) // Exponential backoff
	}

	return err
}

func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.conn.Close()
}
