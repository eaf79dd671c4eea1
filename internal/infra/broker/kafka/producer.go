package kafka

import (
	"context"

	"github.com/IBM/sarama"
)

const quoteGeneratedTopic = "pricing.quote.generated"

// Producer publishes quote audit events to Kafka.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

// NewProducer connects a sync producer to the given brokers.
func NewProducer(brokers []string, topicPrefix string, cfg *sarama.Config) (*Producer, error) {
	if cfg == nil {
		cfg = sarama.NewConfig()
	}
	cfg.Version = sarama.V2_5_0_0
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForLocal

	p, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}
	topic := quoteGeneratedTopic
	if topicPrefix != "" {
		topic = topicPrefix + "." + topic
	}
	return &Producer{producer: p, topic: topic}, nil
}

// Publish sends the payload keyed for per-property ordering.
func (p *Producer) Publish(ctx context.Context, key string, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, _, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(payload),
	})
	return err
}

func (p *Producer) Close() error {
	return p.producer.Close()
}
