package kafka

import (
	"encoding/json"
	"time"

	"github.com/Astemirdum/library-catalog/pkg/circuit_breaker"
	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

type Config struct {
	Addrs []string `yaml:"addrs" envconfig:"KAFKA_ADDRS"`
	Topic string   `yaml:"topic" envconfig:"KAFKA_RESERVATION_TOPIC" default:"reservations"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

type EventType string

const (
	ReservationCreated EventType = "RESERVATION_CREATED"
	ReservationChanged EventType = "RESERVATION_CHANGED"
)

type ReservationEvent struct {
	EventID       string    `json:"eventId"`
	Type          EventType `json:"type"`
	ReservationID int       `json:"reservationId"`
	Book          string    `json:"book"`
	Holder        string    `json:"holder"`
	PrevHolder    string    `json:"prevHolder,omitempty"`
	From          int       `json:"from,omitempty"`
	To            int       `json:"to,omitempty"`
	Date          int       `json:"date,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

type EventLog interface {
	Log(ev ReservationEvent) error
}

type eventLog struct {
	producer sarama.SyncProducer
	topic    string
	cb       circuit_breaker.CircuitBreaker
}

// NewEventLog publishes reservation events keyed by book, so events of one
// book stay ordered within a partition.
func NewEventLog(producer sarama.SyncProducer, topic string, cb circuit_breaker.CircuitBreaker) *eventLog {
	return &eventLog{
		producer: producer,
		topic:    topic,
		cb:       cb,
	}
}

func (l *eventLog) Log(ev ReservationEvent) error {
	if ev.EventID == "" {
		ev.EventID = uuid.NewString()
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now().UTC()
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: l.topic,
		Key:   sarama.StringEncoder(ev.Book),
		Value: sarama.ByteEncoder(data),
	}
	return l.cb.Call(func() error {
		_, _, err := l.producer.SendMessage(msg)
		return err
	})
}

// Nop drops every event. Used when no brokers are configured.
type Nop struct{}

func (Nop) Log(ReservationEvent) error { return nil }
