package kafka_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Astemirdum/library-catalog/pkg/circuit_breaker"
	"github.com/Astemirdum/library-catalog/pkg/kafka"
	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/require"
)

func TestEventLog_Log(t *testing.T) {
	t.Parallel()
	producer := mocks.NewSyncProducer(t, nil)
	defer func() { require.NoError(t, producer.Close()) }()

	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != "reservations" {
			return errors.New("unexpected topic " + msg.Topic)
		}
		key, err := msg.Key.Encode()
		if err != nil {
			return err
		}
		if string(key) != "Gatsby" {
			return errors.New("unexpected key " + string(key))
		}
		value, err := msg.Value.Encode()
		if err != nil {
			return err
		}
		var ev kafka.ReservationEvent
		if err := json.Unmarshal(value, &ev); err != nil {
			return err
		}
		if ev.EventID == "" || ev.Timestamp.IsZero() {
			return errors.New("event id and timestamp must be set")
		}
		if ev.Type != kafka.ReservationCreated || ev.ReservationID != 1 || ev.Holder != "Carl" {
			return errors.New("unexpected event")
		}
		return nil
	})

	log := kafka.NewEventLog(producer, "reservations", circuit_breaker.New(10, time.Second, 0.5, 1))
	err := log.Log(kafka.ReservationEvent{
		Type:          kafka.ReservationCreated,
		ReservationID: 1,
		Book:          "Gatsby",
		Holder:        "Carl",
		From:          1,
		To:            2,
	})
	require.NoError(t, err)
}

func TestEventLog_Log_BreakerOpens(t *testing.T) {
	t.Parallel()
	producer := mocks.NewSyncProducer(t, nil)
	defer func() { require.NoError(t, producer.Close()) }()

	errBroker := errors.New("broker down")
	producer.ExpectSendMessageAndFail(errBroker)

	log := kafka.NewEventLog(producer, "reservations", circuit_breaker.New(1, time.Minute, 1, 1))
	ev := kafka.ReservationEvent{Type: kafka.ReservationChanged, Book: "Gatsby", Holder: "Richard", PrevHolder: "Carl"}

	require.ErrorIs(t, log.Log(ev), errBroker)
	require.ErrorIs(t, log.Log(ev), circuit_breaker.ErrOpenCB)
}

func TestNop_Log(t *testing.T) {
	t.Parallel()
	var log kafka.EventLog = kafka.Nop{}
	require.NoError(t, log.Log(kafka.ReservationEvent{}))
}
