//go:build integration

package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/redpanda"
)

// RedpandaEnv — Kafka-совместимый брокер для тестов консьюмера команд.
type RedpandaEnv struct {
	Container *redpanda.Container
	Brokers   []string
	BaseTopic string
}

func StartRedpandaTC(ctx context.Context, baseTopic string) (*RedpandaEnv, func(context.Context) error, error) {
	rp, err := redpanda.Run(
		ctx,
		"docker.redpanda.com/redpandadata/redpanda:v23.3.8",
		tc.WithLifecycleHooks(logHooks("redpanda")),
		redpanda.WithAutoCreateTopics(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("run redpanda: %w", err)
	}

	seed, err := rp.KafkaSeedBroker(ctx) // "host:port"
	if err != nil {
		_ = tc.TerminateContainer(rp)
		return nil, nil, fmt.Errorf("seed broker: %w", err)
	}

	env := &RedpandaEnv{Container: rp, Brokers: []string{seed}, BaseTopic: baseTopic}
	stop := func(_ context.Context) error { return tc.TerminateContainer(rp) }
	return env, stop, nil
}

// NewTopic — уникальные topic/group от базового префикса; топик создан и виден в метаданных.
func (e *RedpandaEnv) NewTopic(ctx context.Context, suffix string) (topic, group string, err error) {
	// наносекунды без точки, чтобы имя топика было валидным
	ts := strings.ReplaceAll(time.Now().UTC().Format("20060102T150405.000000000"), ".", "")
	topic = fmt.Sprintf("%s-%s-%s", e.BaseTopic, suffix, ts)
	if err := e.ensureTopic(ctx, topic); err != nil {
		return "", "", err
	}
	return topic, topic + "-group", nil
}

// Publish — записать сырое сообщение (в том числе мусор) в топик.
func (e *RedpandaEnv) Publish(ctx context.Context, topic string, payload []byte) error {
	w := &kafka.Writer{
		Addr:         kafka.TCP(e.Brokers...),
		Topic:        topic,
		RequiredAcks: kafka.RequireAll,
		Balancer:     &kafka.LeastBytes{},
	}
	defer w.Close()
	return w.WriteMessages(ctx, kafka.Message{Value: payload})
}

// PublishCommand — команда избранного {"action": ..., "name": ...}.
func (e *RedpandaEnv) PublishCommand(ctx context.Context, topic, action, name string) error {
	payload, err := json.Marshal(map[string]string{"action": action, "name": name})
	if err != nil {
		return err
	}
	return e.Publish(ctx, topic, payload)
}

// ensureTopic — создаёт топик через контроллер (уже существующий — не ошибка) и ждёт партиций.
func (e *RedpandaEnv) ensureTopic(ctx context.Context, topic string) error {
	conn, err := kafka.DialContext(ctx, "tcp", e.Brokers[0])
	if err != nil {
		return err
	}
	defer conn.Close()

	ctrl, err := conn.Controller()
	if err != nil {
		return err
	}
	admin, err := kafka.DialContext(ctx, "tcp", net.JoinHostPort(ctrl.Host, strconv.Itoa(ctrl.Port)))
	if err != nil {
		return err
	}
	defer admin.Close()

	err = admin.CreateTopics(kafka.TopicConfig{Topic: topic, NumPartitions: 1, ReplicationFactor: 1})
	if err != nil && !strings.Contains(strings.ToLower(err.Error()), "already exists") {
		return err
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		parts, err := conn.ReadPartitions(topic)
		if err == nil && len(parts) > 0 {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("topic %q not ready: %v", topic, err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(200 * time.Millisecond):
		}
	}
}
