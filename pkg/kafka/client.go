// Package kafka produces and consumes the task and change-event topics.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"bizops-dashboard/internal/config"
	"bizops-dashboard/pkg/log"
	"bizops-dashboard/pkg/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/segmentio/kafka-go"
)

// MaxAttempts is how many times a task is processed before it is committed as failed.
const MaxAttempts = 3

// retryDelay is multiplied by the attempt number between retries.
var retryDelay = time.Second

// TaskProcessor defines the interface for any service that can process a task.
type TaskProcessor interface {
	Process(ctx context.Context, task tasks.Task) error
}

// Producer writes to the task and event topics.
type Producer struct {
	tasks  *kafka.Writer
	events *kafka.Writer
}

// Brokers splits the comma separated broker list.
func Brokers(cfg config.KafkaConfig) []string {
	var out []string
	for _, b := range strings.Split(cfg.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

// NewProducer creates writers for both topics.
func NewProducer(cfg config.KafkaConfig) *Producer {
	brokers := Brokers(cfg)
	p := &Producer{
		tasks: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    cfg.TaskTopic,
			Balancer: &kafka.LeastBytes{},
		},
		events: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    cfg.EventsTopic,
			Balancer: &kafka.Hash{},
			Async:    true,
		},
	}
	log.Infof("Kafka producer initialised, brokers=%v", brokers)
	return p
}

// ProduceTask sends a task to the task topic.
func (p *Producer) ProduceTask(ctx context.Context, task tasks.Task) error {
	taskBytes, err := json.Marshal(task)
	if err != nil {
		return err
	}
	return p.tasks.WriteMessages(ctx, kafka.Message{
		Key:   []byte(task.Type),
		Value: taskBytes,
	})
}

// PublishEvent sends a JSON payload to the events topic, keyed so that one
// resource's events stay ordered within a partition.
func (p *Producer) PublishEvent(ctx context.Context, key string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return p.events.WriteMessages(ctx, kafka.Message{Key: []byte(key), Value: data})
}

// Close flushes and closes both writers.
func (p *Producer) Close() error {
	return errors.Join(p.tasks.Close(), p.events.Close())
}

// AttemptCounter counts processing attempts per task key.
type AttemptCounter interface {
	Incr(ctx context.Context, key string) (int64, error)
	Reset(ctx context.Context, key string)
}

// NewAttemptCounter keeps attempts in Redis so they survive restarts, or in
// memory when redisClient is nil.
func NewAttemptCounter(redisClient *redis.Client) AttemptCounter {
	if redisClient == nil {
		return &memoryAttempts{counts: map[string]int64{}}
	}
	return &redisAttempts{rdb: redisClient}
}

type redisAttempts struct {
	rdb *redis.Client
}

func attemptsKey(key string) string {
	return fmt.Sprintf("kafka:attempts:%s", key)
}

func (r *redisAttempts) Incr(ctx context.Context, key string) (int64, error) {
	attempts, err := r.rdb.Incr(ctx, attemptsKey(key)).Result()
	if err != nil {
		return 0, err
	}
	_ = r.rdb.Expire(ctx, attemptsKey(key), 24*time.Hour).Err()
	return attempts, nil
}

func (r *redisAttempts) Reset(ctx context.Context, key string) {
	_ = r.rdb.Del(ctx, attemptsKey(key)).Err()
}

type memoryAttempts struct {
	mu     sync.Mutex
	counts map[string]int64
}

func (m *memoryAttempts) Incr(_ context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[key]++
	return m.counts[key], nil
}

func (m *memoryAttempts) Reset(_ context.Context, key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.counts, key)
}

// HandleTask processes task, retrying until it succeeds or MaxAttempts is
// reached. It reports whether the task finally succeeded. Errors wrapping
// tasks.ErrPermanent are not retried.
func HandleTask(ctx context.Context, processor TaskProcessor, counter AttemptCounter, task tasks.Task) bool {
	key := task.Key()
	for {
		err := processor.Process(ctx, task)
		if err == nil {
			counter.Reset(ctx, key)
			log.Infof("task processed: %s", key)
			return true
		}
		log.Errorf("task failed: %s, error: %v", key, err)
		if errors.Is(err, tasks.ErrPermanent) {
			log.Errorf("task cannot succeed, not retrying: %s", key)
			counter.Reset(ctx, key)
			return false
		}

		attempts, incErr := counter.Incr(ctx, key)
		if incErr != nil {
			log.Errorf("failed to count attempts for %s: %v", key, incErr)
			attempts = MaxAttempts
		}
		if attempts >= MaxAttempts {
			log.Errorf("task failed %d times, giving up: %s", attempts, key)
			counter.Reset(ctx, key)
			return false
		}

		select {
		case <-ctx.Done():
			return false
		case <-time.After(time.Duration(attempts) * retryDelay):
		}
	}
}

// StartConsumer reads the task topic until ctx is cancelled. Every message is
// committed once it succeeded or exhausted its attempts.
func StartConsumer(ctx context.Context, cfg config.KafkaConfig, processor TaskProcessor, counter AttemptCounter) {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  Brokers(cfg),
		Topic:    cfg.TaskTopic,
		GroupID:  cfg.GroupID,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	defer func() {
		if err := r.Close(); err != nil {
			log.Errorf("failed to close Kafka reader: %v", err)
		}
	}()

	log.Infof("Kafka consumer started on topic '%s'", cfg.TaskTopic)

	for {
		m, err := r.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("Kafka consumer stopped")
				return
			}
			log.Error("failed to read message from Kafka", err)
			return
		}

		var task tasks.Task
		if err := json.Unmarshal(m.Value, &task); err != nil {
			log.Errorf("cannot decode Kafka message: %v, value: %s", err, string(m.Value))
		} else {
			HandleTask(ctx, processor, counter, task)
		}

		if ctx.Err() != nil {
			return
		}
		if err := r.CommitMessages(ctx, m); err != nil {
			log.Errorf("failed to commit Kafka offset: %v", err)
		}
	}
}
