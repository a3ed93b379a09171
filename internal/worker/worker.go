package worker

import (
	"context"
	"encoding/json"

	"todolist-api/internal/cache"
	"todolist-api/internal/models"
	"todolist-api/internal/queue"
	"todolist-api/internal/store"
	"todolist-api/pkg/logger"

	"github.com/segmentio/kafka-go"
)

// Run starts the Kafka consumer: reads activity events, appends them to
// the activity log, and invalidates the todo listing cache. One consumer
// per process; replicas share partitions through the consumer group.
func Run(ctx context.Context, activity store.ActivityStore) {
	brokers := queue.Brokers()
	if len(brokers) == 0 {
		logger.Info(ctx, "Worker disabled (no Kafka brokers)")
		return
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    queue.Topic(),
		GroupID:  "activity-workers",
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	defer reader.Close()

	logger.Info(ctx, "Kafka consumer started", "topic", queue.Topic())
	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Error(ctx, "Worker fetch failed", "error", err)
			continue
		}
		if err := handleMessage(ctx, activity, msg.Value); err != nil {
			logger.Error(ctx, "Worker handle failed", "error", err, "payload", string(msg.Value))
			// Commit anyway to avoid a poison pill blocking the partition;
			// the unique event id makes a later redelivery harmless.
			_ = reader.CommitMessages(ctx, msg)
			continue
		}
		if err := reader.CommitMessages(ctx, msg); err != nil {
			logger.Error(ctx, "Worker commit failed", "error", err)
		}
	}
}

func handleMessage(ctx context.Context, activity store.ActivityStore, payload []byte) error {
	var event models.Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return err
	}
	if err := activity.Insert(ctx, &event); err != nil {
		return err
	}
	if event.Entity == models.EntityTodo || event.Entity == models.EntityTask {
		cache.InvalidateTodos(ctx)
	}
	return nil
}
