package service

import (
	"context"
	"encoding/json"

	"dinefine/agg-svc/internal/domain"

	"go.uber.org/zap"
)

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
	Log    *zap.SugaredLogger
}

func NewConsumer(reader MessageReader, store StoreInterface, log *zap.SugaredLogger) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
		Log:    log,
	}
}

// Start reads until ctx is cancelled. Undecodable messages are skipped.
func (c *Consumer) Start(ctx context.Context) {
	log := c.logger()
	log.Info("Starting Aggregation Service consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("Consumer stopped")
				return
			}
			log.Errorf("Error reading message: %v", err)
			continue
		}

		var event domain.ScanEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Errorf("Error unmarshaling message at offset %d: %v", message.Offset, err)
			continue
		}

		c.ProcessScan(ctx, event)
	}
}

func (c *Consumer) ProcessScan(ctx context.Context, event domain.ScanEvent) {
	if event.Type != domain.EventMenuScanned {
		return
	}
	log := c.logger()
	log.Infof("Processing scan: RestaurantID=%d, Dishes=%d, Flagged=%d",
		event.RestaurantID, event.TotalDishes, event.FlaggedDishes)

	if err := c.Store.RecordScan(ctx, event); err != nil {
		log.Errorf("Error recording scan: %v", err)
		return
	}

	if err := c.Store.UpdateAnalytics(ctx, event); err != nil {
		log.Errorf("Error updating analytics: %v", err)
		return
	}

	log.Infof("Successfully processed scan for restaurant %d", event.RestaurantID)
}

func (c *Consumer) logger() *zap.SugaredLogger {
	if c.Log == nil {
		return zap.NewNop().Sugar()
	}
	return c.Log
}
