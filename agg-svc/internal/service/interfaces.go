package service

import (
	"context"

	"dinefine/agg-svc/internal/domain"
	"dinefine/agg-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	RecordScan(ctx context.Context, event domain.ScanEvent) error
	UpdateAnalytics(ctx context.Context, event domain.ScanEvent) error
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessScan(ctx context.Context, event domain.ScanEvent)
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
