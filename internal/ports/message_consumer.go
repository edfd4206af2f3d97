package ports

import "context"

// MessageConsumer — фоновый источник команд избранного (Kafka).
// Run блокируется до отмены ctx, Close можно звать повторно.
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}
