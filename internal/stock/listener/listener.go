package listener

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hvngo/stylehub-catalog-service/internal/pkg/broker"
	"github.com/hvngo/stylehub-catalog-service/internal/pkg/logger"
	"github.com/hvngo/stylehub-catalog-service/internal/stock"
	"github.com/hvngo/stylehub-catalog-service/internal/stock/dto"
	"go.uber.org/zap"
)

// StockListener turns order lifecycle events into stock movements: a created
// order exports stock, a returned order puts it back as a customer return.
type StockListener struct {
	consumer *broker.KafkaConsumer
	uc       stock.UseCase
	logger   logger.ZapLogger
}

func NewStockListener(consumer *broker.KafkaConsumer, uc stock.UseCase, logger logger.ZapLogger) *StockListener {
	return &StockListener{
		consumer: consumer,
		uc:       uc,
		logger:   logger,
	}
}

func (l *StockListener) Start(ctx context.Context) {
	l.logger.Info("Starting stock Kafka listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping stock Kafka listener")
			return
		default:
			msg, err := l.consumer.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("Failed to read kafka message", zap.Error(err))
				time.Sleep(1 * time.Second)
				continue
			}
			l.processMessage(ctx, msg.Value)
		}
	}
}

type OrderEvent struct {
	EventID   string       `json:"event_id"`
	EventType string       `json:"event_type"`
	Payload   OrderPayload `json:"payload"`
	Timestamp time.Time    `json:"timestamp"`
}

type OrderPayload struct {
	ID         string             `json:"id"`
	MerchantID string             `json:"merchant_id"`
	Items      []OrderItemPayload `json:"items"`
}

type OrderItemPayload struct {
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"quantity"`
}

func (l *StockListener) processMessage(ctx context.Context, value []byte) {
	var event OrderEvent
	if err := json.Unmarshal(value, &event); err != nil {
		l.logger.Error("Failed to unmarshal order event", zap.Error(err))
		return
	}

	switch event.EventType {
	case "OrderCreated", "OrderReturned":
	default:
		return
	}

	l.logger.Info("Processing order event",
		zap.String("event_type", event.EventType),
		zap.String("order_id", event.Payload.ID),
	)

	for _, item := range event.Payload.Items {
		input := &dto.ApplyMovementInput{
			MerchantID:    event.Payload.MerchantID,
			VariantID:     item.VariantID,
			Quantity:      item.Quantity,
			ReferenceID:   event.Payload.ID,
			ReferenceType: "order",
			UserID:        "system",
		}

		var err error
		if event.EventType == "OrderCreated" {
			input.Reason = "Order sale"
			_, err = l.uc.RecordExport(ctx, input)
		} else {
			input.Reason = "Customer return"
			_, err = l.uc.RecordReturn(ctx, input)
		}
		if err != nil {
			l.logger.Error("Failed to apply stock movement for order item",
				zap.String("order_id", event.Payload.ID),
				zap.String("variant_id", item.VariantID),
				zap.Error(err),
			)
		}
	}
}
