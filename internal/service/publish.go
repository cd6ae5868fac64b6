package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tiqn/dispatch_engine/internal/events"
	"github.com/tiqn/dispatch_engine/internal/models"
	"github.com/tiqn/dispatch_engine/pkg/metrics"
)

// notifier публикует события изменений после фиксации транзакции.
// Ошибка публикации не отменяет уже сохраненную мутацию, поэтому только логируется.
type notifier struct {
	publisher events.Publisher
	metrics   *metrics.Metrics
}

func (n notifier) notify(ctx context.Context, log *logrus.Entry, entity, id, op string) {
	if n.publisher == nil {
		return
	}

	event := models.ChangeEvent{Entity: entity, ID: id, Op: op, At: time.Now().UTC()}
	err := n.publisher.Publish(ctx, event)

	result := "ok"
	if err != nil {
		result = "error"
		log.WithError(err).WithField("entity", entity).Warn("Failed to publish change event")
	}
	if n.metrics != nil {
		n.metrics.EventsPublished.WithLabelValues(entity, result).Inc()
	}
}
