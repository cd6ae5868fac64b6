package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/tiqn/dispatch_engine/internal/models"
)

//go:generate mockgen -source=event.go -destination=mocks/event.go -package=mocks

// Publisher - интерфейс для публикации событий изменений
type Publisher interface {
	Publish(ctx context.Context, event models.ChangeEvent) error
}

// Subscriber выдает поток событий по выбранным сущностям (пустой список - все сущности).
// Канал закрывается после отмены ctx.
type Subscriber interface {
	Subscribe(ctx context.Context, entities ...string) (<-chan models.ChangeEvent, error)
}

// MultiPublisher рассылает событие во все публикаторы, ошибки объединяются
type MultiPublisher []Publisher

func (m MultiPublisher) Publish(ctx context.Context, event models.ChangeEvent) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("failed to publish %s event: %w", event.Entity, errors.Join(errs...))
	}
	return nil
}

func matches(entities []string, entity string) bool {
	if len(entities) == 0 {
		return true
	}
	for _, e := range entities {
		if e == entity {
			return true
		}
	}
	return false
}
