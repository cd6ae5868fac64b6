package events

import (
	"context"
	"sync"

	"github.com/tiqn/dispatch_engine/internal/models"
)

const subscriberBuffer = 64

type subscription struct {
	entities []string
	ch       chan models.ChangeEvent
}

// Broker - in-process шина событий. Медленный подписчик теряет события, но не блокирует мутации.
type Broker struct {
	mu   sync.RWMutex
	subs map[*subscription]struct{}
}

func NewBroker() *Broker {
	return &Broker{subs: make(map[*subscription]struct{})}
}

// Publish рассылает событие всем подходящим подписчикам
func (b *Broker) Publish(_ context.Context, event models.ChangeEvent) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for sub := range b.subs {
		if !matches(sub.entities, event.Entity) {
			continue
		}
		select {
		case sub.ch <- event:
		default:
		}
	}
	return nil
}

// Subscribe регистрирует подписчика до отмены ctx
func (b *Broker) Subscribe(ctx context.Context, entities ...string) (<-chan models.ChangeEvent, error) {
	sub := &subscription{
		entities: entities,
		ch:       make(chan models.ChangeEvent, subscriberBuffer),
	}

	b.mu.Lock()
	b.subs[sub] = struct{}{}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		delete(b.subs, sub)
		b.mu.Unlock()
		close(sub.ch)
	}()

	return sub.ch, nil
}
