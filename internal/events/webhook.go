package events

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/tiqn/dispatch_engine/internal/config"
	"github.com/tiqn/dispatch_engine/internal/models"
)

// Заголовки доставки. Получатель может отбросить повтор по X-Dispatch-Event.
const (
	headerEntity    = "X-Dispatch-Entity"
	headerOp        = "X-Dispatch-Op"
	headerEventKey  = "X-Dispatch-Event"
	headerAttempt   = "X-Dispatch-Attempt"
	headerSignature = "X-Dispatch-Signature"
)

// errPermanent - получатель отверг событие, повтор не поможет
var errPermanent = errors.New("webhook rejected permanently")

// WebhookWorker забирает события изменений из очереди Redis и доставляет их
// внешнему получателю (например, панели диспетчера) HTTP POST-запросом.
type WebhookWorker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
	entities    map[string]bool
}

// NewWebhookWorker создает новый WebhookWorker. Пустой cfg.WebhookEntities - доставлять все сущности.
func NewWebhookWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *WebhookWorker {
	var entities map[string]bool
	if len(cfg.WebhookEntities) > 0 {
		entities = make(map[string]bool, len(cfg.WebhookEntities))
		for _, e := range cfg.WebhookEntities {
			entities[e] = true
		}
	}
	return &WebhookWorker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
		entities: entities,
	}
}

// Start запускает горутину для обработки очереди вебхуков
func (w *WebhookWorker) Start(ctx context.Context) {
	w.logger.WithField("entities", w.cfg.WebhookEntities).Info("Starting webhook worker...")
	go func() {
		for ctx.Err() == nil {
			// 0 - ждать бесконечно, выход по отмене ctx
			result, err := w.redisClient.BRPop(ctx, 0, webhookQueueKey).Result()
			if err != nil {
				if ctx.Err() != nil {
					break
				}
				w.logger.WithError(err).Error("Failed to pop change event from Redis")
				sleepCtx(ctx, w.cfg.WebhookTimeout)
				continue
			}

			// result[0] - ключ, result[1] - значение
			payload := result[1]
			var event models.ChangeEvent
			if err := json.Unmarshal([]byte(payload), &event); err != nil {
				w.logger.WithError(err).Error("Failed to unmarshal change event from Redis")
				continue
			}
			w.processWebhookEvent(ctx, event, payload)
		}
		w.logger.Info("Stopping webhook worker.")
	}()
}

// wants - подписан ли получатель на сущность
func (w *WebhookWorker) wants(entity string) bool {
	return w.entities == nil || w.entities[entity]
}

// processWebhookEvent доставляет событие с экспоненциальной задержкой между попытками.
// Возвращает true, если доставка удалась.
func (w *WebhookWorker) processWebhookEvent(ctx context.Context, event models.ChangeEvent, rawPayload string) bool {
	log := w.logger.WithFields(logrus.Fields{
		"event_entity": event.Entity,
		"event_id":     event.ID,
		"event_op":     event.Op,
	})

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping webhook delivery.")
		return false
	}
	if !w.wants(event.Entity) {
		log.Debug("Entity is not subscribed for webhooks")
		return false
	}

	delay := w.cfg.WebhookBaseDelay
	for attempt := 1; attempt <= w.cfg.WebhookMaxRetries; attempt++ {
		err := w.deliver(ctx, event, rawPayload, attempt)
		if err == nil {
			log.WithField("attempt", attempt).Info("Change event delivered")
			return true
		}
		if errors.Is(err, errPermanent) {
			log.WithError(err).Error("Webhook receiver rejected change event")
			return false
		}

		log.WithError(err).Warnf("Webhook delivery attempt %d/%d failed, retrying in %v", attempt, w.cfg.WebhookMaxRetries, delay)
		if attempt == w.cfg.WebhookMaxRetries || !sleepCtx(ctx, delay) {
			break
		}
		delay *= 2
	}

	log.Errorf("Failed to deliver change event after %d attempts", w.cfg.WebhookMaxRetries)
	return false
}

// deliver выполняет одну попытку доставки
func (w *WebhookWorker) deliver(ctx context.Context, event models.ChangeEvent, rawPayload string, attempt int) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
	if err != nil {
		return fmt.Errorf("%w: build request: %v", errPermanent, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerEntity, event.Entity)
	req.Header.Set(headerOp, event.Op)
	req.Header.Set(headerEventKey, eventKey(event))
	req.Header.Set(headerAttempt, strconv.Itoa(attempt))
	if w.cfg.WebhookSecret != "" {
		req.Header.Set(headerSignature, "sha256="+generateHMACSHA256(rawPayload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send webhook: %w", err)
	}
	resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusRequestTimeout || resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("webhook status %d", resp.StatusCode)
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return fmt.Errorf("%w: status %d", errPermanent, resp.StatusCode)
	default:
		return fmt.Errorf("webhook status %d", resp.StatusCode)
	}
}

// eventKey - стабильный ключ события: сущность, идентификатор, операция и время
func eventKey(event models.ChangeEvent) string {
	return fmt.Sprintf("%s:%s:%s:%d", event.Entity, event.ID, event.Op, event.At.UnixNano())
}

// sleepCtx ждет d или отмены ctx. false - ctx отменен.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
