package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/tiqn/dispatch_engine/internal/models"
)

const mqttTopicPrefix = "tiqn/changes"

// MQTTPublisher отправляет события мобильным клиентам через MQTT-брокер
type MQTTPublisher struct {
	client mqtt.Client
	qos    byte
}

// NewMQTTPublisher подключается к брокеру и возвращает публикатор
func NewMQTTPublisher(brokerURL, clientID string) (*MQTTPublisher, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(brokerURL).
		SetClientID(fmt.Sprintf("%s-%d", clientID, time.Now().UnixNano())).
		SetAutoReconnect(true).
		SetOrderMatters(false)

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(10 * time.Second) {
		return nil, fmt.Errorf("timed out connecting to MQTT broker %s", brokerURL)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", err)
	}

	return newMQTTPublisher(client), nil
}

func newMQTTPublisher(client mqtt.Client) *MQTTPublisher {
	return &MQTTPublisher{client: client, qos: 1}
}

// Topic возвращает топик события, например tiqn/changes/assignment/<id>
func Topic(event models.ChangeEvent) string {
	return fmt.Sprintf("%s/%s/%s", mqttTopicPrefix, event.Entity, event.ID)
}

// Publish публикует событие и ждет подтверждения брокера либо отмены ctx
func (p *MQTTPublisher) Publish(ctx context.Context, event models.ChangeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal change event: %w", err)
	}

	token := p.client.Publish(Topic(event), p.qos, false, payload)
	select {
	case <-token.Done():
		if err := token.Error(); err != nil {
			return fmt.Errorf("failed to publish change event to MQTT: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close отключается от брокера
func (p *MQTTPublisher) Close() {
	p.client.Disconnect(250)
}
