package broadcast

import (
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/ramadan/internal/model"
)

const (
	publishQoS     = 1
	publishTimeout = 5 * time.Second
	disconnectWait = 250 // ms
)

// MQTT connection handler
var connectHandler mqtt.OnConnectHandler = func(client mqtt.Client) {
	log.Info().Msg("connected to MQTT broker")
}

// MQTT connection lost handler
var connectLostHandler mqtt.ConnectionLostHandler = func(client mqtt.Client, err error) {
	log.Warn().Err(err).Msg("MQTT connection lost")
}

type MQTTPublisher struct {
	client mqtt.Client
	prefix string
}

// NewMQTTPublisher connects to brokerURL and returns a publisher writing
// retained messages under topicPrefix.
func NewMQTTPublisher(brokerURL, clientID, topicPrefix string) (*MQTTPublisher, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientID)
	opts.SetAutoReconnect(true)
	opts.SetConnectTimeout(10 * time.Second)
	opts.OnConnect = connectHandler
	opts.OnConnectionLost = connectLostHandler

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}

	return newMQTTPublisher(client, topicPrefix), nil
}

func newMQTTPublisher(client mqtt.Client, topicPrefix string) *MQTTPublisher {
	return &MQTTPublisher{client: client, prefix: topicPrefix}
}

// PublishSchedule does not block on the broker; the delivery result is only
// logged.
func (p *MQTTPublisher) PublishSchedule(lat, lon string, days []model.FastingDayClean) {
	payload, err := json.Marshal(newScheduleMessage(lat, lon, days))
	if err != nil {
		log.Error().Err(err).Msg("failed to encode schedule message")
		return
	}

	topic := Topic(p.prefix, lat, lon)
	token := p.client.Publish(topic, publishQoS, true, payload)

	go func() {
		if !token.WaitTimeout(publishTimeout) {
			log.Warn().Str("topic", topic).Msg("timed out publishing schedule")
			return
		}
		if err := token.Error(); err != nil {
			log.Warn().Err(err).Str("topic", topic).Msg("failed to publish schedule")
			return
		}
		log.Debug().Str("topic", topic).Int("days", len(days)).Msg("schedule published")
	}()
}

func (p *MQTTPublisher) Close() {
	if p.client != nil && p.client.IsConnected() {
		p.client.Disconnect(disconnectWait)
		log.Info().Msg("MQTT client disconnected")
	}
}
