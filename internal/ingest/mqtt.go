package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"healthtrack/internal/config"
	"healthtrack/internal/models"
	"healthtrack/internal/service"
)

// Топик: health/bp/<user_id>/reading — тонометр публикует измерение
// для привязанного пользователя
const topicPattern = "health/bp/+/reading"

// DevicePayload measurement published by a home BP monitor
type DevicePayload struct {
	DeviceID  string `json:"device_id"`
	Systolic  int    `json:"systolic"`
	Diastolic int    `json:"diastolic"`
	Pulse     *int   `json:"pulse,omitempty"`
	Timestamp int64  `json:"timestamp,omitempty"` // unix seconds; 0 означает «сейчас»
}

type Listener struct {
	cfg      config.MQTTConfig
	readings *service.ReadingService
	client   mqtt.Client
}

func NewListener(cfg config.MQTTConfig, readings *service.ReadingService) *Listener {
	return &Listener{
		cfg:      cfg,
		readings: readings,
	}
}

// Start подключается к брокеру и подписывается на топик измерений
func (l *Listener) Start() error {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(l.cfg.Broker)
	opts.SetClientID(l.cfg.ClientID)

	if l.cfg.Username != "" && l.cfg.Password != "" {
		opts.SetUsername(l.cfg.Username)
		opts.SetPassword(l.cfg.Password)
	}

	opts.SetAutoReconnect(true)
	opts.SetCleanSession(true)
	opts.OnConnect = func(c mqtt.Client) {
		slog.Info("MQTT connected", "broker", l.cfg.Broker)
	}
	opts.OnConnectionLost = func(c mqtt.Client, err error) {
		slog.Warn("MQTT connection lost", "error", err)
	}

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("mqtt connect failed: %w", token.Error())
	}

	handler := func(c mqtt.Client, msg mqtt.Message) {
		l.handleMessage(msg.Topic(), msg.Payload())
	}

	token := client.Subscribe(topicPattern, byte(l.cfg.QoS), handler)
	if token.Wait() && token.Error() != nil {
		client.Disconnect(250)
		return fmt.Errorf("mqtt subscribe failed: %w", token.Error())
	}

	l.client = client
	slog.Info("MQTT listener started", "topic", topicPattern, "qos", l.cfg.QoS)
	return nil
}

func (l *Listener) Stop() {
	if l.client != nil {
		l.client.Disconnect(250)
		slog.Info("MQTT listener stopped")
	}
}

func (l *Listener) handleMessage(topic string, payload []byte) {
	userID, err := parseTopicUserID(topic)
	if err != nil {
		slog.Warn("Unparseable MQTT topic", "topic", topic, "error", err)
		return
	}

	req, err := parsePayload(payload)
	if err != nil {
		slog.Warn("Invalid device payload", "topic", topic, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	reading, err := l.readings.Create(ctx, userID, req)
	if err != nil {
		slog.Error("Failed to store device reading", "user_id", userID, "error", err)
		return
	}

	slog.Info("Device reading stored",
		"user_id", userID,
		"reading_id", reading.ID,
		"systolic", reading.Systolic,
		"diastolic", reading.Diastolic,
		"category", reading.Category,
	)
}

// parseTopicUserID достаёт user_id из health/bp/<user_id>/reading
func parseTopicUserID(topic string) (string, error) {
	parts := strings.Split(topic, "/")
	if len(parts) != 4 || parts[0] != "health" || parts[1] != "bp" || parts[3] != "reading" {
		return "", errors.New("unexpected topic shape")
	}
	if parts[2] == "" {
		return "", errors.New("empty user id")
	}
	return parts[2], nil
}

// parsePayload разбирает и проверяет измерение от устройства.
// Классификацию не трогаем: невалидные значения отбрасываются ещё здесь,
// как и в валидации ручного ввода.
func parsePayload(payload []byte) (*models.ReadingRequest, error) {
	var p DevicePayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, fmt.Errorf("bad json: %w", err)
	}

	if p.Systolic <= 0 || p.Diastolic <= 0 {
		return nil, errors.New("non-positive measurement")
	}

	measuredAt := time.Now().UTC()
	if p.Timestamp > 0 {
		measuredAt = time.Unix(p.Timestamp, 0).UTC()
	}

	notes := ""
	if p.DeviceID != "" {
		notes = "device:" + p.DeviceID
	}

	return &models.ReadingRequest{
		Systolic:   p.Systolic,
		Diastolic:  p.Diastolic,
		Pulse:      p.Pulse,
		Notes:      notes,
		MeasuredAt: measuredAt,
	}, nil
}
