package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Publisher публикует события бронирования в RabbitMQ
//
// Публикация fire-and-forget: жизненный цикл бронирования никогда не ждет
// и не зависит от доставки события. Ошибки логируются и возвращаются,
// чтобы вызывающий мог их проигнорировать осознанно.
type Publisher struct {
	url string
	log Logger
}

// NewPublisher создает publisher; при пустом url публикация отключена
func NewPublisher(url string, log Logger) *Publisher {
	return &Publisher{url: url, log: log}
}

// Enabled возвращает true, если публикация событий настроена
func (p *Publisher) Enabled() bool {
	return p.url != ""
}

// Publish публикует событие в durable-очередь с именем event.Type
// Сообщение персистентное, очередь создается идемпотентно
func (p *Publisher) Publish(ctx context.Context, event BookingEvent) error {
	if !p.Enabled() {
		return nil
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.log.Error("events: dial failed for %s: %v", event.Type, err)
		return fmt.Errorf("events: dial: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.log.Error("events: channel open failed for %s: %v", event.Type, err)
		return fmt.Errorf("events: channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		event.Type, // name
		true,       // durable
		false,      // autoDelete
		false,      // exclusive
		false,      // noWait
		nil,        // args
	); err != nil {
		p.log.Error("events: queue declare failed for %s: %v", event.Type, err)
		return fmt.Errorf("events: queue declare: %w", err)
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.log.Error("events: marshal failed for %s: %v", event.Type, err)
		return fmt.Errorf("events: marshal: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx,
		"",         // default exchange
		event.Type, // routing key = queue name
		false,      // mandatory
		false,      // immediate
		pub,
	); err != nil {
		p.log.Error("events: publish failed for %s: %v", event.Type, err)
		return fmt.Errorf("events: publish: %w", err)
	}

	p.log.Info("events: published %s for booking id=%d", event.Type, event.BookingID)
	return nil
}

// PublishAsync публикует событие в отдельной горутине, не блокируя вызывающего
// Используется из lifecycle-менеджера: отмена и подтверждение бронирования
// не ждут брокера
func (p *Publisher) PublishAsync(event BookingEvent) {
	if !p.Enabled() {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = p.Publish(ctx, event)
	}()
}
