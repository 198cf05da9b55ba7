package handler

import (
	"context"
	"encoding/json"
	"time"

	"github.com/paiban-dev/store-scheduler/backend/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
)

// publishMailMessage 把一封待发送的邮件序列化后投递到消息队列，由 mail worker 消费
func (h *Handler) publishMailMessage(msg domain.MailMessage) error {
	mailData, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	return h.mailChannel.PublishWithContext(
		ctx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        mailData,
		},
	)
}
