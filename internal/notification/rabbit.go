package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/idanidan29/tripbooker/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wb-go/wbf/logger"
)

// WaitlistPublisher pushes room-available events onto a durable queue for
// the external mail worker. The worker owns delivery and its retries; our
// contract ends at a successful publish.
type WaitlistPublisher struct {
	conn   *amqp.Connection
	ch     *amqp.Channel
	queue  string
	logger logger.Logger
}

func NewWaitlistPublisher(url, queue string, log logger.Logger) (*WaitlistPublisher, error) {
	if url == "" {
		log.Warn("rabbitmq url is empty, waitlist notifications disabled")
		return &WaitlistPublisher{logger: log}, nil
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if _, err = ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue %q: %w", queue, err)
	}

	return &WaitlistPublisher{conn: conn, ch: ch, queue: queue, logger: log}, nil
}

func (p *WaitlistPublisher) NotifyRoomAvailable(ctx context.Context, user *domain.User, trip *domain.Trip) error {
	if p.ch == nil {
		p.logger.Debug("notification skipped (publisher disabled)",
			logger.String("user_id", user.ID),
			logger.String("trip_id", trip.ID),
		)
		return nil
	}

	event := domain.RoomAvailableEvent{
		UserID:      user.ID,
		TripID:      trip.ID,
		Destination: trip.Destination,
		Email:       user.Email,
		FirstName:   user.FirstName,
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	err = p.ch.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish room available: %w", err)
	}

	return nil
}

func (p *WaitlistPublisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
