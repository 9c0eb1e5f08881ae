package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"financezenn-server/src/logging"
	"financezenn-server/src/notify"
	"financezenn-server/src/queue"
)

// Sender delivers one rendered message.
type Sender interface {
	Send(ctx context.Context, ch notify.Channel, to, body string) (notify.Result, error)
}

// Consumer feeds jobs to a handler until ctx is done.
type Consumer interface {
	ConsumeNotifications(ctx context.Context, handler func(context.Context, *queue.NotificationJob) error) error
}

// NotificationWorker sends queued notification jobs through the notifier.
type NotificationWorker struct {
	consumer Consumer
	sender   Sender
	logger   *slog.Logger
}

func NewNotificationWorker(consumer Consumer, sender Sender) *NotificationWorker {
	return &NotificationWorker{
		consumer: consumer,
		sender:   sender,
		logger:   logging.For(logging.ComponentWorker),
	}
}

// Run blocks until ctx is cancelled or the consumer stops.
func (w *NotificationWorker) Run(ctx context.Context) error {
	w.logger.InfoContext(ctx, "Notification worker started")
	err := w.consumer.ConsumeNotifications(ctx, w.HandleNotification)
	if ctx.Err() != nil {
		w.logger.InfoContext(ctx, "Notification worker stopped")
		return nil
	}
	return err
}

// HandleNotification sends one job. An error makes the job go back on the
// queue unless the provider rejected it for good.
func (w *NotificationWorker) HandleNotification(ctx context.Context, job *queue.NotificationJob) error {
	ch := notify.Channel(job.Channel)
	if !ch.Valid() {
		// requeueing would loop forever
		w.logger.WarnContext(ctx, "Dropping job with unknown channel",
			logging.FieldUserID, job.UserID, logging.FieldChannel, job.Channel)
		return nil
	}

	res, err := w.sender.Send(ctx, ch, job.Phone, job.Body)
	if errors.Is(err, notify.ErrPermanent) {
		return fmt.Errorf("send %s notification: %w: %w", job.Kind, queue.ErrDiscard, err)
	}
	if err != nil {
		return fmt.Errorf("send %s notification: %w", job.Kind, err)
	}

	w.logger.InfoContext(ctx, "Processed notification job",
		logging.FieldUserID, job.UserID,
		logging.FieldKind, job.Kind,
		logging.FieldMessageID, res.MessageID)
	return nil
}
