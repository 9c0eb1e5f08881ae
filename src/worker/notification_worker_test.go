package worker

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"financezenn-server/src/notify"
	"financezenn-server/src/queue"
)

type sent struct {
	ch       notify.Channel
	to, body string
}

type fakeSender struct {
	calls []sent
	err   error
}

func (f *fakeSender) Send(ctx context.Context, ch notify.Channel, to, body string) (notify.Result, error) {
	f.calls = append(f.calls, sent{ch, to, body})
	if f.err != nil {
		return notify.Result{Error: f.err.Error()}, f.err
	}
	return notify.Result{Success: true, MessageID: "SM1"}, nil
}

type fakeConsumer struct {
	jobs []*queue.NotificationJob
	errs []error
}

func (f *fakeConsumer) ConsumeNotifications(ctx context.Context, handler func(context.Context, *queue.NotificationJob) error) error {
	for _, j := range f.jobs {
		f.errs = append(f.errs, handler(ctx, j))
	}
	return errors.New("message channel closed")
}

func TestHandleNotification(t *testing.T) {
	sender := &fakeSender{}
	w := NewNotificationWorker(nil, sender)

	job := queue.NewNotificationJob(1, "goal_reached", "whatsapp", "+5511999990000", "Parabéns")
	if err := w.HandleNotification(context.Background(), job); err != nil {
		t.Fatalf("HandleNotification: %v", err)
	}
	if len(sender.calls) != 1 || sender.calls[0].ch != notify.ChannelWhatsApp || sender.calls[0].body != "Parabéns" {
		t.Errorf("unexpected sends %+v", sender.calls)
	}
}

func TestHandleNotificationSendFailureRequeues(t *testing.T) {
	w := NewNotificationWorker(nil, &fakeSender{err: notify.ErrSendFailed})

	err := w.HandleNotification(context.Background(), queue.NewNotificationJob(1, "daily_insight", "sms", "+1", "x"))
	if !errors.Is(err, notify.ErrSendFailed) {
		t.Errorf("expected send failure to propagate, got %v", err)
	}
	if errors.Is(err, queue.ErrDiscard) {
		t.Error("transient failure must stay retryable")
	}
}

func TestHandleNotificationPermanentFailureDiscarded(t *testing.T) {
	rejected := fmt.Errorf("%w: %w: invalid To number", notify.ErrSendFailed, notify.ErrPermanent)
	sender := &fakeSender{err: rejected}
	w := NewNotificationWorker(nil, sender)

	err := w.HandleNotification(context.Background(), queue.NewNotificationJob(1, "debt_due", "sms", "+5511999990000", "x"))
	if !errors.Is(err, queue.ErrDiscard) {
		t.Fatalf("expected ErrDiscard so the job is not requeued, got %v", err)
	}
	if !errors.Is(err, notify.ErrSendFailed) {
		t.Errorf("expected the send failure to stay in the chain, got %v", err)
	}
	if len(sender.calls) != 1 {
		t.Errorf("expected a single send attempt, got %d", len(sender.calls))
	}
}

func TestHandleNotificationUnknownChannelDropped(t *testing.T) {
	sender := &fakeSender{}
	w := NewNotificationWorker(nil, sender)

	if err := w.HandleNotification(context.Background(), queue.NewNotificationJob(1, "x", "fax", "+1", "x")); err != nil {
		t.Errorf("expected nil so the job is acked, got %v", err)
	}
	if len(sender.calls) != 0 {
		t.Error("unknown channel must not be sent")
	}
}

func TestRun(t *testing.T) {
	consumer := &fakeConsumer{jobs: []*queue.NotificationJob{
		queue.NewNotificationJob(1, "a", "sms", "+1", "one"),
		queue.NewNotificationJob(2, "b", "sms", "+2", "two"),
	}}
	sender := &fakeSender{}
	w := NewNotificationWorker(consumer, sender)

	if err := w.Run(context.Background()); err == nil {
		t.Error("expected consumer error to surface")
	}
	if len(sender.calls) != 2 {
		t.Errorf("expected 2 sends, got %d", len(sender.calls))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := w.Run(ctx); err != nil {
		t.Errorf("expected nil after cancellation, got %v", err)
	}
}
