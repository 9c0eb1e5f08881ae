package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"financezenn-server/src/finance"
	"financezenn-server/src/logging"
	"financezenn-server/src/models"
	"financezenn-server/src/notify"
	"financezenn-server/src/queue"
	"financezenn-server/src/store"
	"financezenn-server/src/util"
)

// Sender delivers a message right away.
type Sender interface {
	Send(ctx context.Context, ch notify.Channel, to, body string) (notify.Result, error)
}

// Publisher hands a rendered job to the queue.
type Publisher interface {
	PublishNotification(ctx context.Context, job *queue.NotificationJob) error
}

type NotificationRequest struct {
	Kind    string `json:"kind"`
	Channel string `json:"channel"`
	Phone   string `json:"phone"`
	ID      int64  `json:"id"`
}

// errBadNotification marks request problems found while rendering the message.
type errBadNotification string

func (e errBadNotification) Error() string { return string(e) }

// SendNotification renders a message from the user's own records and either
// queues it (202) or sends it directly (200). With neither configured it
// answers 503.
func SendNotification(s store.RecordStore, c SummaryCache, pub Publisher, sender Sender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		if pub == nil && sender == nil {
			http.Error(w, "notifications not configured", http.StatusServiceUnavailable)
			return
		}

		var req NotificationRequest
		if !decode(w, r, &req) {
			return
		}
		req.Phone = strings.TrimSpace(req.Phone)
		ch := notify.Channel(req.Channel)
		if !ch.Valid() {
			http.Error(w, "channel must be sms or whatsapp", http.StatusBadRequest)
			return
		}
		if !util.ValidatePhone(req.Phone) {
			http.Error(w, "phone must be in E.164 format", http.StatusBadRequest)
			return
		}

		body, err := renderNotification(r.Context(), s, c, userID, req)
		if err != nil {
			var bad errBadNotification
			if errors.As(err, &bad) {
				http.Error(w, bad.Error(), http.StatusBadRequest)
				return
			}
			storeError(w, r, userID, "Failed to load notification data", err)
			return
		}

		if pub != nil {
			job := queue.NewNotificationJob(userID, req.Kind, req.Channel, req.Phone, body)
			if err := pub.PublishNotification(r.Context(), job); err != nil {
				logger().ErrorContext(r.Context(), "Failed to queue notification",
					logging.FieldUserID, userID, logging.FieldKind, req.Kind, logging.FieldError, err)
				http.Error(w, "queue unavailable", http.StatusServiceUnavailable)
				return
			}
			logger().InfoContext(r.Context(), "Queued notification", logging.FieldUserID, userID, logging.FieldKind, req.Kind)
			writeJSON(w, http.StatusAccepted, map[string]string{"status": "queued"})
			return
		}

		res, err := sender.Send(r.Context(), ch, req.Phone, body)
		if err != nil {
			logger().ErrorContext(r.Context(), "Failed to send notification",
				logging.FieldUserID, userID,
				logging.FieldKind, req.Kind,
				logging.FieldChannel, req.Channel,
				logging.FieldError, err)
			writeJSON(w, http.StatusBadGateway, res)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

func renderNotification(ctx context.Context, s store.RecordStore, c SummaryCache, userID int64, req NotificationRequest) (string, error) {
	switch req.Kind {
	case notify.KindDebtDue:
		debts, err := s.ListDebts(ctx, userID)
		if err != nil {
			return "", err
		}
		d, ok := findByID(debts, req.ID, func(d models.Debt) int64 { return d.ID })
		if !ok {
			return "", errBadNotification("debt not found")
		}
		if d.DueDate == nil {
			return "", errBadNotification("debt has no due date")
		}
		return notify.DebtDueMessage(d.Name, *d.DueDate, d.Amount), nil

	case notify.KindGoalReached:
		goals, err := s.ListGoals(ctx, userID)
		if err != nil {
			return "", err
		}
		g, ok := findByID(goals, req.ID, func(g models.Goal) int64 { return g.ID })
		if !ok {
			return "", errBadNotification("goal not found")
		}
		return notify.GoalReachedMessage(g.Name, g.CurrentAmount), nil

	case notify.KindInvestmentUpdate:
		investments, err := s.ListInvestments(ctx, userID)
		if err != nil {
			return "", err
		}
		inv, ok := findByID(investments, req.ID, func(i models.Investment) int64 { return i.ID })
		if !ok {
			return "", errBadNotification("investment not found")
		}
		return notify.InvestmentUpdateMessage(inv.Name, inv.Gain(), inv.Amount), nil

	case notify.KindDailyInsight:
		summary, err := summaryFor(ctx, s, c, userID)
		if err != nil {
			return "", err
		}
		insights := finance.Insights(summary)
		if len(insights) == 0 {
			return "", errBadNotification("no insights available")
		}
		return notify.DailyInsightMessage(insights[0].Title + ": " + insights[0].Description), nil

	case notify.KindEmergencyReserve:
		summary, err := summaryFor(ctx, s, c, userID)
		if err != nil {
			return "", err
		}
		return notify.EmergencyReserveMessage(summary.Params.Caixa, finance.RecommendedReserve(summary)), nil
	}
	return "", errBadNotification("unknown notification kind")
}

func findByID[T any](items []T, id int64, key func(T) int64) (T, bool) {
	for _, it := range items {
		if key(it) == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}
