package queue

import (
	"encoding/json"
	"errors"
	"time"
)

// NotificationJob is a fully rendered message waiting to be sent. The body is
// built at publish time from the user's data, so the worker needs no store.
type NotificationJob struct {
	UserID    int64     `json:"userId"`
	Kind      string    `json:"kind"`
	Channel   string    `json:"channel"`
	Phone     string    `json:"phone"`
	Body      string    `json:"body"`
	Timestamp time.Time `json:"timestamp"`
}

func NewNotificationJob(userID int64, kind, channel, phone, body string) *NotificationJob {
	return &NotificationJob{
		UserID:    userID,
		Kind:      kind,
		Channel:   channel,
		Phone:     phone,
		Body:      body,
		Timestamp: time.Now().UTC(),
	}
}

func (m *NotificationJob) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// NotificationJobFromJSON decodes a job and rejects ones missing a target.
func NotificationJobFromJSON(data []byte) (*NotificationJob, error) {
	var msg NotificationJob
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	if msg.Phone == "" || msg.Body == "" || msg.Channel == "" {
		return nil, errors.New("notification job missing phone, channel or body")
	}
	return &msg, nil
}
