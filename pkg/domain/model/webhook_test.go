package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-kato/renoscope/pkg/domain/model"
)

func TestWebhookEvent_IsSupportedEvent(t *testing.T) {
	tests := []struct {
		name      string
		eventType model.WebhookEventType
		action    string
		want      bool
	}{
		{"pull_request opened", model.EventTypePullRequest, "opened", true},
		{"pull_request reopened", model.EventTypePullRequest, "reopened", true},
		{"pull_request synchronize", model.EventTypePullRequest, "synchronize", true},
		{"pull_request closed", model.EventTypePullRequest, "closed", false},
		{"pull_request labeled", model.EventTypePullRequest, "labeled", false},
		{"unknown event", model.EventTypeUnknown, "opened", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := &model.WebhookEvent{Type: tt.eventType, Action: tt.action}
			gt.Equal(t, event.IsSupportedEvent(), tt.want)
		})
	}
}
