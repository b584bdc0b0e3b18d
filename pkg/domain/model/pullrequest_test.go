package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-kato/renoscope/pkg/domain/model"
)

func TestPullRequest_IsRenovate(t *testing.T) {
	tests := []struct {
		name string
		pr   model.PullRequest
		want bool
	}{
		{
			name: "bot login",
			pr:   model.PullRequest{User: model.Author{Login: "renovate[bot]"}},
			want: true,
		},
		{
			name: "plain renovate login",
			pr:   model.PullRequest{User: model.Author{Login: "renovate"}},
			want: true,
		},
		{
			name: "title mention with different author",
			pr: model.PullRequest{
				Title: "Renovate: update dependency lodash",
				User:  model.Author{Login: "forked-bot"},
			},
			want: true,
		},
		{
			name: "body mention case insensitive",
			pr: model.PullRequest{
				Title: "chore(deps): weekly update",
				Body:  "This PR was generated by RENOVATE bot.",
				User:  model.Author{Login: "some-user"},
			},
			want: true,
		},
		{
			name: "human PR",
			pr: model.PullRequest{
				Title: "Add new feature",
				Body:  "Hand-written change",
				User:  model.Author{Login: "alice"},
			},
			want: false,
		},
		{
			name: "other bot without mention",
			pr: model.PullRequest{
				Title: "chore: regenerate docs",
				User:  model.Author{Login: "github-actions[bot]", Type: "Bot"},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Equal(t, tt.pr.IsRenovate(), tt.want)
		})
	}
}
