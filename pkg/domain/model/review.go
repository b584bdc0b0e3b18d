package model

// Recommendation is the overall verdict of a review
type Recommendation string

const (
	RecommendApprove        Recommendation = "approve"
	RecommendRequestChanges Recommendation = "request_changes"
	RecommendInvestigation  Recommendation = "needs_investigation"
)

// ReviewResult is a structured review outcome. Recommendation is always one
// of the three values; the lists may be empty.
type ReviewResult struct {
	Summary             string
	Recommendation      Recommendation
	SecurityIssues      []string
	BreakingChanges     []string
	PerformanceImpact   []string
	TestingRequirements []string
	AdditionalNotes     []string
}

// DefaultReviewResult returns the conservative fallback record used when no
// AI response is available or the response cannot be parsed.
func DefaultReviewResult() *ReviewResult {
	return &ReviewResult{
		Summary:             "Dependency updates were detected.",
		Recommendation:      RecommendInvestigation,
		SecurityIssues:      []string{},
		BreakingChanges:     []string{},
		PerformanceImpact:   []string{},
		TestingRequirements: []string{"Run verification tests after applying the update"},
		AdditionalNotes:     []string{},
	}
}

// Inspection bundles everything learned about one pull request
type Inspection struct {
	PR      *PullRequest
	Bot     bool // authored by a recognized dependency-update bot
	Updates []*DependencyUpdate
	Review  *ReviewResult
}

// CommentAction reports how a review comment was reconciled
type CommentAction string

const (
	CommentCreated CommentAction = "created"
	CommentUpdated CommentAction = "updated"
)

// CommentResult describes the outcome of posting or refreshing the review comment
type CommentResult struct {
	Action     CommentAction
	CommentID  int64
	CommentURL string
}
