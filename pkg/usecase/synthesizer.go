package usecase

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/m-kato/renoscope/pkg/domain/model"
)

var summaryPattern = regexp.MustCompile(`(?i)summary[:\s]*([^\n]+)`)

// nextLabelPattern marks the start of the next "label:" line, which ends a
// list section capture
var nextLabelPattern = regexp.MustCompile(`\n\w+:`)

// ParseReviewResponse turns free-form AI response text into a structured
// review record. Blank input or a response with nothing extractable
// degrades to the conservative default record, never to an error.
func ParseReviewResponse(response string) *model.ReviewResult {
	defaultResult := model.DefaultReviewResult()

	if strings.TrimSpace(response) == "" {
		return defaultResult
	}

	result := &model.ReviewResult{
		Summary:             defaultResult.Summary,
		Recommendation:      defaultResult.Recommendation,
		SecurityIssues:      extractList(response, "security"),
		BreakingChanges:     extractList(response, "breaking"),
		PerformanceImpact:   extractList(response, "performance"),
		TestingRequirements: extractList(response, "test"),
		AdditionalNotes:     extractList(response, "notes"),
	}

	if summary := extractSection(response, summaryPattern); summary != "" {
		result.Summary = summary
	}
	if rec := extractRecommendation(response); rec != "" {
		result.Recommendation = rec
	}
	if len(result.TestingRequirements) == 0 {
		result.TestingRequirements = defaultResult.TestingRequirements
	}

	return result
}

func extractSection(response string, pattern *regexp.Regexp) string {
	if m := pattern.FindStringSubmatch(response); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// extractRecommendation scans for verdict keywords in priority order; the
// first match wins
func extractRecommendation(response string) model.Recommendation {
	lower := strings.ToLower(response)

	switch {
	case strings.Contains(lower, "approve"):
		return model.RecommendApprove
	case strings.Contains(lower, "request_changes"), strings.Contains(lower, "changes"):
		return model.RecommendRequestChanges
	case strings.Contains(lower, "investigation"), strings.Contains(lower, "investigate"):
		return model.RecommendInvestigation
	default:
		return ""
	}
}

// extractList captures the text between a section label line and the next
// label-like line (or end of text), keeping only bullet items
func extractList(response, label string) []string {
	labelPattern := regexp.MustCompile(`(?i)` + label + `[^:\n]*:`)
	loc := labelPattern.FindStringIndex(response)
	if loc == nil {
		return []string{}
	}

	block := response[loc[1]:]
	if end := nextLabelPattern.FindStringIndex(block); end != nil {
		block = block[:end[0]]
	}

	items := []string{}
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "*") {
			continue
		}
		item := strings.TrimSpace(line[1:])
		if item != "" {
			items = append(items, item)
		}
	}

	return items
}

// FormatReviewComment renders a review record as a Markdown comment. The
// output is deterministic: the same record always produces identical text.
func FormatReviewComment(result *model.ReviewResult) string {
	var sb strings.Builder

	sb.WriteString("## 🤖 AI Review: Dependency Updates\n\n")

	sb.WriteString(fmt.Sprintf("### 📋 Summary\n%s\n\n", result.Summary))

	sb.WriteString("### 🎯 Recommendation\n")
	switch result.Recommendation {
	case model.RecommendApprove:
		sb.WriteString("✅ **Approve** - This dependency update is safe to apply\n\n")
	case model.RecommendRequestChanges:
		sb.WriteString("⚠️ **Request changes** - Resolve the issues listed below\n\n")
	case model.RecommendInvestigation:
		sb.WriteString("🔍 **Needs investigation** - Further verification is required\n\n")
	}

	writeSection(&sb, "### 🔒 Security Issues", result.SecurityIssues)
	writeSection(&sb, "### 💥 Breaking Changes", result.BreakingChanges)
	writeSection(&sb, "### ⚡ Performance Impact", result.PerformanceImpact)
	writeSection(&sb, "### 🧪 Testing Requirements", result.TestingRequirements)
	writeSection(&sb, "### 📝 Additional Notes", result.AdditionalNotes)

	sb.WriteString("---\n")
	sb.WriteString("*This review was generated automatically by AI. A human developer should make the final decision.*\n")

	return sb.String()
}

func writeSection(sb *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(heading + "\n")
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("- %s\n", item))
	}
	sb.WriteString("\n")
}
