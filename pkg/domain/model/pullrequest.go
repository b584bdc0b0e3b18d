package model

import "strings"

// PullRequestState represents the open/closed state of a pull request
type PullRequestState string

const (
	PullRequestOpen   PullRequestState = "open"
	PullRequestClosed PullRequestState = "closed"
)

// FileStatus represents the change status of a file in a pull request
type FileStatus string

const (
	FileAdded     FileStatus = "added"
	FileRemoved   FileStatus = "removed"
	FileModified  FileStatus = "modified"
	FileRenamed   FileStatus = "renamed"
	FileCopied    FileStatus = "copied"
	FileChanged   FileStatus = "changed"
	FileUnchanged FileStatus = "unchanged"
)

// Author represents the account that created a pull request or comment
type Author struct {
	Login string
	Type  string
}

// GitRef represents one side of a pull request (base or head)
type GitRef struct {
	Ref string
	SHA string
}

// PullRequest is a snapshot of one pull request under review
type PullRequest struct {
	Number       int
	Title        string
	Body         string
	User         Author
	Base         GitRef
	Head         GitRef
	State        PullRequestState
	Draft        bool
	Mergeable    *bool // nil until GitHub computes mergeability
	ChangedFiles int
	Additions    int
	Deletions    int
	HTMLURL      string
}

// IsRenovate reports whether the pull request was authored by a known
// dependency-update bot. Any one of the checks is sufficient: the author
// login matches a known bot account, or the title/body mentions the bot.
func (pr *PullRequest) IsRenovate() bool {
	if pr.User.Login == "renovate[bot]" || pr.User.Login == "renovate" {
		return true
	}
	if strings.Contains(strings.ToLower(pr.Title), "renovate") {
		return true
	}
	return strings.Contains(strings.ToLower(pr.Body), "renovate")
}

// PullRequestFile is one file changed in a pull request
type PullRequestFile struct {
	Filename         string
	Status           FileStatus
	Additions        int
	Deletions        int
	Changes          int
	Patch            string // empty for binary or oversized files
	PreviousFilename string // set for renames
}

// IssueComment is one conversational comment on a pull request
type IssueComment struct {
	ID        int64
	Body      string
	User      Author
	CreatedAt string
	UpdatedAt string
}
