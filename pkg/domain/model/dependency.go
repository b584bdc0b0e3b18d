package model

// Ecosystem is the package-management system a manifest belongs to
type Ecosystem string

const (
	EcosystemNpm     Ecosystem = "npm"
	EcosystemCargo   Ecosystem = "cargo"
	EcosystemPip     Ecosystem = "pip"
	EcosystemGo      Ecosystem = "go"
	EcosystemDeno    Ecosystem = "deno"
	EcosystemUnknown Ecosystem = "unknown"
)

// ChangeType classifies a version bump by its first differing component
type ChangeType string

const (
	ChangeMajor ChangeType = "major"
	ChangeMinor ChangeType = "minor"
	ChangePatch ChangeType = "patch"
)

// VersionChange is one removed/added version pair found in a diff
type VersionChange struct {
	From string
	To   string
}

// Vulnerability is a known advisory attached to a dependency update.
// Nothing populates this today, the field exists for future advisory lookup.
type Vulnerability struct {
	Severity    string
	Description string
	CVE         string
}

// DependencyUpdate is one inferred package version change
type DependencyUpdate struct {
	PackageName     string
	CurrentVersion  string
	NewVersion      string
	Ecosystem       Ecosystem
	ChangeType      ChangeType
	ReleaseNotes    string
	Vulnerabilities []Vulnerability
}
