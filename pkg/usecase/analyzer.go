package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/m-kato/renoscope/pkg/domain/model"
)

// manifestNames are the dependency-declaration files whose diffs are
// inspected for version bumps. Matching is suffix based, so nested paths
// like apps/api/package.json match as well.
var manifestNames = []string{
	"package.json",
	"package-lock.json",
	"yarn.lock",
	"pnpm-lock.yaml",
	"Cargo.toml",
	"Cargo.lock",
	"requirements.txt",
	"poetry.lock",
	"go.mod",
	"go.sum",
	"deno.json",
	"deno.lock",
}

// versionPattern matches a dotted three-component version with an optional
// pre-release/build suffix, e.g. 1.2.3-beta.1+build5
var versionPattern = regexp.MustCompile(`(\d+\.\d+\.\d+(?:-[0-9A-Za-z.-]+)?(?:\+[0-9A-Za-z.-]+)?)`)

// Package name matchers, tried in priority order. Each is an independent
// single-line matcher with the name in capture group 1; the first match
// wins. Adding a new manifest dialect means appending one matcher.
var nameMatchers = []*regexp.Regexp{
	regexp.MustCompile(`"([^"]+)":\s*"[^"]*"`),                    // JSON: "name": "version"
	regexp.MustCompile(`^[+-]?\s*([A-Za-z0-9_-]+)\s*=\s*"[^"]*"`), // TOML: name = "version"
	regexp.MustCompile(`^[+-]?\s*([A-Za-z0-9_-]+):\s*`),           // YAML: name:
}

var versionPrefix = regexp.MustCompile(`^[^\d]*`)
var versionTriple = regexp.MustCompile(`(\d+)\.(\d+)\.(\d+)`)

// ExtractVersionChanges scans unified-diff text and pairs every removed
// line that is immediately followed by an added line, when both carry a
// version token. This is a heuristic, not a diff parser: it has no
// hunk-boundary awareness, so an unrelated adjacent removed/added pair
// that both contain version-shaped tokens produces a spurious pair.
func ExtractVersionChanges(patch string) []model.VersionChange {
	var changes []model.VersionChange

	lines := strings.Split(patch, "\n")
	for i, line := range lines {
		if !strings.HasPrefix(line, "-") || strings.HasPrefix(line, "---") {
			continue
		}
		if i+1 >= len(lines) {
			continue
		}

		next := lines[i+1]
		if !strings.HasPrefix(next, "+") || strings.HasPrefix(next, "+++") {
			continue
		}

		from := versionPattern.FindString(line[1:])
		to := versionPattern.FindString(next[1:])
		if from != "" && to != "" {
			changes = append(changes, model.VersionChange{From: from, To: to})
		}
	}

	return changes
}

// DetermineChangeType classifies a version bump by its first differing
// component. Range operators (^, ~, >=) are ignored; missing trailing
// components default to zero; versions differing only in the patch
// component or an unparsed suffix classify as patch.
func DetermineChangeType(current, next string) model.ChangeType {
	cur := parseVersion(current)
	nxt := parseVersion(next)

	if nxt.major != cur.major {
		return model.ChangeMajor
	}
	if nxt.minor != cur.minor {
		return model.ChangeMinor
	}
	return model.ChangePatch
}

type versionParts struct {
	major, minor, patch int
}

func parseVersion(version string) versionParts {
	cleaned := versionPrefix.ReplaceAllString(version, "")

	if m := versionTriple.FindStringSubmatch(cleaned); m != nil {
		return versionParts{
			major: atoiOrZero(m[1]),
			minor: atoiOrZero(m[2]),
			patch: atoiOrZero(m[3]),
		}
	}

	// Incomplete versions like "^1.0" or ">=2"
	var parts versionParts
	fields := strings.Split(cleaned, ".")
	if len(fields) > 0 {
		parts.major = atoiOrZero(fields[0])
	}
	if len(fields) > 1 {
		parts.minor = atoiOrZero(fields[1])
	}
	if len(fields) > 2 {
		parts.patch = atoiOrZero(fields[2])
	}
	return parts
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// AnalyzeDependencyUpdates scrapes package version changes from the diffs
// of all dependency manifest files in the changed file set. Output order
// follows the input file order, and within one file the order in which the
// version deltas appear in the patch.
func AnalyzeDependencyUpdates(_ *model.PullRequest, files []*model.PullRequestFile) []*model.DependencyUpdate {
	var updates []*model.DependencyUpdate

	for _, file := range files {
		if !isManifestFile(file.Filename) {
			continue
		}
		ecosystem := inferEcosystem(file.Filename)
		updates = append(updates, extractPackageUpdates(file, ecosystem)...)
	}

	return updates
}

func isManifestFile(filename string) bool {
	for _, name := range manifestNames {
		if strings.HasSuffix(filename, name) {
			return true
		}
	}
	return false
}

func inferEcosystem(filename string) model.Ecosystem {
	switch {
	case strings.Contains(filename, "package"):
		return model.EcosystemNpm
	case strings.Contains(filename, "Cargo"):
		return model.EcosystemCargo
	case strings.Contains(filename, "requirements"), strings.Contains(filename, "poetry"):
		return model.EcosystemPip
	case strings.Contains(filename, "go."):
		return model.EcosystemGo
	case strings.Contains(filename, "deno"):
		return model.EcosystemDeno
	default:
		return model.EcosystemUnknown
	}
}

func extractPackageUpdates(file *model.PullRequestFile, ecosystem model.Ecosystem) []*model.DependencyUpdate {
	if file.Patch == "" {
		return nil
	}

	var updates []*model.DependencyUpdate
	for _, change := range ExtractVersionChanges(file.Patch) {
		name := extractPackageName(file.Patch, change.From)
		if name == "" {
			// No line carries the from-version, or no matcher recognized
			// a key on it. Skip rather than emit a nameless update.
			continue
		}
		updates = append(updates, &model.DependencyUpdate{
			PackageName:    name,
			CurrentVersion: change.From,
			NewVersion:     change.To,
			Ecosystem:      ecosystem,
			ChangeType:     DetermineChangeType(change.From, change.To),
		})
	}

	return updates
}

func extractPackageName(patch, version string) string {
	for _, line := range strings.Split(patch, "\n") {
		if !strings.Contains(line, version) {
			continue
		}
		for _, matcher := range nameMatchers {
			if m := matcher.FindStringSubmatch(line); m != nil {
				return m[1]
			}
		}
	}
	return ""
}
