package domain

// RepositoryTypeRSS and RepositoryTypeOCI are the supported upstream source kinds.
const (
	RepositoryTypeRSS = "rss"
	RepositoryTypeOCI = "oci"
)

// Repository describes the upstream release source for a dependency.
type Repository struct {
	Type  string // "rss" or "oci"
	URL   string // feed URL or oci://registry/repository
	Token string // optional registry credential, already resolved
}

// Dependency is a single watched entry from the configuration.
// Read-only during a run.
type Dependency struct {
	Name       string
	SourceFile string // manifest file containing the watchdog markers
	Repository Repository
}

// VersionMarker is one annotated line found in a manifest file.
// The line number is only valid for the file snapshot it was scanned from.
type VersionMarker struct {
	Line    int    // 1-based
	Field   string // YAML key on the marker line
	Current string // raw pinned version string
}

// Outcome classifies the result of evaluating (and optionally applying)
// a single marker.
type Outcome string

const (
	OutcomeUpToDate        Outcome = "up-to-date"
	OutcomeUpdateAvailable Outcome = "update-available"
	OutcomeUnknown         Outcome = "unknown"
	OutcomeUpdated         Outcome = "updated"
	OutcomeWouldUpdate     Outcome = "would-update"
	OutcomeFailed          Outcome = "failed"
	OutcomeSkipped         Outcome = "skipped"
)

// UpdateDecision is the planner's verdict for one marker.
type UpdateDecision struct {
	Marker VersionMarker
	Latest string // normalized latest version, empty when unknown
	Result Outcome
}

// ReportRow is one line of the run summary table.
type ReportRow struct {
	Dependency string
	File       string
	Current    string
	Latest     string // "N/A" when no candidate could be resolved
	Result     Outcome
}

// UpdateOptions holds runtime options for an update run.
type UpdateOptions struct {
	DryRun  bool
	Apply   bool
	Commit  bool
	Verbose bool
}
