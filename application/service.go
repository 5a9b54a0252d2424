// Package application orchestrates the watchdog run: scan markers, fetch
// candidate versions, decide updates, and apply rewrites.
package application

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/watchdog/config"
	"github.com/rios0rios0/watchdog/domain"
	fetcherPkg "github.com/rios0rios0/watchdog/infrastructure/fetcher"
	"github.com/rios0rios0/watchdog/infrastructure/vcs"
	"github.com/rios0rios0/watchdog/internal/planner"
	"github.com/rios0rios0/watchdog/internal/rewriter"
	"github.com/rios0rios0/watchdog/internal/scanner"
)

// ErrUpdatesAvailable signals a non-zero exit from check mode when at least
// one pending update was detected.
var ErrUpdatesAvailable = errors.New("updates available")

// RunReport aggregates the per-marker rows and counters of one run.
type RunReport struct {
	Rows             []domain.ReportRow
	UpdatesAvailable int      // check mode: markers behind their latest
	UpdatesMade      int      // update mode: rewrites applied (or previewed)
	Skipped          int      // update mode: markers needing no action
	ChangedFiles     []string // files actually rewritten, deduplicated
}

// WatchService runs the version-resolution pipeline over every configured
// dependency. Dependencies are processed one at a time; an unreachable
// upstream degrades that dependency to "cannot check" and never aborts the
// run.
type WatchService struct {
	fetchers  *fetcherPkg.Registry
	scanner   *scanner.Scanner
	planner   *planner.Planner
	rewriter  *rewriter.Rewriter
	committer *vcs.Committer
}

// NewWatchService creates the service with its collaborators.
func NewWatchService(
	fetchers *fetcherPkg.Registry,
	sc *scanner.Scanner,
	pl *planner.Planner,
	rw *rewriter.Rewriter,
	committer *vcs.Committer,
) *WatchService {
	return &WatchService{
		fetchers:  fetchers,
		scanner:   sc,
		planner:   pl,
		rewriter:  rw,
		committer: committer,
	}
}

// Check evaluates every configured dependency without touching any file.
func (s *WatchService) Check(ctx context.Context, cfg *config.Config) (*RunReport, error) {
	report := &RunReport{}

	for i := range cfg.Dependencies {
		dep := cfg.Dependencies[i].ToDomain()

		markers, candidates, ok := s.evaluate(ctx, dep)
		if !ok {
			continue
		}

		for _, marker := range markers {
			decision := s.planner.Decide(marker, candidates)
			if decision.Result == domain.OutcomeUpdateAvailable {
				report.UpdatesAvailable++
			}
			report.Rows = append(report.Rows, rowFor(dep, marker, decision, decision.Result))
		}
	}

	return report, nil
}

// Update evaluates every configured dependency and rewrites outdated pins.
// With opts.Apply false the rewrites are previewed only (dry run). With
// opts.Commit the changed manifests are committed in the enclosing Git
// repository.
func (s *WatchService) Update(
	ctx context.Context,
	cfg *config.Config,
	opts domain.UpdateOptions,
) (*RunReport, error) {
	report := &RunReport{}
	changed := make(map[string]bool)

	for i := range cfg.Dependencies {
		dep := cfg.Dependencies[i].ToDomain()

		markers, candidates, ok := s.evaluate(ctx, dep)
		if !ok {
			continue
		}

		for _, marker := range markers {
			decision := s.planner.Decide(marker, candidates)
			result := s.applyDecision(dep, marker, decision, opts, report, changed)
			report.Rows = append(report.Rows, rowFor(dep, marker, decision, result))
		}
	}

	for file := range changed {
		report.ChangedFiles = append(report.ChangedFiles, file)
	}

	if opts.Apply && opts.Commit && len(report.ChangedFiles) > 0 {
		message := fmt.Sprintf("chore: update %d watched version pin(s)", report.UpdatesMade)
		if err := s.committer.CommitFiles(".", report.ChangedFiles, message); err != nil {
			logger.Warnf("Could not commit updated manifests: %v", err)
		} else {
			logger.Infof("Committed %d file(s)", len(report.ChangedFiles))
		}
	}

	return report, nil
}

// applyDecision resolves one marker's decision into a final outcome,
// performing the rewrite when the planner signaled an update.
func (s *WatchService) applyDecision(
	dep domain.Dependency,
	marker domain.VersionMarker,
	decision domain.UpdateDecision,
	opts domain.UpdateOptions,
	report *RunReport,
	changed map[string]bool,
) domain.Outcome {
	switch decision.Result {
	case domain.OutcomeUnknown:
		report.Skipped++
		return domain.OutcomeUnknown

	case domain.OutcomeUpToDate:
		report.Skipped++
		return domain.OutcomeUpToDate

	case domain.OutcomeUpdateAvailable:
		ok, err := s.rewriter.ReplaceVersion(
			dep.SourceFile, marker.Line, marker.Current, decision.Latest, opts.Apply,
		)
		if err != nil {
			logger.Warnf(
				"Could not update %s:%d (%s): %v",
				dep.SourceFile, marker.Line, marker.Field, err,
			)
			return domain.OutcomeFailed
		}
		if !ok {
			// The pinned value no longer appears on that line (changed
			// concurrently or normalized away): no-op, reported as failed.
			return domain.OutcomeFailed
		}

		report.UpdatesMade++
		if opts.Apply {
			changed[dep.SourceFile] = true
			return domain.OutcomeUpdated
		}
		return domain.OutcomeWouldUpdate

	default:
		return decision.Result
	}
}

// evaluate scans one dependency's manifest and fetches its candidates.
// ok is false when the dependency produces no rows at all (missing file,
// unreadable manifest, no markers).
func (s *WatchService) evaluate(
	ctx context.Context,
	dep domain.Dependency,
) (markers []domain.VersionMarker, candidates []string, ok bool) {
	if dep.SourceFile == "" {
		logger.Warnf("No source file for %s", dep.Name)
		return nil, nil, false
	}
	if _, err := os.Stat(dep.SourceFile); err != nil {
		logger.Warnf("File not found: %s", dep.SourceFile)
		return nil, nil, false
	}

	markers, err := s.scanner.Scan(dep.SourceFile)
	if err != nil {
		logger.Warnf("Could not read file %s: %v", dep.SourceFile, err)
		return nil, nil, false
	}
	if len(markers) == 0 {
		logger.Debugf("No watchdog markers found in %s", dep.SourceFile)
		return nil, nil, false
	}

	f, err := s.fetchers.Get(dep.Repository.Type, dep.Repository.Token)
	if err != nil {
		logger.Warnf("Skipping fetch for %s: %v", dep.Name, err)
		return markers, nil, true
	}

	candidates, err = f.Fetch(ctx, dep.Repository.URL)
	if err != nil {
		// Partial-failure isolation: degrade to an empty candidate list so
		// the remaining dependencies are still evaluated.
		logger.Warnf("Could not fetch versions for %s: %v", dep.Name, err)
		candidates = nil
	}

	logger.Debugf("Fetched %d candidate version(s) for %s", len(candidates), dep.Name)
	return markers, candidates, true
}

// rowFor builds the summary row for one marker.
func rowFor(
	dep domain.Dependency,
	marker domain.VersionMarker,
	decision domain.UpdateDecision,
	result domain.Outcome,
) domain.ReportRow {
	latest := decision.Latest
	if latest == "" {
		latest = "N/A"
	}
	return domain.ReportRow{
		Dependency: dep.Name,
		File:       filepath.Base(dep.SourceFile),
		Current:    marker.Current,
		Latest:     latest,
		Result:     result,
	}
}
