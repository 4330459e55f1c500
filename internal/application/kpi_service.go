package application

import (
	"encoding/json"
	"os"
	"time"

	"github.com/docsgov/docsgov/internal/domain"
)

// KPIService builds KPI snapshots and evaluates them against SLA thresholds.
type KPIService struct {
	scanner domain.DocScanner
	store   domain.SnapshotStore
}

func NewKPIService(scanner domain.DocScanner, store domain.SnapshotStore) *KPIService {
	return &KPIService{scanner: scanner, store: store}
}

// Evaluate loads the current snapshot, the optional previous one, and runs
// the SLA checks. previousPath may be empty; trend checks are skipped then.
func (s *KPIService) Evaluate(currentPath, previousPath string, thresholds domain.SLAThresholds) (domain.SLAVerdict, error) {
	current, err := s.store.Load(currentPath)
	if err != nil {
		return domain.SLAVerdict{}, err
	}

	var previous *domain.KPISnapshot
	if previousPath != "" {
		prev, err := s.store.Load(previousPath)
		if err != nil {
			return domain.SLAVerdict{}, err
		}
		previous = &prev
	}

	return domain.EvaluateSLA(current, previous, thresholds), nil
}

// BuildSnapshot scans a docs tree, folds in gap counts from an earlier gap
// report when one is given, and computes the quality score.
func (s *KPIService) BuildSnapshot(docsDir, gapsReportPath, notes string, now time.Time) (domain.KPISnapshot, error) {
	inv, err := s.scanner.Scan(docsDir)
	if err != nil {
		return domain.KPISnapshot{}, err
	}

	snap := domain.KPISnapshot{
		TotalDocs:           inv.TotalDocs,
		DocsWithFrontmatter: inv.DocsWithFrontmatter,
		StaleDocs:           inv.StaleDocs,
		GeneratedAt:         now,
		Notes:               notes,
	}

	if gapsReportPath != "" {
		report, err := loadGapReport(gapsReportPath)
		if err != nil {
			return domain.KPISnapshot{}, err
		}
		snap.OpenGaps = report.Summary.TotalGaps
		snap.HighPriorityGaps = report.Summary.HighPriority
	}

	snap.QualityScore = domain.QualityScore(snap.MetadataPct(), snap.StalePct(), snap.HighPriorityGaps)
	return snap, nil
}

// BuildAndSaveSnapshot builds a snapshot and persists it in one step.
func (s *KPIService) BuildAndSaveSnapshot(docsDir, gapsReportPath, notes, outputPath string, now time.Time) (domain.KPISnapshot, error) {
	snap, err := s.BuildSnapshot(docsDir, gapsReportPath, notes, now)
	if err != nil {
		return domain.KPISnapshot{}, err
	}
	if err := s.store.Save(outputPath, snap); err != nil {
		return domain.KPISnapshot{}, err
	}
	return snap, nil
}

func loadGapReport(path string) (domain.GapReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.GapReport{}, &domain.ConfigError{Path: path, Reason: "reading gap report", Err: err}
	}
	var report domain.GapReport
	if err := json.Unmarshal(data, &report); err != nil {
		return domain.GapReport{}, &domain.ConfigError{Path: path, Reason: "parsing gap report JSON", Err: err}
	}
	return report, nil
}
