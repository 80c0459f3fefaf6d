package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	metricScansTotal       = "gitxray.scans.total"
	metricScanCommitsTotal = "gitxray.scan.commits.total"
	metricScanFilesTotal   = "gitxray.scan.files.total"
	metricSectionsTotal    = "gitxray.scan.sections.total"
	metricStageDuration    = "gitxray.scan.stage.duration.seconds"

	attrSection = "section"
	attrStage   = "stage"

	stageLoad  = "load"
	stageBuild = "build"
)

// ScanMetrics holds OTel instruments for repository scan metrics.
type ScanMetrics struct {
	scansTotal    metric.Int64Counter
	commitsTotal  metric.Int64Counter
	filesTotal    metric.Int64Counter
	sectionsTotal metric.Int64Counter
	stageDuration metric.Float64Histogram
}

// ScanStats holds the statistics for a single repository scan,
// decoupled from report types.
type ScanStats struct {
	Commits       int64
	Files         int64
	Sections      []string
	LoadDuration  time.Duration
	BuildDuration time.Duration
}

// NewScanMetrics creates scan metric instruments from the given meter.
func NewScanMetrics(mt metric.Meter) (*ScanMetrics, error) {
	scans, err := mt.Int64Counter(metricScansTotal,
		metric.WithDescription("Total repository scans completed"),
		metric.WithUnit("{scan}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricScansTotal, err)
	}

	commits, err := mt.Int64Counter(metricScanCommitsTotal,
		metric.WithDescription("Total commits scanned"),
		metric.WithUnit("{commit}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricScanCommitsTotal, err)
	}

	files, err := mt.Int64Counter(metricScanFilesTotal,
		metric.WithDescription("Total distinct files seen across scans"),
		metric.WithUnit("{file}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricScanFilesTotal, err)
	}

	sections, err := mt.Int64Counter(metricSectionsTotal,
		metric.WithDescription("Report sections built, by section"),
		metric.WithUnit("{section}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricSectionsTotal, err)
	}

	stageDur, err := mt.Float64Histogram(metricStageDuration,
		metric.WithDescription("Per-stage scan duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(durationBucketBoundaries...),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricStageDuration, err)
	}

	return &ScanMetrics{
		scansTotal:    scans,
		commitsTotal:  commits,
		filesTotal:    files,
		sectionsTotal: sections,
		stageDuration: stageDur,
	}, nil
}

// RecordScan records statistics for a completed repository scan.
// Safe to call on a nil receiver (no-op).
func (sm *ScanMetrics) RecordScan(ctx context.Context, stats ScanStats) {
	if sm == nil {
		return
	}

	sm.scansTotal.Add(ctx, 1)
	sm.commitsTotal.Add(ctx, stats.Commits)
	sm.filesTotal.Add(ctx, stats.Files)

	for _, section := range stats.Sections {
		sm.sectionsTotal.Add(ctx, 1, metric.WithAttributes(
			attribute.String(attrSection, section),
		))
	}

	sm.stageDuration.Record(ctx, stats.LoadDuration.Seconds(), metric.WithAttributes(
		attribute.String(attrStage, stageLoad),
	))
	sm.stageDuration.Record(ctx, stats.BuildDuration.Seconds(), metric.WithAttributes(
		attribute.String(attrStage, stageBuild),
	))
}
