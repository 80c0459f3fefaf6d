package observability_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/Sumatoshi-tech/gitxray/pkg/observability"
)

func setupScanMeter(t *testing.T) (*observability.ScanMetrics, *sdkmetric.ManualReader) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	meter := mp.Meter("test")

	sm, err := observability.NewScanMetrics(meter)
	require.NoError(t, err)

	return sm, reader
}

func TestNewScanMetrics(t *testing.T) {
	t.Parallel()

	sm, _ := setupScanMeter(t)
	assert.NotNil(t, sm)
}

func TestScanMetrics_RecordScan(t *testing.T) {
	t.Parallel()

	sm, reader := setupScanMeter(t)
	ctx := context.Background()

	sm.RecordScan(ctx, observability.ScanStats{
		Commits:       120,
		Files:         34,
		Sections:      []string{"hotspots", "decay"},
		LoadDuration:  200 * time.Millisecond,
		BuildDuration: 50 * time.Millisecond,
	})

	rm := collectMetrics(t, reader)

	scans := findMetric(rm, "gitxray.scans.total")
	require.NotNil(t, scans, "scans counter should exist")

	commits := findMetric(rm, "gitxray.scan.commits.total")
	require.NotNil(t, commits, "commits counter should exist")

	commitsSum, ok := commits.Data.(metricdata.Sum[int64])
	require.True(t, ok, "expected Sum data type")
	require.NotEmpty(t, commitsSum.DataPoints)
	assert.Equal(t, int64(120), commitsSum.DataPoints[0].Value)

	files := findMetric(rm, "gitxray.scan.files.total")
	require.NotNil(t, files, "files counter should exist")

	sections := findMetric(rm, "gitxray.scan.sections.total")
	require.NotNil(t, sections, "sections counter should exist")

	sectionsSum, ok := sections.Data.(metricdata.Sum[int64])
	require.True(t, ok, "expected Sum data type")
	assert.Len(t, sectionsSum.DataPoints, 2, "one data point per section attribute")

	stageDur := findMetric(rm, "gitxray.scan.stage.duration.seconds")
	require.NotNil(t, stageDur, "stage duration histogram should exist")

	hist, ok := stageDur.Data.(metricdata.Histogram[float64])
	require.True(t, ok, "expected Histogram data type")
	assert.Len(t, hist.DataPoints, 2, "one data point per stage attribute")
}

func TestScanMetrics_AccumulatesAcrossScans(t *testing.T) {
	t.Parallel()

	sm, reader := setupScanMeter(t)
	ctx := context.Background()

	sm.RecordScan(ctx, observability.ScanStats{Commits: 10})
	sm.RecordScan(ctx, observability.ScanStats{Commits: 20})

	rm := collectMetrics(t, reader)

	scans := findMetric(rm, "gitxray.scans.total")
	require.NotNil(t, scans)

	scansSum, ok := scans.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.NotEmpty(t, scansSum.DataPoints)
	assert.Equal(t, int64(2), scansSum.DataPoints[0].Value)

	commits := findMetric(rm, "gitxray.scan.commits.total")
	require.NotNil(t, commits)

	commitsSum, ok := commits.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.NotEmpty(t, commitsSum.DataPoints)
	assert.Equal(t, int64(30), commitsSum.DataPoints[0].Value)
}

func TestScanMetrics_RecordScan_NilReceiver(t *testing.T) {
	t.Parallel()

	var sm *observability.ScanMetrics

	// Should not panic.
	sm.RecordScan(context.Background(), observability.ScanStats{
		Commits:  10,
		Sections: []string{"trend"},
	})
}
