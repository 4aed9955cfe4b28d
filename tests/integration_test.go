package tests

import (
	"path/filepath"
	"testing"

	"refinebench/pkg/benchlog"
	"refinebench/pkg/core"
	"refinebench/pkg/dataset"
	"refinebench/pkg/generator"
	"refinebench/pkg/scorer"

	"github.com/stretchr/testify/require"
)

const oracleExpression = "(color == 'red' and weight > 5) or (size == 'L' and weight > 7)"

func TestEndToEndGenerateScore(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bench.jsonl")

	ds, err := generator.Generate(500, generator.DefaultConfig().WithSeed(99))
	require.NoError(t, err)
	require.NoError(t, dataset.Save(path, ds))

	loaded, err := dataset.Load(path)
	require.NoError(t, err)
	require.Equal(t, ds, loaded)

	report, err := scorer.Score(loaded, oracleExpression)
	require.NoError(t, err)

	// The expression restates the oracle rule, so the refinement is perfect
	// regardless of seed.
	require.Equal(t, 1.0, report.RefinedAccuracy)
	require.Equal(t, 1.0, report.RefinedAccuracyOnCrowdMistakes)
	require.GreaterOrEqual(t, report.AccuracyDelta, 0.0)

	summary := loaded.Summary()
	require.Equal(t, summary.Splits[core.SplitTest].Count, report.CountTest)
	require.Equal(t, summary.Splits[core.SplitTest].Count, report.CrowdConfusion.Total())
	require.Equal(t, summary.Splits[core.SplitTest].Count, report.RefinedConfusion.Total())
	require.Equal(t, summary.Splits[core.SplitTrain].Count, report.TrainSize)
	require.InDelta(t, summary.Splits[core.SplitTrain].CrowdErrorRate, report.TrainErrorRate, 1e-9)

	log := benchlog.FromRun("bench", loaded, oracleExpression, report)
	logPath, err := benchlog.WriteJSON(dir, log)
	require.NoError(t, err)

	readBack, err := benchlog.ReadJSON(logPath)
	require.NoError(t, err)
	require.Equal(t, report, readBack.Report)
}

func TestScoringIsRepeatableAcrossLoads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bench.jsonl")

	ds, err := generator.Generate(100, generator.DefaultConfig().WithSeed(4))
	require.NoError(t, err)
	require.NoError(t, dataset.Save(path, ds))

	first, err := dataset.Load(path)
	require.NoError(t, err)
	second, err := dataset.Load(path)
	require.NoError(t, err)

	reportA, err := scorer.Score(first, "weight > 5")
	require.NoError(t, err)
	reportB, err := scorer.Score(second, "weight > 5")
	require.NoError(t, err)
	require.Equal(t, reportA, reportB)
}

func TestRefinementBeatsCrowdOnItsMistakes(t *testing.T) {
	// A refinement that knows the crowd misreads red items should score
	// perfectly on the crowd-mistake subpopulation when it restates the
	// oracle, and a crowd-mimicking constant should not.
	ds, err := generator.Generate(1000, generator.DefaultConfig().WithSeed(8))
	require.NoError(t, err)

	oracleReport, err := scorer.Score(ds, oracleExpression)
	require.NoError(t, err)
	require.Equal(t, 1.0, oracleReport.RefinedAccuracyOnCrowdMistakes)
	require.Positive(t, oracleReport.SubpopulationErrorCount)

	constantReport, err := scorer.Score(ds, "weight >= 0")
	require.NoError(t, err)
	require.Less(t, constantReport.RefinedAccuracyOnCrowdMistakes, 1.0)
}
