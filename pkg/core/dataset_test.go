package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDatasetSummary(t *testing.T) {
	ds := Dataset{Examples: []Example{
		{ID: "1", Split: SplitTrain, CrowdLabel: true, OracleLabel: true},
		{ID: "2", Split: SplitTrain, CrowdLabel: false, OracleLabel: true},
		{ID: "3", Split: SplitTrain, CrowdLabel: false, OracleLabel: false},
		{ID: "4", Split: SplitVal, CrowdLabel: true, OracleLabel: true},
		{ID: "5", Split: SplitTest, CrowdLabel: false, OracleLabel: true},
	}}

	summary := ds.Summary()
	require.Equal(t, 5, summary.Total)
	require.Equal(t, 3, summary.Splits[SplitTrain].Count)
	require.Equal(t, 1, summary.Splits[SplitVal].Count)
	require.Equal(t, 1, summary.Splits[SplitTest].Count)
	require.Equal(t, 1, summary.Splits[SplitTrain].CrowdErrors)
	require.InDelta(t, 1.0/3, summary.Splits[SplitTrain].CrowdErrorRate, 1e-9)
	require.Equal(t, 1.0, summary.Splits[SplitTest].CrowdErrorRate)
	require.Equal(t, 0.0, summary.Splits[SplitVal].CrowdErrorRate)
}

func TestDatasetSummaryEmpty(t *testing.T) {
	summary := Dataset{}.Summary()
	require.Equal(t, 0, summary.Total)
	require.Equal(t, 0, summary.Splits[SplitTrain].Count)
	require.Equal(t, 0.0, summary.Splits[SplitTrain].CrowdErrorRate)
}

func TestBySplitPreservesOrder(t *testing.T) {
	ds := Dataset{Examples: []Example{
		{ID: "1", Split: SplitTrain},
		{ID: "2", Split: SplitTest},
		{ID: "3", Split: SplitTrain},
	}}

	train := ds.BySplit(SplitTrain)
	require.Len(t, train, 2)
	require.Equal(t, "1", train[0].ID)
	require.Equal(t, "3", train[1].ID)
	require.Empty(t, ds.BySplit(SplitVal))
}

func TestSplitValid(t *testing.T) {
	require.True(t, SplitTrain.Valid())
	require.True(t, SplitVal.Valid())
	require.True(t, SplitTest.Valid())
	require.False(t, Split("holdout").Valid())
}
