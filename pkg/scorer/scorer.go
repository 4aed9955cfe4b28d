// Package scorer compares a refined heuristic and the crowd labels
// against the oracle and produces a metrics report.
package scorer

import (
	"refinebench/pkg/core"
	"refinebench/pkg/expr"
)

// Score compiles the expression once and evaluates it across the dataset.
// Headline accuracy/F1/confusion fields cover the test split; train_size,
// train_crowd_errors, and train_error_rate cover the train split; the
// subpopulation metrics cover the train examples the crowd got wrong.
// Compile failures propagate unchanged and no partial report is returned.
func Score(ds core.Dataset, expression string) (core.MetricsReport, error) {
	predicate, err := expr.Compile(expression, schemaFor(ds))
	if err != nil {
		return core.MetricsReport{}, err
	}

	var crowd, refined core.Confusion
	for _, ex := range ds.BySplit(core.SplitTest) {
		predicted, err := predicate.Evaluate(ex.Features)
		if err != nil {
			return core.MetricsReport{}, err
		}
		crowd.Add(ex.CrowdLabel, ex.OracleLabel)
		refined.Add(predicted, ex.OracleLabel)
	}

	train := ds.BySplit(core.SplitTrain)
	mistakes := 0
	fixed := 0
	for _, ex := range train {
		if ex.CrowdLabel == ex.OracleLabel {
			continue
		}
		mistakes++
		predicted, err := predicate.Evaluate(ex.Features)
		if err != nil {
			return core.MetricsReport{}, err
		}
		if predicted == ex.OracleLabel {
			fixed++
		}
	}

	mistakeAccuracy := 0.0
	if mistakes > 0 {
		mistakeAccuracy = float64(fixed) / float64(mistakes)
	}
	trainErrorRate := 0.0
	if len(train) > 0 {
		trainErrorRate = float64(mistakes) / float64(len(train))
	}

	return core.MetricsReport{
		CountTest:                      crowd.Total(),
		CrowdAccuracy:                  crowd.Accuracy(),
		RefinedAccuracy:                refined.Accuracy(),
		AccuracyDelta:                  refined.Accuracy() - crowd.Accuracy(),
		CrowdF1:                        crowd.F1(),
		RefinedF1:                      refined.F1(),
		F1Delta:                        refined.F1() - crowd.F1(),
		CrowdConfusion:                 crowd,
		RefinedConfusion:               refined,
		SubpopulationErrorCount:        mistakes,
		RefinedAccuracyOnCrowdMistakes: mistakeAccuracy,
		TrainSize:                      len(train),
		TrainCrowdErrors:               mistakes,
		TrainErrorRate:                 trainErrorRate,
	}, nil
}

// schemaFor infers the compile-time schema from the first example so
// unknown feature names fail at compile time. An empty dataset falls back
// to the generator's default schema.
func schemaFor(ds core.Dataset) core.Schema {
	if len(ds.Examples) == 0 {
		return core.DefaultSchema()
	}
	return core.InferSchema(ds.Examples[0].Features)
}
