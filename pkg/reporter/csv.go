package reporter

import (
	"encoding/csv"
	"io"
	"strconv"

	"refinebench/pkg/core"
)

type CSVReporter struct {
	Writer io.Writer
}

func (r CSVReporter) Report(report core.MetricsReport) error {
	writer := csv.NewWriter(r.Writer)
	header := []string{
		"count_test", "crowd_accuracy", "refined_accuracy", "accuracy_delta",
		"crowd_f1", "refined_f1", "f1_delta",
		"crowd_tp", "crowd_tn", "crowd_fp", "crowd_fn",
		"refined_tp", "refined_tn", "refined_fp", "refined_fn",
		"subpopulation_error_count", "refined_accuracy_on_crowd_mistakes",
		"train_size", "train_crowd_errors", "train_error_rate",
	}
	if err := writer.Write(header); err != nil {
		return err
	}
	record := []string{
		strconv.Itoa(report.CountTest),
		formatFloat(report.CrowdAccuracy),
		formatFloat(report.RefinedAccuracy),
		formatFloat(report.AccuracyDelta),
		formatFloat(report.CrowdF1),
		formatFloat(report.RefinedF1),
		formatFloat(report.F1Delta),
		strconv.Itoa(report.CrowdConfusion.TP),
		strconv.Itoa(report.CrowdConfusion.TN),
		strconv.Itoa(report.CrowdConfusion.FP),
		strconv.Itoa(report.CrowdConfusion.FN),
		strconv.Itoa(report.RefinedConfusion.TP),
		strconv.Itoa(report.RefinedConfusion.TN),
		strconv.Itoa(report.RefinedConfusion.FP),
		strconv.Itoa(report.RefinedConfusion.FN),
		strconv.Itoa(report.SubpopulationErrorCount),
		formatFloat(report.RefinedAccuracyOnCrowdMistakes),
		strconv.Itoa(report.TrainSize),
		strconv.Itoa(report.TrainCrowdErrors),
		formatFloat(report.TrainErrorRate),
	}
	if err := writer.Write(record); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', 4, 64)
}
