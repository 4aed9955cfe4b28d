package reporter

import (
	"fmt"
	"io"

	"refinebench/pkg/core"
)

type MarkdownReporter struct {
	Writer io.Writer
}

func (r MarkdownReporter) Report(report core.MetricsReport) error {
	if _, err := fmt.Fprintf(r.Writer, "# Refinement Report\n\n"); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(r.Writer, "## Test split\n\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(r.Writer, "| Metric | Crowd | Refined | Delta |\n|---|---|---|---|\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(r.Writer, "| Accuracy | %.4f | %.4f | %+.4f |\n",
		report.CrowdAccuracy, report.RefinedAccuracy, report.AccuracyDelta); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(r.Writer, "| F1 | %.4f | %.4f | %+.4f |\n",
		report.CrowdF1, report.RefinedF1, report.F1Delta); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(r.Writer, "| Confusion | %s | %s | |\n\n",
		formatConfusion(report.CrowdConfusion), formatConfusion(report.RefinedConfusion)); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(r.Writer, "## Train split\n\n"); err != nil {
		return err
	}
	lines := []struct {
		Name  string
		Value string
	}{
		{"Test examples", fmt.Sprintf("%d", report.CountTest)},
		{"Train size", fmt.Sprintf("%d", report.TrainSize)},
		{"Train crowd errors", fmt.Sprintf("%d", report.TrainCrowdErrors)},
		{"Train error rate", fmt.Sprintf("%.4f", report.TrainErrorRate)},
		{"Crowd mistakes", fmt.Sprintf("%d", report.SubpopulationErrorCount)},
		{"Refined accuracy on crowd mistakes", fmt.Sprintf("%.4f", report.RefinedAccuracyOnCrowdMistakes)},
	}
	if _, err := fmt.Fprintf(r.Writer, "| Metric | Value |\n|---|---|\n"); err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintf(r.Writer, "| %s | %s |\n", line.Name, line.Value); err != nil {
			return err
		}
	}
	return nil
}
