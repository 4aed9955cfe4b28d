package reporter

import (
	"fmt"
	"io"

	"refinebench/pkg/core"

	"github.com/olekukonko/tablewriter"
)

type TableReporter struct {
	Writer io.Writer
}

func (r TableReporter) Report(report core.MetricsReport) error {
	table := tablewriter.NewWriter(r.Writer)
	table.Header([]string{"Metric", "Value"})
	table.Append([]string{"Test examples", fmt.Sprintf("%d", report.CountTest)})
	table.Append([]string{"Crowd accuracy", fmt.Sprintf("%.4f", report.CrowdAccuracy)})
	table.Append([]string{"Refined accuracy", fmt.Sprintf("%.4f", report.RefinedAccuracy)})
	table.Append([]string{"Accuracy delta", fmt.Sprintf("%+.4f", report.AccuracyDelta)})
	table.Append([]string{"Crowd F1", fmt.Sprintf("%.4f", report.CrowdF1)})
	table.Append([]string{"Refined F1", fmt.Sprintf("%.4f", report.RefinedF1)})
	table.Append([]string{"F1 delta", fmt.Sprintf("%+.4f", report.F1Delta)})
	table.Append([]string{"Crowd confusion", formatConfusion(report.CrowdConfusion)})
	table.Append([]string{"Refined confusion", formatConfusion(report.RefinedConfusion)})
	table.Append([]string{"Train size", fmt.Sprintf("%d", report.TrainSize)})
	table.Append([]string{"Train crowd errors", fmt.Sprintf("%d", report.TrainCrowdErrors)})
	table.Append([]string{"Train error rate", fmt.Sprintf("%.4f", report.TrainErrorRate)})
	table.Append([]string{"Crowd mistakes (train)", fmt.Sprintf("%d", report.SubpopulationErrorCount)})
	table.Append([]string{"Refined accuracy on crowd mistakes", fmt.Sprintf("%.4f", report.RefinedAccuracyOnCrowdMistakes)})
	table.Render()
	return nil
}

func formatConfusion(c core.Confusion) string {
	return fmt.Sprintf("tp=%d tn=%d fp=%d fn=%d", c.TP, c.TN, c.FP, c.FN)
}
