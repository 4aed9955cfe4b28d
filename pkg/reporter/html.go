package reporter

import (
	"html/template"
	"io"

	"refinebench/pkg/core"
)

type HTMLReporter struct {
	Writer io.Writer
	Title  string
}

func (r HTMLReporter) Report(report core.MetricsReport) error {
	title := r.Title
	if title == "" {
		title = "Refinement Report"
	}

	data := struct {
		Title  string
		Report core.MetricsReport
	}{
		Title:  title,
		Report: report,
	}

	tpl := template.Must(template.New("report").Parse(htmlTemplate))
	return tpl.Execute(r.Writer, data)
}

const htmlTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{ .Title }}</title>
  <style>
    body { font-family: Arial, sans-serif; margin: 24px; }
    table { border-collapse: collapse; width: 100%; margin-top: 16px; }
    th, td { border: 1px solid #ddd; padding: 8px; }
    th { background: #f5f5f5; text-align: left; }
  </style>
</head>
<body>
  <h1>{{ .Title }}</h1>
  <h2>Test split</h2>
  <table>
    <tr><th>Metric</th><th>Crowd</th><th>Refined</th><th>Delta</th></tr>
    <tr>
      <td>Accuracy</td>
      <td>{{ printf "%.4f" .Report.CrowdAccuracy }}</td>
      <td>{{ printf "%.4f" .Report.RefinedAccuracy }}</td>
      <td>{{ printf "%+.4f" .Report.AccuracyDelta }}</td>
    </tr>
    <tr>
      <td>F1</td>
      <td>{{ printf "%.4f" .Report.CrowdF1 }}</td>
      <td>{{ printf "%.4f" .Report.RefinedF1 }}</td>
      <td>{{ printf "%+.4f" .Report.F1Delta }}</td>
    </tr>
    <tr>
      <td>Confusion (tp/tn/fp/fn)</td>
      <td>{{ .Report.CrowdConfusion.TP }}/{{ .Report.CrowdConfusion.TN }}/{{ .Report.CrowdConfusion.FP }}/{{ .Report.CrowdConfusion.FN }}</td>
      <td>{{ .Report.RefinedConfusion.TP }}/{{ .Report.RefinedConfusion.TN }}/{{ .Report.RefinedConfusion.FP }}/{{ .Report.RefinedConfusion.FN }}</td>
      <td></td>
    </tr>
  </table>
  <h2>Train split</h2>
  <table>
    <tr><th>Metric</th><th>Value</th></tr>
    <tr><td>Test examples</td><td>{{ .Report.CountTest }}</td></tr>
    <tr><td>Train size</td><td>{{ .Report.TrainSize }}</td></tr>
    <tr><td>Train crowd errors</td><td>{{ .Report.TrainCrowdErrors }}</td></tr>
    <tr><td>Train error rate</td><td>{{ printf "%.4f" .Report.TrainErrorRate }}</td></tr>
    <tr><td>Crowd mistakes</td><td>{{ .Report.SubpopulationErrorCount }}</td></tr>
    <tr><td>Refined accuracy on crowd mistakes</td><td>{{ printf "%.4f" .Report.RefinedAccuracyOnCrowdMistakes }}</td></tr>
  </table>
</body>
</html>
`
