package reporter

import "refinebench/pkg/core"

// Reporter writes a metrics report.
type Reporter interface {
	Report(report core.MetricsReport) error
}

const (
	FormatJSON     = "json"
	FormatTable    = "table"
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
	FormatCSV      = "csv"
)
