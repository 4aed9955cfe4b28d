// Package benchlog archives scoring runs as timestamped JSON files so a
// sweep over candidate expressions leaves an inspectable trail.
package benchlog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"refinebench/pkg/core"
)

type RunLog struct {
	Version    int                `json:"version"`
	Created    string             `json:"created"`
	Dataset    DatasetInfo        `json:"dataset"`
	Expression string             `json:"expression"`
	Report     core.MetricsReport `json:"report"`
}

type DatasetInfo struct {
	Name    string                           `json:"name,omitempty"`
	Total   int                              `json:"total"`
	Splits  map[core.Split]core.SplitSummary `json:"splits"`
	Created string                           `json:"created,omitempty"`
}

const timeLayout = "2006-01-02T15:04:05-07:00"

// FromRun builds a log record for one scoring run.
func FromRun(name string, ds core.Dataset, expression string, report core.MetricsReport) RunLog {
	summary := ds.Summary()
	return RunLog{
		Version:    1,
		Created:    time.Now().UTC().Format(timeLayout),
		Dataset:    DatasetInfo{Name: name, Total: summary.Total, Splits: summary.Splits},
		Expression: expression,
		Report:     report,
	}
}

// WriteJSON writes the log under logDir with a timestamped, sanitized
// filename and returns the path.
func WriteJSON(logDir string, log RunLog) (string, error) {
	if logDir == "" {
		return "", fmt.Errorf("benchlog: logDir is required")
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(logDir, buildLogFileName(log))
	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(log); err != nil {
		return "", err
	}
	return path, nil
}

// ReadJSON loads a previously written run log.
func ReadJSON(path string) (RunLog, error) {
	var log RunLog
	file, err := os.Open(path)
	if err != nil {
		return RunLog{}, err
	}
	defer file.Close()
	if err := json.NewDecoder(file).Decode(&log); err != nil {
		return RunLog{}, err
	}
	return log, nil
}

func buildLogFileName(log RunLog) string {
	timestamp := time.Now().Format("2006-01-02T15-04-05")
	name := sanitizeName(log.Dataset.Name)
	if name == "" {
		name = "dataset"
	}
	return fmt.Sprintf("%s_%s_score.json", timestamp, name)
}

func sanitizeName(input string) string {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			out = append(out, r)
		}
	}
	return string(out)
}
