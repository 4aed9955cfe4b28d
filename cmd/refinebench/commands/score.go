package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"refinebench/pkg/benchlog"
	"refinebench/pkg/dataset"
	"refinebench/pkg/reporter"
	"refinebench/pkg/scorer"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newScoreCommand() *cobra.Command {
	var (
		datasetPath string
		expression  string
		outputPath  string
		format      string
		logDir      string
		logFormat   string
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a refined heuristic against a generated dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := resolveString(datasetPath, appConfig.Dataset)
			if path == "" {
				return errors.New("dataset path is required")
			}
			exprResolved := resolveString(expression, appConfig.Expression)
			if exprResolved == "" {
				return errors.New("expression is required")
			}
			formatResolved := resolveString(format, appConfig.Format)
			if formatResolved == "" {
				formatResolved = "table"
			}
			outputResolved := resolveString(outputPath, appConfig.Output)
			logDirResolved := resolveString(logDir, appConfig.LogDir)
			logFormatResolved := resolveString(logFormat, appConfig.LogFormat)
			if logFormatResolved == "" {
				logFormatResolved = "none"
			}

			ds, err := dataset.Load(path)
			if err != nil {
				return err
			}

			report, err := scorer.Score(ds, exprResolved)
			if err != nil {
				return err
			}

			writer := os.Stdout
			if outputResolved != "" {
				file, err := os.Create(outputResolved)
				if err != nil {
					return err
				}
				defer file.Close()
				writer = file
			}

			rep, err := buildReporter(formatResolved, writer)
			if err != nil {
				return err
			}
			if err := rep.Report(report); err != nil {
				return err
			}

			switch logFormatResolved {
			case "json":
				if logDirResolved == "" {
					logDirResolved = "./logs"
				}
				name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
				log := benchlog.FromRun(name, ds, exprResolved, report)
				logPath, err := benchlog.WriteJSON(logDirResolved, log)
				if err != nil {
					return err
				}
				logger.Info("run log written", zap.String("path", logPath))
			case "none":
			default:
				return fmt.Errorf("unknown log format: %s", logFormatResolved)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&datasetPath, "dataset", "", "path to dataset file")
	cmd.Flags().StringVar(&expression, "expression", "", "refined heuristic expression")
	cmd.Flags().StringVar(&outputPath, "output", "", "output file path")
	cmd.Flags().StringVar(&format, "format", "", "output format (table, json, html, markdown, csv)")
	cmd.Flags().StringVar(&logDir, "log-dir", "", "directory for run logs")
	cmd.Flags().StringVar(&logFormat, "log-format", "", "run log format (json, none)")

	return cmd
}

func buildReporter(format string, writer io.Writer) (reporter.Reporter, error) {
	switch format {
	case reporter.FormatJSON:
		return reporter.JSONReporter{Writer: writer, Pretty: true}, nil
	case reporter.FormatTable:
		return reporter.TableReporter{Writer: writer}, nil
	case reporter.FormatHTML:
		return reporter.HTMLReporter{Writer: writer}, nil
	case reporter.FormatMarkdown:
		return reporter.MarkdownReporter{Writer: writer}, nil
	case reporter.FormatCSV:
		return reporter.CSVReporter{Writer: writer}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}
