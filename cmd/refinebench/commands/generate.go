package commands

import (
	"os"

	"refinebench/pkg/core"
	"refinebench/pkg/dataset"
	"refinebench/pkg/generator"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newGenerateCommand() *cobra.Command {
	var (
		count      int
		seed       int64
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a benchmark dataset with biased crowd labels",
		RunE: func(cmd *cobra.Command, args []string) error {
			countResolved := resolveInt(count, appConfig.Generate.Count, 100)

			cfg := generator.DefaultConfig()
			if cmd.Flags().Changed("seed") {
				cfg = cfg.WithSeed(seed)
			} else if appConfig.Generate.Seed != 0 {
				cfg = cfg.WithSeed(appConfig.Generate.Seed)
			}

			ds, err := generator.Generate(countResolved, cfg)
			if err != nil {
				return err
			}

			outputResolved := resolveString(outputPath, appConfig.Output)
			if outputResolved == "" {
				if err := dataset.WriteJSONL(os.Stdout, ds); err != nil {
					return err
				}
			} else if err := dataset.Save(outputResolved, ds); err != nil {
				return err
			}

			summary := ds.Summary()
			logger.Info("dataset generated",
				zap.Int("count", summary.Total),
				zap.Int("train", summary.Splits[core.SplitTrain].Count),
				zap.Int("val", summary.Splits[core.SplitVal].Count),
				zap.Int("test", summary.Splits[core.SplitTest].Count),
				zap.Float64("train_error_rate", summary.Splits[core.SplitTrain].CrowdErrorRate),
				zap.String("output", outputResolved),
			)
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 0, "number of examples to generate")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for reproducible output")
	cmd.Flags().StringVar(&outputPath, "output", "", "dataset output path (JSONL, stdout when empty)")

	return cmd
}
