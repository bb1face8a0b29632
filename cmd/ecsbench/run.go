package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/zyedidia/generic/queue"

	"github.com/unitoftime/ecsbench/harness"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [scenario...]",
		Short: "Build and measure scenarios",
		Long: `Build each scenario's dataset (untimed), run its pass repeatedly, and
report the timing distribution. With no arguments, runs every scenario.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			names := args
			if len(names) == 0 {
				names = scenarioNames
			}

			// Queue up the jobs before starting so a typo fails the whole
			// run instead of half of it.
			jobs := queue.New[string]()
			for _, name := range names {
				found := false
				for _, known := range scenarioNames {
					if name == known {
						found = true
						break
					}
				}
				if !found {
					return fmt.Errorf("unknown scenario: %s", name)
				}
				jobs.Enqueue(name)
			}

			runId := uuid.New().String()
			log.Info().
				Str("run", runId).
				Int("entities", cfg.Entities).
				Int("pointsPerRef", cfg.PointsPerRef).
				Int("iterPoints", cfg.IterPoints).
				Int("warmup", cfg.Warmup).
				Int("samples", cfg.Samples).
				Msg("Starting run")

			opts := harness.Options{Warmup: cfg.Warmup, Samples: cfg.Samples}
			for !jobs.Empty() {
				name := jobs.Dequeue()

				log.Info().Str("run", runId).Str("scenario", name).Msg("Building dataset")
				scenario, err := buildScenario(name, cfg)
				if err != nil {
					return err
				}

				report := harness.Measure(scenario.Name, opts, scenario.Pass)
				fmt.Println(report)
			}

			return nil
		},
	}

	cmd.Flags().String("config", "", "Path to a YAML config file")
	cmd.Flags().Int("samples", 0, "Override the number of timed passes")
	cmd.Flags().Int("warmup", -1, "Override the number of discarded warmup passes")

	return cmd
}
