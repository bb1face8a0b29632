package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/unitoftime/ecs"

	"github.com/unitoftime/ecsbench"
	"github.com/unitoftime/ecsbench/config"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd := &cobra.Command{
		Use:   "ecsbench",
		Short: "Compare access and iteration strategies for mutable records",
	}

	rootCmd.AddCommand(
		newListCmd(),
		newRunCmd(),
		newSoakCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var scenarioNames = []string{
	"registry-access",
	"owned-access",
	"locked-access",
	"arena-access",
	"registry-iter",
	"slice-iter",
	"ptr-iter",
}

// buildScenario constructs a fresh dataset for one scenario. Every call gets
// its own world so scenarios never share registry state.
func buildScenario(name string, cfg config.Config) (ecsbench.Scenario, error) {
	world := ecs.NewWorld()

	switch name {
	case "registry-access":
		return ecsbench.BuildRegistryAccess(world, cfg.Entities, cfg.PointsPerRef), nil
	case "owned-access":
		return ecsbench.BuildOwnedAccess(world, cfg.Entities, cfg.PointsPerRef), nil
	case "locked-access":
		return ecsbench.BuildLockedAccess(world, cfg.Entities, cfg.PointsPerRef), nil
	case "arena-access":
		arena := ecsbench.NewPointArena(cfg.Entities)
		return ecsbench.BuildArenaAccess(world, arena, cfg.Entities, cfg.PointsPerRef), nil
	case "registry-iter":
		return ecsbench.BuildRegistryIter(world, cfg.IterPoints), nil
	case "slice-iter":
		scenario, _ := ecsbench.BuildSliceIter(cfg.IterPoints)
		return scenario, nil
	case "ptr-iter":
		scenario, _ := ecsbench.BuildPtrIter(cfg.IterPoints)
		return scenario, nil
	}

	return ecsbench.Scenario{}, fmt.Errorf("unknown scenario: %s", name)
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available scenarios",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range scenarioNames {
				fmt.Println(name)
			}
		},
	}
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfgPath, _ := cmd.Flags().GetString("config")

	cfg := config.Default()
	if cfgPath != "" {
		var err error
		cfg, err = config.FromFile(cfgPath)
		if err != nil {
			return config.Config{}, err
		}
	}

	if samples, _ := cmd.Flags().GetInt("samples"); samples > 0 {
		cfg.Samples = samples
	}
	if warmup, _ := cmd.Flags().GetInt("warmup"); warmup >= 0 {
		cfg.Warmup = warmup
	}

	return cfg, cfg.Validate()
}
