package main

import (
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/unitoftime/ecs"

	"github.com/unitoftime/ecsbench/config"
)

// soak runs one scenario under the registry's own fixed timestep scheduler
// instead of the measuring harness. Useful for watching a pass under a
// profiler for as long as you like.
func newSoakCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "soak <scenario>",
		Short: "Run one scenario on a fixed timestep until interrupted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")

			cfg := config.Default()
			if cfgPath != "" {
				var err error
				cfg, err = config.FromFile(cfgPath)
				if err != nil {
					return err
				}
			}

			scenario, err := buildScenario(args[0], cfg)
			if err != nil {
				return err
			}

			log.Print("Starting soak:", scenario.Name)

			scheduler := ecs.NewScheduler()
			scheduler.AppendPhysics(scenario.System())

			quit := ecs.Signal{}
			quit.Set(false)

			go scheduler.Run(&quit)

			sigs := make(chan os.Signal, 1)
			signal.Notify(sigs, os.Interrupt)
			sig := <-sigs
			log.Print("Terminating:", sig)
			quit.Set(true)

			return nil
		},
	}

	cmd.Flags().String("config", "", "Path to a YAML config file")

	return cmd
}
