package cmd

import (
	"fmt"
	"os"

	"github.com/chrisdamba/burgerbar/internal/models"
	"github.com/chrisdamba/burgerbar/internal/simulator"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run randomly generated orders against the ordering core",
	Long:  `simulate places a stream of randomly generated orders through the same reservation and combo-pricing path the interactive terminal uses, to exercise concurrent stock reservation at scale and feed the configured order event sink.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		sim, err := simulator.NewSimulator(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating simulator: %v\n", err)
			os.Exit(1)
		}
		if err := sim.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Simulation failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().Int("seed", 42, "Random seed for order generation")
	simulateCmd.Flags().Int("orders", 1000, "Number of orders to place")
	simulateCmd.Flags().Int("max-items", 8, "Maximum items per generated order")
	simulateCmd.Flags().Int("workers", 4, "Concurrent order workers")
	simulateCmd.Flags().Bool("random-menu", false, "Generate a synthetic menu instead of the configured one")
	simulateCmd.Flags().Int("menu-size", 60, "Item count for the synthetic menu")

	viper.BindPFlag("seed", simulateCmd.Flags().Lookup("seed"))
	viper.BindPFlag("sim_orders", simulateCmd.Flags().Lookup("orders"))
	viper.BindPFlag("sim_max_items", simulateCmd.Flags().Lookup("max-items"))
	viper.BindPFlag("sim_workers", simulateCmd.Flags().Lookup("workers"))
	viper.BindPFlag("sim_random_menu", simulateCmd.Flags().Lookup("random-menu"))
	viper.BindPFlag("sim_menu_size", simulateCmd.Flags().Lookup("menu-size"))
}
