package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/chrisdamba/burgerbar/internal/menu"
	"github.com/chrisdamba/burgerbar/internal/models"
	"github.com/chrisdamba/burgerbar/internal/output"
	"github.com/chrisdamba/burgerbar/internal/pos"
	repos "github.com/chrisdamba/burgerbar/internal/repositories/postgres"
	"github.com/chrisdamba/burgerbar/internal/stock"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "burgerbar",
	Short: "Interactive burger bar ordering terminal",
	Long:  `burgerbar is a point-of-sale CLI for a small fixed menu. It validates and reserves stock concurrently for every item in an order, bundles combos at a discount, and prices the result, optionally emitting each placed order to Kafka, Postgres, Parquet or plain files.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		catalogue, err := buildCatalogue(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error building catalogue: %v\n", err)
			os.Exit(1)
		}

		ledger := stock.NewLedger(cfg.MenuItems)
		assembler := pos.NewAssembler(catalogue, ledger, cfg.TaxRate, cfg.ComboDiscount)
		out := output.Determine(cfg)

		session := &Session{
			Catalogue: catalogue,
			Assembler: assembler,
			Output:    out,
			In:        os.Stdin,
			Out:       os.Stdout,
		}
		if err := session.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Order session failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func buildCatalogue(cfg *models.Config) (*menu.Catalogue, error) {
	if cfg.MenuSource == "postgres" {
		ctx := context.Background()
		pool, err := pgxpool.New(ctx, cfg.Database.ConnString())
		if err != nil {
			return nil, fmt.Errorf("connecting to menu database: %w", err)
		}
		defer pool.Close()

		items, err := repos.NewMenuRepository(pool).GetAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading menu from database: %w", err)
		}
		cfg.MenuItems = items
	}
	return menu.NewCatalogue(cfg.MenuItems)
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is examples/config.json)")

	rootCmd.PersistentFlags().Float64("tax-rate", 0.05, "Sales tax rate applied to the subtotal")
	rootCmd.PersistentFlags().Float64("combo-discount", 0.15, "Discount applied to burger combos")
	rootCmd.PersistentFlags().String("menu-source", "config", "Where to load the menu from (config or postgres)")
	rootCmd.PersistentFlags().String("output", "console", "Order event destination (console, json, parquet, kafka, postgres)")
	rootCmd.PersistentFlags().String("output-path", "", "Base path for file outputs")
	rootCmd.PersistentFlags().Bool("kafka-enabled", false, "Enable Kafka output")
	rootCmd.PersistentFlags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")

	viper.BindPFlag("tax_rate", rootCmd.PersistentFlags().Lookup("tax-rate"))
	viper.BindPFlag("combo_discount", rootCmd.PersistentFlags().Lookup("combo-discount"))
	viper.BindPFlag("menu_source", rootCmd.PersistentFlags().Lookup("menu-source"))
	viper.BindPFlag("output_destination", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("output_path", rootCmd.PersistentFlags().Lookup("output-path"))
	viper.BindPFlag("kafka_enabled", rootCmd.PersistentFlags().Lookup("kafka-enabled"))
	viper.BindPFlag("kafka_broker_list", rootCmd.PersistentFlags().Lookup("kafka-broker-list"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
	viper.AutomaticEnv()
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
