package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/chrisdamba/burgerbar/internal/models"
	repos "github.com/chrisdamba/burgerbar/internal/repositories/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

var seedTruncate bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the configured menu into the menu database",
	Long:  `seed writes the menu items from the config file into the menu_items table so the terminal can run with --menu-source postgres. Pass --truncate to empty the table first.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		ctx := context.Background()
		pool, err := pgxpool.New(ctx, cfg.Database.ConnString())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error connecting to menu database: %v\n", err)
			os.Exit(1)
		}
		defer pool.Close()

		repo := repos.NewMenuRepository(pool)
		if seedTruncate {
			if err := repo.DeleteAll(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "Error truncating menu table: %v\n", err)
				os.Exit(1)
			}
		}
		if err := repo.BulkCreate(ctx, cfg.MenuItems); err != nil {
			fmt.Fprintf(os.Stderr, "Error seeding menu items: %v\n", err)
			os.Exit(1)
		}

		count, err := repo.Count(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error counting menu items: %v\n", err)
			os.Exit(1)
		}
		log.Printf("Seeded %d menu items, table now holds %d", len(cfg.MenuItems), count)
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedTruncate, "truncate", false, "Empty the menu table before seeding")
	rootCmd.AddCommand(seedCmd)
}
