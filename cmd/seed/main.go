// Command seed inserts the demo brands into the configured database and exits.
package main

import (
	"context"
	"os"
	"time"

	"bizops-dashboard/internal/config"
	"bizops-dashboard/internal/repository"
	"bizops-dashboard/internal/seed"
	"bizops-dashboard/pkg/database"
	"bizops-dashboard/pkg/log"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	timeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:          "seed",
	Short:        "Insert demo data for blorcs, shaypops and technova",
	Long:         "Insert demo data for every brand that is not present yet. Brands that already exist are left untouched.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Init(cfgFile)
		cfg := config.Conf
		log.Init(cfg.Log.Level, cfg.Log.Format, "")
		defer log.Sync()

		db, err := database.Open(cfg.Database)
		if err != nil {
			return err
		}
		store := repository.NewStore(db)

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()
		if err := store.AutoMigrate(ctx); err != nil {
			return err
		}

		res, err := seed.Run(ctx, store)
		if err != nil {
			return err
		}
		log.Infof("seed finished: %d inserted, %d failed, skipped %v", res.Inserted, res.Failed, res.Skipped)
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVarP(&cfgFile, "config", "c", "./configs/config.yaml", "path to the YAML configuration")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "abort the run after this long")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
