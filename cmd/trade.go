package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/FluidXR/lockboxctl/internal/config"
	"github.com/FluidXR/lockboxctl/internal/store"
	"github.com/FluidXR/lockboxctl/internal/trade"
	"github.com/FluidXR/lockboxctl/internal/ui"
)

var tradeStatus string

var tradeCmd = &cobra.Command{
	Use:   "trade",
	Short: "Inspect buy and sell trades",
}

var tradeShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show the details of a trade",
	Long: `Shows the order and payout details of a trade. --status overrides the stored
state, for example with a fresher status from the exchange partner.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid trade id %q", args[0])
		}
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		loc, err := cfg.Location()
		if err != nil {
			return err
		}

		db, err := store.Open(config.Dir())
		if err != nil {
			return fmt.Errorf("open trade store: %w", err)
		}
		defer db.Close()

		t, err := db.GetTrade(id)
		if err != nil {
			return err
		}
		subs, err := db.ListSubscriptions()
		if err != nil {
			return err
		}

		fmt.Println(ui.RenderDetails(trade.BuildDetails(t, tradeStatus, subs, loc), ui.DefaultWidth+10))
		return nil
	},
}

var tradeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored trades, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		loc, err := cfg.Location()
		if err != nil {
			return err
		}

		db, err := store.Open(config.Dir())
		if err != nil {
			return fmt.Errorf("open trade store: %w", err)
		}
		defer db.Close()

		trades, err := db.ListTrades()
		if err != nil {
			return err
		}
		fmt.Println(ui.RenderTradeList(trades, func(t trade.Trade) string {
			return trade.FormatDate(t.CreatedAt, loc)
		}))
		return nil
	},
}

var tradeImportCmd = &cobra.Command{
	Use:   "import <file.yaml>",
	Short: "Import trades and subscriptions from a YAML export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open export: %w", err)
		}
		defer f.Close()

		db, err := store.Open(config.Dir())
		if err != nil {
			return fmt.Errorf("open trade store: %w", err)
		}
		defer db.Close()

		res, err := db.Import(f)
		if err != nil {
			return err
		}
		fmt.Printf("Imported %d trades and %d subscriptions into %s\n", res.Trades, res.Subscriptions, db.Path())
		return nil
	},
}

func init() {
	tradeShowCmd.Flags().StringVar(&tradeStatus, "status", "", "override the stored trade state")
	tradeCmd.AddCommand(tradeShowCmd)
	tradeCmd.AddCommand(tradeListCmd)
	tradeCmd.AddCommand(tradeImportCmd)
	rootCmd.AddCommand(tradeCmd)
}
