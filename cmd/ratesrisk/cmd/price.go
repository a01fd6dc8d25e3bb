package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/rates/config"
	"github.com/rustyeddy/rates/journal"
	"github.com/rustyeddy/rates/pkg/id"
	"github.com/rustyeddy/rates/pricer"
)

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Price a fixed coupon period against a market snapshot",
	Long: `Price a fixed coupon period using the discount curve of its currency.

Example:
  ratesrisk price --market market.yaml --trade trade.yaml`,
	RunE: runPrice,
}

var (
	priceMarketPath  string
	priceTradePath   string
	priceJournalPath string
)

func init() {
	rootCmd.AddCommand(priceCmd)

	priceCmd.Flags().StringVarP(&priceMarketPath, "market", "m", "", "path to market YAML (required)")
	priceCmd.Flags().StringVarP(&priceTradePath, "trade", "t", "", "path to trade YAML (required)")
	priceCmd.Flags().StringVar(&priceJournalPath, "journal", "", "SQLite journal to record the run in")
	priceCmd.MarkFlagRequired("market")
	priceCmd.MarkFlagRequired("trade")
}

func runPrice(cmd *cobra.Command, args []string) error {
	provider, err := config.LoadMarket(priceMarketPath)
	if err != nil {
		return fmt.Errorf("load market: %w", err)
	}
	period, err := config.LoadTrade(priceTradePath)
	if err != nil {
		return fmt.Errorf("load trade: %w", err)
	}

	dsc, err := provider.DiscountFactors(period.Currency)
	if err != nil {
		return err
	}

	p := pricer.New()
	pv := p.PresentValue(period, dsc)
	fv := p.FutureValue(period, dsc)

	fmt.Printf("Valuation date: %s\n", provider.ValuationDate().Format("2006-01-02"))
	fmt.Printf("Payment date:   %s\n", period.PaymentDate.Format("2006-01-02"))
	fmt.Printf("Future value:   %s %.4f\n", period.Currency, fv)
	fmt.Printf("Present value:  %s %.4f\n", period.Currency, pv)
	if fv != 0 {
		fmt.Printf("Discount factor: %.10f\n", dsc.DiscountFactor(period.PaymentDate))
	}

	if priceJournalPath != "" {
		j, err := journal.NewSQLite(priceJournalPath)
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
		defer j.Close()

		runID := id.New()
		err = j.RecordRun(journal.RunRecord{
			RunID:         runID,
			Time:          time.Now().UTC(),
			ValuationDate: provider.ValuationDate(),
			Trade:         priceTradePath,
			Currency:      string(period.Currency),
			PresentValue:  pv,
			Method:        "analytic",
		})
		if err != nil {
			return fmt.Errorf("record run: %w", err)
		}
		fmt.Printf("Journaled run %s\n", runID)
	}
	return nil
}
