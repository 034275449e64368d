package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/goodfin/concierge/internal/concierge"
	"github.com/goodfin/concierge/internal/model"
)

var (
	askShortName   string
	askSector      string
	askDemandIndex int
	askSupplyIndex int
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Run one question through the concierge pipeline",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pipeline, err := newPipeline(cfg, nil)
		if err != nil {
			return err
		}

		var company *model.Company
		if askShortName != "" {
			company = &model.Company{
				ShortName:   askShortName,
				Sector:      askSector,
				DemandIndex: askDemandIndex,
				SupplyIndex: askSupplyIndex,
			}
		}

		result, err := pipeline.Handle(cmd.Context(), concierge.Request{
			RequestID: "cli",
			Message:   args[0],
			Company:   company,
		})
		if err != nil {
			return eris.Wrap(err, "ask")
		}

		fmt.Printf("[%s]\n%s\n", result.Tier, result.Content)
		return nil
	},
}

func init() {
	askCmd.Flags().StringVar(&askShortName, "deal", "", "deal short name for context")
	askCmd.Flags().StringVar(&askSector, "sector", "", "deal sector")
	askCmd.Flags().IntVar(&askDemandIndex, "demand", 0, "deal demand index (0-100)")
	askCmd.Flags().IntVar(&askSupplyIndex, "supply", 0, "deal supply index (0-100)")
	rootCmd.AddCommand(askCmd)
}
