package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/cdiscount-sdk/pkg/cdiscount"
)

var offerColumns = []string{"offerId", "sellerProductId", "price", "stock", "offerState"}

func offersCmd() *cobra.Command {
	offersRoot := &cobra.Command{
		Use:   "offers",
		Short: "Query offers and offer packages",
	}

	offersRoot.AddCommand(
		offersListCmd(),
		offerPackageGetCmd(),
	)

	return offersRoot
}

func offersListCmd() *cobra.Command {
	var (
		salesChannel string
		page         cdiscount.PageOptions
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List offers on a sales channel",
		Example: `  cdiscount offers list --sales-channel CDISFR
  cdiscount offers list --sales-channel CDISFR --limit 100 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if salesChannel == "" {
				return errors.New("--sales-channel is required")
			}
			c, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Close()

			resp, err := c.Offers().GetOffers(cmd.Context(), salesChannel, page.Params())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), resp.Data)
			}
			return printItemsTable(cmd.OutOrStdout(), resp, offerColumns...)
		},
	}

	cmd.Flags().StringVar(&salesChannel, "sales-channel", "", "sales channel id")
	cmd.Flags().IntVar(&page.Limit, "limit", 0, "maximum number of offers")
	cmd.Flags().StringVar(&page.Cursor, "cursor", "", "cursor returned by a previous page")

	return cmd
}

func offerPackageGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "package <id>",
		Short: "Show the state of an offer package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Close()

			resp, err := c.Offers().GetPackage(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printResponse(cmd.OutOrStdout(), resp)
		},
	}
}
