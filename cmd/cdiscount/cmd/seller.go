package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/cdiscount-sdk/pkg/cdiscount"
)

func sellerCmd() *cobra.Command {
	sellerRoot := &cobra.Command{
		Use:   "seller",
		Short: "Show seller account information",
	}

	sellerRoot.AddCommand(
		sellerReadCmd("get", "Show the seller profile", (*cdiscount.SellerAPI).GetSeller),
		sellerReadCmd("addresses", "List the seller's addresses", (*cdiscount.SellerAPI).GetAddresses),
		sellerReadCmd("indicators", "Show performance indicators", (*cdiscount.SellerAPI).GetIndicators),
		sellerReadCmd("delivery-modes", "List configured delivery modes", (*cdiscount.SellerAPI).GetDeliveryModes),
	)

	return sellerRoot
}

func sellerReadCmd(
	use, short string,
	read func(*cdiscount.SellerAPI, context.Context) (*cdiscount.Response, error),
) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Close()

			resp, err := read(c.Seller(), cmd.Context())
			if err != nil {
				return err
			}
			return printResponse(cmd.OutOrStdout(), resp)
		},
	}
}
