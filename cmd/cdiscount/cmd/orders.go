package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/cdiscount-sdk/pkg/cdiscount"
)

var orderColumns = []string{"id", "reference", "status", "salesChannel", "createdAt"}

type orderFilters struct {
	status       string
	salesChannel string
	since        time.Duration
	page         cdiscount.PageOptions
}

func (f *orderFilters) register(cmd *cobra.Command, withPaging bool) {
	cmd.Flags().StringVar(&f.status, "status", "", "filter by order status")
	cmd.Flags().StringVar(&f.salesChannel, "sales-channel", "", "filter by sales channel")
	cmd.Flags().DurationVar(&f.since, "updated-since", 0, "only orders updated within this duration (e.g. 24h)")
	if withPaging {
		cmd.Flags().IntVar(&f.page.PageIndex, "page-index", 0, "page index")
		cmd.Flags().IntVar(&f.page.PageSize, "page-size", 0, "page size")
	}
}

func (f *orderFilters) params(now time.Time) cdiscount.Params {
	var updated cdiscount.DateRange
	if f.since > 0 {
		updated.Min = now.Add(-f.since)
	}
	return cdiscount.MergeParams(
		cdiscount.Params{"status": f.status, "salesChannel": f.salesChannel},
		updated.Params("", ""),
		f.page.Params(),
	)
}

func ordersCmd() *cobra.Command {
	ordersRoot := &cobra.Command{
		Use:   "orders",
		Short: "Query orders",
	}

	ordersRoot.AddCommand(
		ordersListCmd(),
		ordersGetCmd(),
		ordersCountCmd(),
	)

	return ordersRoot
}

func ordersListCmd() *cobra.Command {
	var (
		filters orderFilters
		all     bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders",
		Example: `  cdiscount orders list --status WaitingAcceptance
  cdiscount orders list --updated-since 24h --page-size 50
  cdiscount orders list --all --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Close()

			resp, err := c.Orders().GetOrders(cmd.Context(), filters.params(time.Now()))
			if err != nil {
				return err
			}
			if !all {
				if jsonOutput() {
					return outputJSON(cmd.OutOrStdout(), resp.Data)
				}
				return printItemsTable(cmd.OutOrStdout(), resp, orderColumns...)
			}

			var items []any
			_, err = c.Paginator().Paginate(cmd.Context(), resp, func(p *cdiscount.Response) (bool, error) {
				items = append(items, p.Items()...)
				return true, nil
			})
			if err != nil {
				return err
			}
			return outputJSON(cmd.OutOrStdout(), items)
		},
	}

	filters.register(cmd, true)
	cmd.Flags().BoolVar(&all, "all", false, "follow next-page links and print every order as JSON")

	return cmd
}

func ordersGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show one order",
		Example: `  cdiscount orders get 2501161820ABCD`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Close()

			resp, err := c.Orders().GetOrder(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printResponse(cmd.OutOrStdout(), resp)
		},
	}
}

func ordersCountCmd() *cobra.Command {
	var filters orderFilters

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count orders matching the filters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Close()

			resp, err := c.Orders().GetOrdersCount(cmd.Context(), filters.params(time.Now()))
			if err != nil {
				return err
			}
			return printResponse(cmd.OutOrStdout(), resp)
		},
	}

	filters.register(cmd, false)

	return cmd
}
