package cmd

import (
	"github.com/spf13/cobra"

	"github.com/donaldgifford/cdiscount-sdk/pkg/cdiscount"
)

var discussionColumns = []string{"id", "subject", "orderReference", "isOpen", "updatedAt"}

func discussionsCmd() *cobra.Command {
	discussionsRoot := &cobra.Command{
		Use:   "discussions",
		Short: "Read customer discussions",
	}

	discussionsRoot.AddCommand(
		discussionsListCmd(),
		discussionsGetCmd(),
		discussionsCloseCmd(),
	)

	return discussionsRoot
}

func discussionsListCmd() *cobra.Command {
	var (
		salesChannel  string
		processStatus string
		page          cdiscount.PageOptions
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List discussions",
		Example: `  cdiscount discussions list
  cdiscount discussions list --process-status Open --page-size 20`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Close()

			params := cdiscount.MergeParams(
				cdiscount.Params{"salesChannel": salesChannel, "processStatus": processStatus},
				page.Params(),
			)
			resp, err := c.Discussions().GetDiscussions(cmd.Context(), params)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), resp.Data)
			}
			return printItemsTable(cmd.OutOrStdout(), resp, discussionColumns...)
		},
	}

	cmd.Flags().StringVar(&salesChannel, "sales-channel", "", "filter by sales channel")
	cmd.Flags().StringVar(&processStatus, "process-status", "", "filter by process status")
	cmd.Flags().IntVar(&page.PageIndex, "page-index", 0, "page index")
	cmd.Flags().IntVar(&page.PageSize, "page-size", 0, "page size")

	return cmd
}

func discussionsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one discussion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Close()

			resp, err := c.Discussions().GetDiscussion(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printResponse(cmd.OutOrStdout(), resp)
		},
	}
}

func discussionsCloseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "close <id>",
		Short: "Close a discussion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Close()

			resp, err := c.Discussions().CloseDiscussion(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printResponse(cmd.OutOrStdout(), resp)
		},
	}
}
