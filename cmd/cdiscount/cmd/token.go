package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func tokenCmd() *cobra.Command {
	tokenRoot := &cobra.Command{
		Use:   "token",
		Short: "Inspect and manage the cached access token",
		Long: "Inspect and manage the access token cached in memory and in the\n" +
			"persistent token cache shared by every process using the same client id.",
	}

	tokenRoot.AddCommand(
		tokenInfoCmd(),
		tokenGetCmd(),
		tokenRefreshCmd(),
		tokenClearCmd(),
	)

	return tokenRoot
}

func tokenInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the state of the token cache",
		Example: `  cdiscount token info
  cdiscount token info --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Close()

			info := c.TokenInfo(cmd.Context())
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), info)
			}
			return printTokenInfo(cmd.OutOrStdout(), info)
		},
	}
}

func tokenGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Print a valid access token, exchanging credentials if needed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Close()

			token, err := c.Authenticate(cmd.Context(), false)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
}

func tokenRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Discard the cached token and request a new one",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Close()

			if _, err := c.RefreshToken(cmd.Context()); err != nil {
				return err
			}
			info := c.TokenInfo(cmd.Context())
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), info)
			}
			return printTokenInfo(cmd.OutOrStdout(), info)
		},
	}
}

func tokenClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove this client's token from the cache",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Close()

			if err := c.ClearToken(cmd.Context()); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "Token cleared.")
			return err
		},
	}
}
