// Package cmd implements the cdiscount CLI commands.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/donaldgifford/cdiscount-sdk/pkg/cdiscount"
)

// optionKeys are the configuration keys passed through to the client.
// Each can come from a flag, a CDISCOUNT_* variable or the config file.
var optionKeys = []string{
	"client_id",
	"client_secret",
	"grant_type",
	"base_url_token",
	"base_url",
	"seller_id",
	"timeout",
	"debug",
	"token_cache_path",
	"token_cache_backend",
	"redis_url",
	"redis_key_prefix",
	"tracing",
	"log_level",
	"log_format",
}

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "cdiscount",
		Short: "CLI for the Cdiscount / Octopia seller API",
		Long: "cdiscount is a command-line client for the Octopia seller API.\n" +
			"It manages the cached access token and reads seller, order,\n" +
			"offer and discussion data from the terminal.",
		SilenceUsage: true,
	}
)

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default $HOME/.cdiscount.yaml)")
	rootCmd.PersistentFlags().
		String("seller-id", "", "SellerId header sent with every call")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")
	rootCmd.PersistentFlags().
		String("token-cache", "", "token cache file path")
	rootCmd.PersistentFlags().
		Bool("debug", false, "log requests and token activity to stderr")

	cobra.CheckErr(viper.BindPFlag("seller_id", rootCmd.PersistentFlags().Lookup("seller-id")))
	cobra.CheckErr(viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")))
	cobra.CheckErr(viper.BindPFlag("token_cache_path", rootCmd.PersistentFlags().Lookup("token-cache")))
	cobra.CheckErr(viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug")))

	rootCmd.AddCommand(tokenCmd())
	rootCmd.AddCommand(sellerCmd())
	rootCmd.AddCommand(ordersCmd())
	rootCmd.AddCommand(offersCmd())
	rootCmd.AddCommand(discussionsCmd())
	rootCmd.AddCommand(rawCmd())
	rootCmd.AddCommand(versionCmd())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".cdiscount")
	}

	viper.SetEnvPrefix("CDISCOUNT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	for _, key := range optionKeys {
		cobra.CheckErr(viper.BindEnv(key))
	}

	if err := viper.ReadInConfig(); err == nil && viper.GetBool("debug") {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// clientOptions collects the option keys that have a value from any
// source.
func clientOptions(v *viper.Viper) map[string]any {
	m := map[string]any{}
	for _, key := range optionKeys {
		if v.IsSet(key) {
			m[key] = v.Get(key)
		}
	}
	// An empty flag default must not override the library default.
	if p, ok := m["token_cache_path"].(string); ok && p == "" {
		delete(m, "token_cache_path")
	}
	return m
}

func newClient(ctx context.Context) (*cdiscount.Client, error) {
	return cdiscount.NewFromMap(ctx, clientOptions(viper.GetViper()))
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
