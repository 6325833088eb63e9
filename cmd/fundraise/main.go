// Command fundraise serves the donation API and offers offline checks of the
// donor form rules and funding arithmetic.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/utaipei/fundraising/locales"
	"github.com/utaipei/fundraising/pkg/config"
	"github.com/utaipei/fundraising/pkg/i18n"
)

var (
	envFiles []string
	lang     string
)

var rootCmd = &cobra.Command{
	Use:   "fundraise",
	Short: "University of Taipei donation service",
	Long: `fundraise serves the campaign's JSON API: donor form validation, project
progress, recognition tiers, honor wall and share links.

The inspection commands run the same rules locally without a server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if len(envFiles) == 0 {
			return nil
		}
		if err := config.LoadEnv(envFiles...); err != nil {
			return fmt.Errorf("load env files: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "Load environment variables from these .env files")
	rootCmd.PersistentFlags().StringVar(&lang, "lang", "zh-TW", "Language for messages (zh-TW or en)")

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address, overrides HTTP_ADDR")
	projectsCmd.Flags().StringVar(&projectsCategory, "category", "", "Only list projects in this category")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(tierCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(projectsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// commandContext is cmd.Context, or Background when the command was not
// started through Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func newTranslator(ctx context.Context, defaultLang string) (*i18n.Translator, error) {
	return i18n.NewTranslator(ctx,
		i18n.NewFSAdapter(i18n.NewYAMLParser(), locales.FS, "."),
		i18n.WithDefaultLanguage(defaultLang),
	)
}
