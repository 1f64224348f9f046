// Package cli provides the command-line interface for langcode.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	lookupSimple   bool
	lookupNoRecord bool
)

// rootCmd represents the base command. The root command itself performs a
// lookup, so `langcode es-MX` works without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "langcode [query...]",
	Short: "Resolve language tags, ISO codes, and language names",
	Long: `langcode resolves BCP 47 tags, ISO 639 codes, and English language names
into canonical tags, display names, likely writing scripts, and related
tag variants.

The query may span multiple arguments, so quoting is optional.

Examples:
  langcode es-MX                    # Resolve a BCP 47 tag
  langcode spa                      # Resolve an ISO 639 code
  langcode Brazilian Portuguese     # Resolve an English language name
  langcode --simple sv              # One-line output for scripts and prompts
  langcode history                  # List past lookups
  langcode serve --port 8080        # Run the lookup HTTP API`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			cmd.Help()
			return
		}
		runLookup(cmd, args)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().BoolVarP(&lookupSimple, "simple", "s", false, "only show the primary result on one line")
	rootCmd.Flags().BoolVar(&lookupNoRecord, "no-record", false, "do not record this lookup in the history")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&outputYAML, "yaml", false, "output as YAML")
	rootCmd.MarkFlagsMutuallyExclusive("json", "yaml")

	// Add subcommands
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("langcode version 0.1.0")
	},
}

// exitError prints an error message and exits.
func exitError(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
