package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/langcode/langcode/internal/config"
	"github.com/langcode/langcode/internal/history"
	"github.com/langcode/langcode/internal/langtag"
	"github.com/langcode/langcode/pkg/types"
	"github.com/spf13/cobra"
)

func runLookup(cmd *cobra.Command, args []string) {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		exitError("expected a non-empty query")
	}

	res, err := langtag.Resolve(query)
	if err != nil {
		exitError("%v", err)
	}

	recordLookup(res)

	if printFormatted(res) {
		return
	}
	if lookupSimple {
		fmt.Println(res.SimpleLine())
		return
	}
	printResolution(res)
}

// printResolution prints the default multi-line result.
func printResolution(res *types.Resolution) {
	fmt.Printf("Tag: %s\n", res.Tag)
	fmt.Printf("Name: %s\n", res.Name)
	if res.Language != "" {
		fmt.Printf("Language: %s\n", res.Language)
	}
	if res.Script != "" {
		fmt.Printf("Script: %s\n", res.Script)
	}
	if res.Territory != "" {
		fmt.Printf("Territory: %s\n", res.Territory)
	}
	if res.LikelyScriptName != "" {
		fmt.Printf("Likely script: %s (%s)\n", res.LikelyScript, res.LikelyScriptName)
	} else {
		fmt.Printf("Likely script: %s\n", res.LikelyScript)
	}
	if len(res.Related) > 0 {
		fmt.Println("Identical or near-identical codes:")
		for _, r := range res.Related {
			fmt.Printf("  - %s: %s\n", r.Code, r.Name)
		}
	}
}

// recordLookup stores the lookup in the history. History failures never
// break a lookup; they produce a warning at most.
func recordLookup(res *types.Resolution) {
	if lookupNoRecord {
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		return
	}
	if !cfg.History.Enabled {
		return
	}

	ctx := context.Background()
	store, err := initStorage(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: history unavailable: %v\n", err)
		return
	}
	defer store.Close()

	if _, err := history.NewManager(store).Record(ctx, res, lookupSimple); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to record lookup: %v\n", err)
	}
}
