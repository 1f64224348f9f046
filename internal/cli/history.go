package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/langcode/langcode/internal/config"
	"github.com/langcode/langcode/internal/history"
	"github.com/langcode/langcode/internal/storage/sqlite"
	"github.com/langcode/langcode/pkg/types"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var historyLimit int

// initStorage initializes the SQLite storage from config.
func initStorage(ctx context.Context, cfg *config.Config) (*sqlite.SQLiteStorage, error) {
	storagePath := cfg.Storage.Path
	if storagePath == "./langcode.db" {
		storagePath = config.GetDefaultStoragePath()
	}

	if err := config.EnsureStorageDir(storagePath); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	store, err := sqlite.New(storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	if err := store.Init(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	return store, nil
}

// historyManager loads config and opens the history manager. The returned
// close func releases the underlying storage.
func historyManager(ctx context.Context) (*history.Manager, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	store, err := initStorage(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return history.NewManager(store), func() { store.Close() }, nil
}

// historyCmd lists past lookups; subcommands manage individual entries.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List and manage past lookups",
	Long:  `List past lookups, show a single entry, or remove entries.`,
	Run:   runHistoryList,
}

// historyShowCmd shows a single history entry.
var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a history entry",
	Long:  `Show a single history entry by ID or ID prefix.`,
	Args:  cobra.ExactArgs(1),
	Run:   runHistoryShow,
}

// historyRmCmd deletes a single history entry.
var historyRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a history entry",
	Long:    `Delete a single history entry by ID or ID prefix.`,
	Args:    cobra.ExactArgs(1),
	Run:     runHistoryDelete,
}

// historyClearCmd deletes all history entries.
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all history entries",
	Run:   runHistoryClear,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "maximum entries to list (default from config)")
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyRmCmd)
	historyCmd.AddCommand(historyClearCmd)
}

func runHistoryList(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		exitError("failed to load config: %v", err)
	}

	store, err := initStorage(ctx, cfg)
	if err != nil {
		exitError("%v", err)
	}
	defer store.Close()

	limit := historyLimit
	if limit <= 0 {
		limit = cfg.History.Limit
	}

	entries, err := history.NewManager(store).List(ctx, limit)
	if err != nil {
		exitError("failed to list history: %v", err)
	}

	if len(entries) == 0 {
		if outputJSON || outputYAML {
			fmt.Println("[]")
		} else {
			fmt.Println("No lookups recorded.")
		}
		return
	}

	if printFormatted(entries) {
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Query", "Tag", "Name", "When"})
	table.SetBorder(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for _, entry := range entries {
		query := entry.Query
		if len(query) > 30 {
			query = query[:27] + "..."
		}
		name := entry.Name
		if len(name) > 30 {
			name = name[:27] + "..."
		}

		table.Append([]string{
			entry.ID[:8],
			query,
			entry.Tag,
			name,
			entry.CreatedAt.Local().Format("2006-01-02 15:04"),
		})
	}
	table.Render()
}

func runHistoryShow(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	mgr, closeStore, err := historyManager(ctx)
	if err != nil {
		exitError("%v", err)
	}
	defer closeStore()

	entry, err := mgr.Get(ctx, args[0])
	if err != nil {
		exitError("failed to get history entry: %v", err)
	}
	if entry == nil {
		exitError("no history entry matching %q", args[0])
	}

	if printFormatted(entry) {
		return
	}
	printHistoryEntry(entry)
}

func printHistoryEntry(entry *types.HistoryEntry) {
	fmt.Printf("ID: %s\n", entry.ID)
	fmt.Printf("Query: %s\n", entry.Query)
	fmt.Printf("Tag: %s\n", entry.Tag)
	if entry.Name != "" {
		fmt.Printf("Name: %s\n", entry.Name)
	}
	if entry.LikelyScript != "" {
		fmt.Printf("Likely script: %s\n", entry.LikelyScript)
	}
	if entry.Mode != "" {
		fmt.Printf("Mode: %s\n", entry.Mode)
	}
	fmt.Printf("When: %s\n", entry.CreatedAt.Local().Format("2006-01-02 15:04:05"))
}

func runHistoryDelete(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	mgr, closeStore, err := historyManager(ctx)
	if err != nil {
		exitError("%v", err)
	}
	defer closeStore()

	if err := mgr.Delete(ctx, args[0]); err != nil {
		exitError("%v", err)
	}
	fmt.Println("Deleted.")
}

func runHistoryClear(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	mgr, closeStore, err := historyManager(ctx)
	if err != nil {
		exitError("%v", err)
	}
	defer closeStore()

	n, err := mgr.Clear(ctx)
	if err != nil {
		exitError("failed to clear history: %v", err)
	}
	fmt.Printf("Removed %d entries.\n", n)
}
