package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cloudnepal/Clipboard/pkg/clipboard"
	"github.com/cloudnepal/Clipboard/pkg/config"
	"github.com/cloudnepal/Clipboard/pkg/logging"
)

var (
	clipboardName string
	entryRank     int
	configPath    string
	debugLogs     bool
)

// rootCmd is the base command when cb is called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "cb",
	Short: "Cut, copy, and paste anything, anytime, all from the terminal",
	Long: `cb keeps a versioned history of everything you copy. Each named
clipboard stores its entries on the local filesystem, safe against
concurrent use from independent processes, with configurable retention
budgets bounding how much history is kept.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !debugLogs {
			return nil
		}
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		_, err = logging.Enable(filepath.Join(homeDir, ".clipboard", "logs"))
		return err
	},
}

// Execute runs the command tree. Errors are returned to main, which prints
// them through the printer; cobra's own printing stays silenced.
func Execute() error {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&clipboardName, "clipboard", "c", "0", "clipboard name")
	rootCmd.PersistentFlags().IntVarP(&entryRank, "entry", "e", 0, "history entry rank, 0 = newest")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&debugLogs, "debug", false, "write debug logs to a session file")
	rootCmd.AddCommand(copyCmd, pasteCmd, showCmd, historyCmd, noteCmd, trimCmd, clearCmd)
}

// openClipboard loads the configuration and opens the selected clipboard at
// the given rank.
func openClipboard(rank int) (*clipboard.Clipboard, *config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	res, err := clipboard.NewResolver(clipboard.ResolverOptions{
		PersistentDir:   cfg.PersistentDir,
		TemporaryDir:    cfg.TemporaryDir,
		AlwaysPersist:   cfg.AlwaysPersist,
		PersistPatterns: cfg.PersistPatterns,
	})
	if err != nil {
		return nil, nil, err
	}
	cb, err := clipboard.Open(res, clipboardName, rank)
	if err != nil {
		return nil, nil, err
	}
	return cb, cfg, nil
}
