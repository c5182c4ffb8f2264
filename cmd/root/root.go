// Package root contains the root command for the application.
package root

import (
	"os"

	"github.com/spf13/cobra"

	"mwirth/statement-csv/internal/classifier"
	"mwirth/statement-csv/internal/common"
	"mwirth/statement-csv/internal/config"
	"mwirth/statement-csv/internal/extractor"
	"mwirth/statement-csv/internal/labeler"
	"mwirth/statement-csv/internal/logging"
	"mwirth/statement-csv/internal/store"
)

// CommonFlags represents the flags shared by multiple commands.
type CommonFlags struct {
	Input  string
	Output string
	Format string
}

var (
	// Log is the shared logger instance for commands.
	Log = logging.GetLogger()

	// Cfg is the loaded application configuration, available after
	// PersistentPreRun.
	Cfg *config.Config

	// SharedFlags are the persistent flags accessible to all commands.
	SharedFlags = CommonFlags{}

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "statement-csv",
		Short: "A CLI tool to extract transactions from bank statement text and label them with spending categories.",
		Long: `statement-csv parses raw bank statement text into structured transactions
and labels them with spending categories using a configurable rule table.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("welcome to statement-csv")
			Log.Info("use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.WithError(err).Fatal("failed to initialize configuration")
			}
			Cfg = cfg
			Log = config.ConfigureLogging(cfg)

			extractor.SetLogger(Log)
			classifier.SetLogger(Log)
			labeler.SetLogger(Log)
			store.SetLogger(Log)
			common.SetLogger(Log)

			if delim := os.Getenv("CSV_DELIMITER"); delim != "" {
				common.SetDelimiter([]rune(delim)[0])
			} else if cfg.CSV.Delimiter != "" {
				common.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
			}

			ruleStore := store.NewRuleStore(cfg.Rules.File, cfg.Rules.FormatsFile)
			if err := ruleStore.LoadFormats(); err != nil {
				Log.WithError(err).Fatal("failed to load custom statement formats")
			}
		},
	}
)

// RuleStore returns a store over the configured rule and format files.
func RuleStore() *store.RuleStore {
	return store.NewRuleStore(Cfg.Rules.File, Cfg.Rules.FormatsFile)
}

// Init initializes the root command flags.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "", "Statement format name")
}
