package cmd

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mathpath/mathpath/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "mathpath",
	Short: "Adaptive math tutor",
	Long:  "MathPath — adaptive math practice for grades 5-6: a knowledge graph, spaced repetition, and AI-generated problems.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPractice(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to SQLite database file (overrides MATHPATH_DB env var)")
	pf.String("log-level", "warn", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// viperFor binds a command's flags and MATHPATH_* environment variables
// to a fresh viper instance.
func viperFor(cmd *cobra.Command) *viper.Viper {
	v := viper.New()
	_ = v.BindPFlags(cmd.Flags())

	v.SetEnvPrefix("MATHPATH")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// newLogger builds the slog logger commands hand to the lower layers.
func newLogger(v *viper.Viper) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(v.GetString("log-level")) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// resolveDBPath returns the database path using the --db flag (highest
// priority), then MATHPATH_DB, then the default XDG path.
func resolveDBPath(v *viper.Viper) (string, error) {
	if p := v.GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves the path and opens the SQLite store.
func openStore(v *viper.Viper) (*store.Store, error) {
	dbPath, err := resolveDBPath(v)
	if err != nil {
		return nil, err
	}
	return store.Open(dbPath)
}
