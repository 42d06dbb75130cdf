package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathmap/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "mathmap",
	Short: "Grade-six math review knowledge graph",
	Long: "mathmap — browse the grade-six math review knowledge graph and generate\n" +
		"templated review plans from a student's weak topics.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MATHMAP_DB env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides MATHMAP_LOG_LEVEL env var)")

	rootCmd.AddCommand(topicCmd)
	rootCmd.AddCommand(roadmapCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(plansCmd)
	rootCmd.AddCommand(masterCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MATHMAP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// setupLogging installs a text handler on stderr at the level from
// --log-level, then MATHMAP_LOG_LEVEL, defaulting to warn.
func setupLogging(cmd *cobra.Command) error {
	name, _ := cmd.Flags().GetString("log-level")
	if name == "" {
		name = os.Getenv("MATHMAP_LOG_LEVEL")
	}
	level, err := parseLevel(name)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	return nil
}

func parseLevel(name string) (slog.Level, error) {
	if name == "" {
		return slog.LevelWarn, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(name))); err != nil {
		return 0, fmt.Errorf("invalid log level %q", name)
	}
	return level, nil
}
