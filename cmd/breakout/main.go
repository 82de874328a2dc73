// breakout is a Breakout clone for the terminal.
//
// Usage:
//
//	breakout [flags]             - Play
//	breakout scores              - Show high scores
//	breakout levels              - List built-in and custom levels
//	breakout serve               - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 50)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.breakout/scores.db)
//	--log-file <path>   - Set log file (default: ~/.breakout/breakout.log)
//	--log-level <name>  - Set log level (debug, info, warn, error)
//	--levels-dir <path> - Load custom levels (default: ~/.breakout/levels)
//
// Every flag can also be set through the environment as BREAKOUT_<FLAG>,
// for example BREAKOUT_LOG_LEVEL=debug.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/logging"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// envPrefix namespaces environment overrides.
const envPrefix = "BREAKOUT"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// settings reads flag values layered over BREAKOUT_* environment variables.
type settings struct {
	v *viper.Viper
}

func newSettings() settings {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return settings{v: v}
}

func (s settings) String(key string) string { return cast.ToString(s.v.Get(key)) }
func (s settings) Int(key string) int       { return cast.ToInt(s.v.Get(key)) }
func (s settings) Int64(key string) int64   { return cast.ToInt64(s.v.Get(key)) }
func (s settings) Bool(key string) bool     { return cast.ToBool(s.v.Get(key)) }

func newRootCmd() *cobra.Command {
	s := newSettings()

	rootCmd := &cobra.Command{
		Use:   "breakout",
		Short: "Breakout in your terminal",
		Long: `Breakout in your terminal: bounce the ball off the paddle and clear the wall.

Controls:
  h/a/Left    - Move paddle left
  l/d/Right   - Move paddle right
  Space       - Begin / launch the ball
  P/Esc       - Pause
  R           - Restart
  Q/Ctrl+C    - Quit
  Ctrl+S      - Save a text screenshot

Examples:
  breakout
  breakout -w 80 -h 24
  breakout --fill --mode campaign
  breakout --level pyramid --difficulty hard
  breakout scores
  breakout serve --ssh :2222`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return s.v.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd, s)
		},
	}

	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.Int("fps", core.DefaultConfig().TickRate, "Tick rate (ticks per second)")
	pf.Int64("seed", 0, "RNG seed (0 = random based on time)")
	pf.String("db", storage.DefaultPath, "Path to scores database")
	pf.String("log-file", logging.DefaultPath, "Path to log file (empty disables logging)")
	pf.String("log-level", "info", "Log level: debug, info, warn, error")
	pf.String("levels-dir", breakout.DefaultLevelDir, "Directory of custom level files (*.yaml)")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(newScoresCmd(s))
	rootCmd.AddCommand(newLevelsCmd(s))
	rootCmd.AddCommand(newServeCmd(s))

	return rootCmd
}
