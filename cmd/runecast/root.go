package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lixenwraith/runecast/config"
)

var (
	cfgFile string
	v       = viper.New()
	cfg     *config.Config
	logFile *os.File
)

var rootCmd = &cobra.Command{
	Use:   "runecast",
	Short: "Trace spell runes with the mouse in your terminal",
	Long: `runecast is a gesture-casting minigame. Pick a spell with the number keys,
then drag the left mouse button along its glowing guide before the timer runs out.
The closer you trace, the harder it hits.

Running 'runecast' without a subcommand starts a game.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE:              runPlay,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (toml or yaml)")
	pf.Bool(config.KeyDebug, false, "write debug log to logs/runecast.log")
	pf.String(config.KeyCatalog, "", "spell catalog file (yaml, toml or json); built-in catalog when empty")
	pf.String(config.KeyHistoryDB, "", "cast history database (default runecast.db)")

	v.BindPFlag(config.KeyDebug, pf.Lookup(config.KeyDebug))
	v.BindPFlag(config.KeyCatalog, pf.Lookup(config.KeyCatalog))
	v.BindPFlag(config.KeyHistoryDB, pf.Lookup(config.KeyHistoryDB))

	addPlayFlags(rootCmd)
	rootCmd.AddCommand(playCmd, catalogCmd, historyCmd)
}

func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(v, cfgFile)
	if err != nil {
		return err
	}
	logFile = setupLogging(cfg.Debug)
	return nil
}
