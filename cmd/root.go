package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "orbit",
	Short: "Habit and goal tracker with live progress evaluation",
	Long:  "Orbit tracks habits and metrics against goals: log entries, attach goals of ten kinds, and watch progress from the CLI or the live dashboard.",
	RunE:  runRootDefault,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .orbit.yaml)")
	rootCmd.PersistentFlags().String("db", "", "database path (default .orbit/orbit.db)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	viper.BindPFlag("db_path", rootCmd.PersistentFlags().Lookup("db"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".orbit")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("ORBIT")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// launchDashboard delegates the default run to the tui flow. The
// executing command carries the context; tuiCmd itself never ran, so
// its context would be nil. Tests swap this out.
var launchDashboard = func(cmd *cobra.Command) error {
	return runTUI(cmd, nil)
}

// runRootDefault auto-launches the dashboard when the database already
// exists in the cwd. Fresh directories fall back to showing help.
func runRootDefault(cmd *cobra.Command, args []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return cmd.Help()
	}
	cfg := loadConfig()
	dbPath := cfg.DBPath
	if !filepath.IsAbs(dbPath) {
		dbPath = filepath.Join(wd, dbPath)
	}
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return cmd.Help()
	}
	return launchDashboard(cmd)
}
