package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hotloop/hotloop/internal/common"
	"github.com/hotloop/hotloop/internal/kernel/reduce"
)

var cfgFile string

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "hotloop",
	Short: "CPU micro-kernel benchmark harness",
	Long: `Hotloop times paired CPU optimization micro-kernels against each
other: branchy versus branch-free reduction, carried-dependency versus
hoisted loops, traversal orders and dispatch shapes.

Every optimized kernel has a naive twin with identical semantics; runs
cross-check the pair's results while timing them.`,
	Version: common.Version,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.hotloop/config.yaml)")
	rootCmd.PersistentFlags().Int("size", 1<<16, "elements per kernel op")
	rootCmd.PersistentFlags().Int("iters", 100, "timed iterations per variant")
	rootCmd.PersistentFlags().Int64("threshold", reduce.DefaultThreshold, "threshold for the even-sum reducer")

	viper.BindPFlag("size", rootCmd.PersistentFlags().Lookup("size"))
	viper.BindPFlag("iters", rootCmd.PersistentFlags().Lookup("iters"))
	viper.BindPFlag("threshold", rootCmd.PersistentFlags().Lookup("threshold"))
}

// initConfig reads in config file and HOTLOOP_* environment variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			os.Exit(1)
		}

		viper.AddConfigPath(home + "/.hotloop")
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("HOTLOOP")
	viper.AutomaticEnv()

	// A missing config file is fine; flags and env cover everything
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
			os.Exit(1)
		}
	}
}
