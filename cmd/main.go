package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quarklabs/taskline/cmd/cli"
	"github.com/quarklabs/taskline/internal/core/config"
	"github.com/quarklabs/taskline/pkg/logger"
)

var (
	logMode    string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "taskline",
	Short: "Taskline worker",
	Long:  `A line-oriented task-execution worker: JSON tasks in on stdin, JSON results out on stdout`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		switch logMode {
		case "debug", "pretty", "info", "prod", "test":
			logger.InitWithMode(logger.LogMode(logMode))
		default:
			logger.InitWithMode(logger.LogModePretty)
		}
		if configPath != "" {
			config.GetConfigManager().SetConfigPath(configPath)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		cli.RunWorker()
	},
}

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Start the task worker",
	Run: func(cmd *cobra.Command, args []string) {
		cli.RunWorker()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logMode, "log", "pretty", "Log mode: debug, pretty, info, prod, test")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (optional)")
}

func main() {
	rootCmd.AddCommand(workerCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
