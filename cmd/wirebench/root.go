package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/appnet-org/wirebench/pkg/logging"
)

const version = "0.1.0"

var (
	cfgIterations int
	cfgReportDir  string
	cfgFailFast   bool

	// rootCmd runs the full cross-format comparison when called without a
	// subcommand.
	rootCmd = &cobra.Command{
		Use:   "wirebench",
		Short: "cross-format serialization benchmark harness",
		Long: `wirebench measures serialization, full deserialization, and zero-copy
field traversal of one canonical object across MessagePack, Cap'n Proto,
FlatBuffers, Protobuf, and JSON. Every flag can also be set through a
WIREBENCH_<FLAG> environment variable (e.g. WIREBENCH_ITERATIONS=5000).`,
		SilenceUsage:      true,
		PersistentPreRunE: processConfig,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := compare(cmd.OutOrStdout()); err != nil {
				logging.Fatal("benchmark failed", zap.Error(err))
			}
			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of wirebench",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("wirebench v%s\n", version)
		},
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(msgpackCmd)
	rootCmd.AddCommand(versionCmd)

	key := "iterations"
	rootCmd.PersistentFlags().Int(key, 100000, "timed iterations per run (a tenth of this warms up untimed)")

	key = "report-dir"
	rootCmd.PersistentFlags().String(key, ".", "directory the report files are written into")

	key = "fail-fast"
	rootCmd.PersistentFlags().Bool(key, true, "abort on the first error inside a timed loop instead of ignoring it")

	key = "log-level"
	rootCmd.PersistentFlags().String(key, "info", "log level (debug, info, warn, error)")

	key = "log-format"
	rootCmd.PersistentFlags().String(key, "console", "log encoding (console, json)")
}

// processConfig binds the flags to viper and moves the resolved values into
// the package configuration, then brings up the logger they describe.
func processConfig(cmd *cobra.Command, _ []string) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	cfgIterations = viper.GetInt("iterations")
	cfgReportDir = viper.GetString("report-dir")
	cfgFailFast = viper.GetBool("fail-fast")

	if cfgIterations <= 0 {
		return fmt.Errorf("iterations must be positive, got %d", cfgIterations)
	}

	return logging.Init(&logging.Config{
		Level:  viper.GetString("log-level"),
		Format: viper.GetString("log-format"),
	})
}

// initConfig loads env files and prepares viper before any command runs.
func initConfig() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	viper.SetEnvPrefix("wirebench")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
