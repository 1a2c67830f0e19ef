package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"clashview/internal/api"
	"clashview/internal/config"
	"clashview/internal/tui"
	"clashview/pkg/logging"
)

var (
	flagAPIURL   string
	flagSecret   string
	flagInterval time.Duration
	flagDebug    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "clashview",
	Short: "A terminal dashboard for Clash proxies",
	Long: `clashview connects to a Clash (or mihomo) external controller and
shows its proxy groups as a navigable terminal dashboard: latency per
member, current selections, live logs.`,
	// SilenceUsage prevents printing the usage message on errors we
	// already report ourselves (bad config, unreachable controller).
	SilenceUsage: true,
	RunE:         runDashboard,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Called once from main.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "clashview version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())

	rootCmd.Flags().StringVar(&flagAPIURL, "api-url", "", "external controller URL (overrides config)")
	rootCmd.Flags().StringVar(&flagSecret, "secret", "", "controller secret (overrides config)")
	rootCmd.Flags().DurationVar(&flagInterval, "interval", 0, "poll interval (overrides config)")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "log at debug level")
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if flagAPIURL != "" {
		cfg.Controller.URL = flagAPIURL
	}
	if flagSecret != "" {
		cfg.Controller.Secret = flagSecret
	}
	if flagInterval != 0 {
		cfg.Poll.Interval = flagInterval
	}
	if flagDebug {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	client, err := api.New(cfg.Controller.URL, cfg.Controller.Secret)
	if err != nil {
		return err
	}

	appLogs := logging.InitForTUI(logging.ParseLevel(cfg.Log.Level))
	defer logging.Close()
	logging.Info("main", "connecting to %s", cfg.Controller.URL)

	if _, err := tui.NewProgram(cfg, client, appLogs).Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}
