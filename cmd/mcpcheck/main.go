package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quantmind-br/mcpcheck-go/internal/app"
	"github.com/quantmind-br/mcpcheck-go/internal/config"
	"github.com/quantmind-br/mcpcheck-go/internal/utils"
	"github.com/quantmind-br/mcpcheck-go/pkg/version"
)

var (
	cfgFile string
	verbose bool
	log     *utils.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mcpcheck [origin]",
	Short: "Detect and validate WebMCP capability manifests",
	Long: `mcpcheck checks whether a web origin publishes a capability manifest
at /.well-known/webmcp.json and validates it against the manifest schema.

Pass one origin for a single check, or use the batch subcommand to check
a list of origins and export the results as CSV.`,
	Version: version.Short(),
	Args:    cobra.MaximumNArgs(1),
	RunE:    runCheck,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		fmt.Sprintf("config file (default is %s)", config.ConfigFilePath()))
	rootCmd.PersistentFlags().Duration("timeout", config.DefaultTimeout, "Request timeout")
	rootCmd.PersistentFlags().String("user-agent", "", "Custom User-Agent")
	rootCmd.PersistentFlags().String("proxy", "", "Proxy URL")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("http.timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	_ = viper.BindPFlag("http.user_agent", rootCmd.PersistentFlags().Lookup("user-agent"))
	_ = viper.BindPFlag("http.proxy_url", rootCmd.PersistentFlags().Lookup("proxy"))

	// Add subcommands
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

// setup loads configuration and initializes the logger
func setup() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logLevel := cfg.Logging.Level
	if verbose {
		logLevel = "debug"
	}
	utils.SetGlobalLevel(logLevel)
	log = utils.NewLogger(utils.LoggerOptions{
		Level:   logLevel,
		Format:  cfg.Logging.Format,
		Verbose: verbose,
	})

	return cfg, nil
}

func newChecker(cfg *config.Config) (*app.Checker, error) {
	return app.NewChecker(app.CheckerOptions{
		Timeout:   cfg.HTTP.Timeout,
		UserAgent: cfg.HTTP.UserAgent,
		ProxyURL:  cfg.HTTP.ProxyURL,
		Logger:    log,
	})
}

// originArg extracts the required origin argument. Invoking the root
// command without one is a usage error, not a help request.
func originArg(args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("an origin argument is required (see --help)")
	}
	return args[0], nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	origin, err := originArg(args)
	if err != nil {
		return err
	}

	cfg, err := setup()
	if err != nil {
		return err
	}

	checker, err := newChecker(cfg)
	if err != nil {
		return err
	}

	start := time.Now()
	outcome := checker.Check(context.Background(), origin)
	checker.Close()

	log.Debug().Dur("elapsed", time.Since(start)).Msg("check finished")

	printOutcome(os.Stdout, outcome)

	if code := singleExitCode(outcome); code != 0 {
		os.Exit(code)
	}
	return nil
}
