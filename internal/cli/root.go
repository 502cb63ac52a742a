package cli

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"uploadhub/internal/config"
	"uploadhub/internal/logging"

	"github.com/spf13/cobra"
)

var (
	// Version info
	Version   = "1.0.0"
	StartTime time.Time

	// Global config object populated by flags/env/file
	cfg *config.Config

	// Flags
	cfgFile      string
	logLevel     string
	port         int
	saveDir      string
	modeStr      string
	owner        string
	auditEnabled bool
)

// RootCmd represents the base command when called without any subcommands.
// It starts the HTTP upload receiver.
var RootCmd = &cobra.Command{
	Use:   "uploadhub",
	Short: "HTTP multipart file-upload receiver",
	Long:  `Accepts multipart form uploads over HTTP and writes each file into a configured directory, optionally applying permission bits and an owning user.`,
	// PersistentPreRunE loads the configuration before any command runs.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
	// RunE executes the main server logic.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	StartTime = time.Now()

	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Define flags.
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config_path", "config.toml", "Path to the base configuration file. (Env: UPLOADHUB_CONFIG_PATH)")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Logging level (debug, info, warn, error). (Env: UPLOADHUB_LOG_LEVEL)")

	// Server-specific flags
	RootCmd.Flags().IntVarP(&port, "port", "p", 0, "Port for the HTTP server. (Env: UPLOADHUB_PORT)")
	RootCmd.Flags().StringVarP(&saveDir, "save-dir", "s", "", "Directory uploaded files are written to; created if absent. (Env: UPLOADHUB_SAVE_DIR)")
	RootCmd.Flags().StringVar(&modeStr, "mode", "", "Octal permission bits applied to saved files, e.g. '644'. (Env: UPLOADHUB_MODE)")
	RootCmd.Flags().StringVar(&owner, "owner", "", "Owning user applied to saved files via the chown helper. (Env: UPLOADHUB_OWNER)")
	RootCmd.Flags().BoolVar(&auditEnabled, "audit-enabled", false, "Enable detailed audit logging. (Env: UPLOADHUB_AUDIT_ENABLED=true)")
}

// initializeConfig loads and overrides configuration values.
func initializeConfig(cmd *cobra.Command) error {
	// 1. Check environment variable for config path first
	if envPath := os.Getenv("UPLOADHUB_CONFIG_PATH"); envPath != "" && cfgFile == "config.toml" {
		cfgFile = envPath
	}

	var err error
	cfg, err = config.LoadConfig(cfgFile)
	if err != nil {
		if os.IsNotExist(err) {
			// Create empty config if not found, rely on defaults/flags
			cfg = &config.Config{}
		} else {
			return fmt.Errorf("failed to load configuration from %s: %w", cfgFile, err)
		}
	}

	// 2. Apply Overrides (Env Vars and CLI Flags)
	applyOverrides(cfg, cmd)

	// 3. Validate
	if err := cfg.ParseAndValidate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// 4. Initialize Logging
	logging.Init(cfg.Logging.Level)

	return nil
}

func applyOverrides(c *config.Config, cmd *cobra.Command) {
	getEnv := func(key string) string {
		return os.Getenv(key)
	}

	// --- 1. Environment Variables ---
	if v := getEnv("UPLOADHUB_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := getEnv("UPLOADHUB_SAVE_DIR"); v != "" {
		c.Storage.SaveDir = v
	}
	if v := getEnv("UPLOADHUB_MODE"); v != "" {
		c.Storage.Mode = v
	}
	if v := getEnv("UPLOADHUB_OWNER"); v != "" {
		c.Storage.Owner = v
	}
	if v := getEnv("UPLOADHUB_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := getEnv("UPLOADHUB_AUDIT_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Logging.AuditEnabled = b
		}
	}

	// --- 2. CLI Flags (Take precedence) ---
	if port != 0 {
		c.Server.Port = port
	}
	if saveDir != "" {
		c.Storage.SaveDir = saveDir
	}
	if modeStr != "" {
		c.Storage.Mode = modeStr
	}
	if owner != "" {
		c.Storage.Owner = owner
	}
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	// Check if flag was explicitly set
	if cmd.Flags().Changed("audit-enabled") {
		c.Logging.AuditEnabled = auditEnabled
	}

	// --- 3. Defaults ---
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Storage.ChownHelper == "" {
		c.Storage.ChownHelper = "chown"
	}
}
