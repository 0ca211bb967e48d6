package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iudanet/pairsync/internal/session"
)

var (
	cfgFile  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "pairsync",
	Short: "Peer-to-peer offline-first state synchronization engine",
	Long: `pairsync keeps two application instances in sync without a central
server: on connect both peers exchange full snapshots, merge them
deterministically and then replicate individual mutations.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(demoCmd)

	cobra.OnInitialize(initConfig)
}

// initConfig загружает конфигурацию сессии: значения по умолчанию,
// затем файл конфигурации (если задан), затем переменные окружения
// с префиксом PAIRSYNC.
func initConfig() {
	defaults := session.DefaultConfig()
	viper.SetDefault("heartbeat-interval", defaults.HeartbeatInterval)
	viper.SetDefault("liveness-interval", defaults.LivenessInterval)
	viper.SetDefault("heartbeat-timeout", defaults.HeartbeatTimeout)
	viper.SetDefault("reconnect-step", defaults.ReconnectStep)
	viper.SetDefault("sync-settle-delay", defaults.SyncSettleDelay)
	viper.SetDefault("max-reconnect-attempts", defaults.MaxReconnectAttempts)

	viper.SetEnvPrefix("PAIRSYNC")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read config file: %v\n", err)
			os.Exit(1)
		}
	}
}

// sessionConfig собирает session.Config из viper.
func sessionConfig() (session.Config, error) {
	var cfg session.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return session.Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// buildLogger создает slog логгер с заданным уровнем.
func buildLogger() *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pairsync\n")
		fmt.Printf("Version:    %s\n", Version)
		fmt.Printf("Build Date: %s\n", BuildDate)
		fmt.Printf("Git Commit: %s\n", GitCommit)
	},
}
