// Package cli implements the aiq command tree. It is the external caller of
// the aiqsdk package: it binds flags, environment and config file into the
// parameters the SDK needs and maps SDK failure kinds to exit codes.
package cli

import (
	"errors"
	"os"

	"github.com/appearnetworks/aiq-sdk-go/pkg/aiqsdk"
	"github.com/appearnetworks/aiq-sdk-go/pkg/slogx"
	"github.com/spf13/cobra"
)

// Exit codes for the aiq CLI, usable from scripts and build hooks.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (transport, malformed response, bad arguments).
	ExitCodeError = 1
	// ExitCodeInvalidInput indicates a required parameter was missing or unusable.
	ExitCodeInvalidInput = 2
	// ExitCodeAuthFailed indicates the supervisor rejected the credentials.
	ExitCodeAuthFailed = 3
)

var rootCmd = &cobra.Command{
	Use:   "aiq",
	Short: "Interact with an AIQ integration supervisor",
	Long: `aiq authenticates against an AIQ integration supervisor and calls
organization-scoped integration actions on it. It is a thin wrapper around
the aiqsdk package: the supervisor base URL, organization and credentials
come from flags, AIQ_* environment variables or a YAML config file
(~/.config/aiq/config.yaml by default).`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "path to config file (default ~/.config/aiq/config.yaml)")
	pf.String("base-url", "", "supervisor token endpoint base URL")
	pf.String("org", "", "organization name")
	pf.String("username", "", "username to authenticate as")
	pf.String("password", "", "password (prefer AIQ_PASSWORD over this flag)")
	pf.String("log-level", "", "log level (debug, info, warn, error)")
	pf.String("log-format", "", "log format (text, json)")
}

// SetVersion sets the version for the root command, injected from main.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute runs the CLI and exits the process with a semantic exit code.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode maps SDK failure kinds to exit codes so callers can branch
// without parsing stderr.
func exitCode(err error) int {
	switch aiqsdk.KindOf(err) {
	case aiqsdk.KindInvalidInput:
		return ExitCodeInvalidInput
	case aiqsdk.KindAuthenticationRejected:
		return ExitCodeAuthFailed
	default:
		return ExitCodeError
	}
}

// setup merges config sources for a command invocation and builds the SDK
// client with a configured logger. Flags win over env vars and the file.
func setup(cmd *cobra.Command) (Config, *aiqsdk.SDKClient, error) {
	configPath, _ := cmd.Flags().GetString("config")

	cfg, err := LoadConfig(configPath)
	if err != nil {
		return Config{}, nil, err
	}

	overlayFlag(cmd, "base-url", &cfg.BaseURL)
	overlayFlag(cmd, "org", &cfg.Org)
	overlayFlag(cmd, "username", &cfg.Username)
	overlayFlag(cmd, "password", &cfg.Password)
	overlayFlag(cmd, "log-level", &cfg.LogLevel)
	overlayFlag(cmd, "log-format", &cfg.LogFormat)

	if cfg.BaseURL == "" {
		return Config{}, nil, errors.New("no supervisor base URL configured (--base-url, AIQ_BASE_URL or config file)")
	}

	client := aiqsdk.NewSDKClient(cfg.BaseURL)
	client.Logger = slogx.New(slogx.Config{
		Service: "aiq",
		Version: rootCmd.Version,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})

	return cfg, client, nil
}

func overlayFlag(cmd *cobra.Command, name string, dst *string) {
	if cmd.Flags().Changed(name) {
		if v, err := cmd.Flags().GetString(name); err == nil {
			*dst = v
		}
	}
}
