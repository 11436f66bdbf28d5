package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/appearnetworks/aiq-sdk-go/pkg/aiqsdk"
	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Fetch an access token from the supervisor",
	Long: `token runs the supervisor's discovery-and-exchange flow for the
configured organization and credentials and prints the access token on
stdout, one line, suitable for command substitution:

  curl -H "Authorization: BEARER $(aiq token)" ...`,
	Args: cobra.NoArgs,
	RunE: runToken,
}

func init() {
	tokenCmd.Flags().Bool("show-expiry", false, "print token expiry on stderr (JWT tokens only)")
	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, _ []string) error {
	cfg, client, err := setup(cmd)
	if err != nil {
		return err
	}

	token, err := client.FetchAccessToken(cmd.Context(), cfg.Username, cfg.Password, cfg.Org)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)

	if show, _ := cmd.Flags().GetBool("show-expiry"); show {
		if expiry, ok := aiqsdk.TokenExpiry(token); ok {
			fmt.Fprintf(os.Stderr, "token expires at %s\n", expiry.UTC().Format(time.RFC3339))
		} else {
			fmt.Fprintln(os.Stderr, "token is opaque, no expiry available")
		}
	}

	return nil
}
