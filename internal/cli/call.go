package cli

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/appearnetworks/aiq-sdk-go/pkg/aiqsdk"
	"github.com/spf13/cobra"
)

var callCmd = &cobra.Command{
	Use:   "call <action>",
	Short: "Call an integration action on the supervisor",
	Long: `call builds the organization-scoped URI for an integration action,
authenticates, and issues the request with the bearer token attached. The
response body is written to stdout.

Query parameters are passed as repeated --param name=value flags and are
sent in the order given (duplicates allowed):

  aiq call datasync --param since=2024-01-01 --param table=orders`,
	Args: cobra.ExactArgs(1),
	RunE: runCall,
}

func init() {
	callCmd.Flags().String("method", http.MethodGet, "HTTP method for the action request")
	callCmd.Flags().String("data", "", "request body to send with the action request")
	callCmd.Flags().String("content-type", "application/json", "Content-Type for the request body")
	callCmd.Flags().StringArray("param", nil, "query parameter as name=value, repeatable")
	rootCmd.AddCommand(callCmd)
}

func runCall(cmd *cobra.Command, args []string) error {
	cfg, client, err := setup(cmd)
	if err != nil {
		return err
	}

	params, err := parseParams(cmd)
	if err != nil {
		return err
	}

	uri, err := aiqsdk.BuildIntegrationURI(cfg.BaseURL, cfg.Org, args[0], params...)
	if err != nil {
		return err
	}

	method, _ := cmd.Flags().GetString("method")
	data, _ := cmd.Flags().GetString("data")

	var body io.Reader
	if data != "" {
		body = strings.NewReader(data)
	}

	req, err := http.NewRequestWithContext(cmd.Context(), method, uri, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if data != "" {
		contentType, _ := cmd.Flags().GetString("content-type")
		req.Header.Set("Content-Type", contentType)
	}

	if err := client.AddAuthenticationHeader(cmd.Context(), req, cfg.Username, cfg.Password, cfg.Org); err != nil {
		return err
	}

	resp, err := client.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("action request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read action response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("action %q failed with status %d: %s", args[0], resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	_, err = cmd.OutOrStdout().Write(respBody)
	return err
}

// parseParams converts repeated --param name=value flags into ordered pairs.
func parseParams(cmd *cobra.Command) ([]aiqsdk.Param, error) {
	raw, _ := cmd.Flags().GetStringArray("param")

	params := make([]aiqsdk.Param, 0, len(raw))
	for _, p := range raw {
		name, value, ok := strings.Cut(p, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --param %q, expected name=value", p)
		}
		params = append(params, aiqsdk.Param{Name: name, Value: value})
	}

	return params, nil
}
