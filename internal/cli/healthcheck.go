package cli

import (
	"fmt"
	"net"
	"time"

	"shelter-api/internal/platform/httpclient"

	"github.com/spf13/cobra"
)

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

func newHealthcheckCmd(a *app) *cobra.Command {
	var (
		url     string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "healthcheck",
		Short: "Call GET /health on a running instance; exit non-zero if unhealthy",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if url == "" {
				url = localURL(a.cfg.Server.Addr)
			}

			client, err := httpclient.New(url, timeout)
			if err != nil {
				return err
			}

			var out healthResponse
			if err := client.GetJSON(cmd.Context(), "/health", &out); err != nil {
				return fmt.Errorf("unhealthy: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (database: %s)\n", out.Status, out.Database)
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "base URL (default: derived from server.addr)")
	cmd.Flags().DurationVar(&timeout, "timeout", httpclient.DefaultTimeout, "request timeout")
	return cmd
}

// localURL: ":8080" -> http://localhost:8080
func localURL(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "http://" + addr
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port)
}
