package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"quicktask/pkg/gcalendar"
)

func newCalendarAuthCmd() *cobra.Command {
	var tokenPath string

	cmd := &cobra.Command{
		Use:   "calendar-auth [credentials-file]",
		Short: "Authorize Google Calendar access for installed-app credentials",
		Long: `Run this once to create the token the API server needs when it is configured
with OAuth desktop-app credentials. Service account keys need no token.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			credsPath := "google-credentials.json"
			if len(args) == 1 {
				credsPath = args[0]
			}

			data, err := os.ReadFile(credsPath)
			if err != nil {
				return fmt.Errorf("read credentials %q: %w", credsPath, err)
			}
			auth, err := gcalendar.NewAuthorizer(data)
			if err != nil {
				return fmt.Errorf("%w (expected an OAuth desktop app credentials file)", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render("1. Open this URL and sign in with your Google account:"))
			fmt.Fprintln(out, auth.AuthCodeURL("quicktask"))
			fmt.Fprint(out, titleStyle.Render("2. Paste the authorization code here: "))

			code, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			code = strings.TrimSpace(code)
			if code == "" {
				return errors.New("no authorization code read")
			}

			tok, err := auth.Exchange(cmd.Context(), code)
			if err != nil {
				return err
			}
			if err := gcalendar.SaveToken(tokenPath, tok); err != nil {
				return err
			}

			fmt.Fprintf(out, "\nToken saved to %s. Restart the API server to enable calendar mirroring.\n", tokenPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&tokenPath, "token", gcalendar.TokenPath, "where to write the token")
	return cmd
}
