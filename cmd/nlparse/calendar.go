package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"campus-task-assistant/pkg/gcalendar"
)

var (
	credentialsFlag string
	tokenFlag       string
)

var calendarAuthCmd = &cobra.Command{
	Use:   "calendar-auth",
	Short: "Authorize Google Calendar and save the OAuth token file",
	Long: `Runs the OAuth desktop-app flow once. Open the printed URL, sign in,
paste the authorization code back, and the token is written to --token.
Service account credentials do not need this step.`,
	Args: cobra.NoArgs,
	RunE: runCalendarAuth,
}

func init() {
	calendarAuthCmd.Flags().StringVar(&credentialsFlag, "credentials", "google-credentials.json", "OAuth desktop-app credentials file")
	calendarAuthCmd.Flags().StringVar(&tokenFlag, "token", "token.json", "Where to write the token")
	rootCmd.AddCommand(calendarAuthCmd)
}

func runCalendarAuth(cmd *cobra.Command, _ []string) error {
	data, err := os.ReadFile(credentialsFlag)
	if err != nil {
		return fmt.Errorf("read credentials %q: %w", credentialsFlag, err)
	}
	auth, err := gcalendar.NewDesktopAuth(data)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Open this URL and sign in with the Google account that owns the calendar:")
	fmt.Fprintln(out)
	fmt.Fprintln(out, auth.AuthURL("state-token"))
	fmt.Fprintln(out)
	fmt.Fprint(out, "Authorization code: ")

	code, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && strings.TrimSpace(code) == "" {
		return fmt.Errorf("read authorization code: %w", err)
	}

	tok, err := auth.Exchange(cmd.Context(), strings.TrimSpace(code))
	if err != nil {
		return err
	}
	if err := gcalendar.SaveToken(tokenFlag, tok); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nToken saved to %s\n", tokenFlag)
	return nil
}
