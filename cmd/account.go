// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/workload-service/pkg/account"
)

var signupCmd = &cobra.Command{
	Use:   "signup [name] [email]",
	Short: "Create an organization and its admin user",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp := new(account.ChallengeResponse)
		err := getClient().post(cmd.Context(), "/signup/", &account.SignupRequest{Name: args[0], Email: args[1]}, resp)
		if err != nil {
			return fmt.Errorf("failed to sign up: %w", err)
		}

		printChallenge(cmd.OutOrStdout(), resp)
		return nil
	},
}

var verifyOtpCmd = &cobra.Command{
	Use:   "verify-otp [user-id] [otp]",
	Short: "Verify a one time code and set the password",
	Long:  `Verify a one time code and set the password. Without --password the password is read from the first line of stdin.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pw, err := passwordFlag(cmd)
		if err != nil {
			return err
		}

		resp := new(account.MessageResponse)
		err = getClient().post(cmd.Context(), "/verify-otp/", &account.VerifyOtpRequest{UserID: args[0], Otp: args[1], Password: pw}, resp)
		if err != nil {
			return fmt.Errorf("failed to verify otp: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
		return nil
	},
}

var resendOtpCmd = &cobra.Command{
	Use:   "resend-otp [user-id]",
	Short: "Issue a new one time code for an unverified user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp := new(account.ChallengeResponse)
		err := getClient().post(cmd.Context(), "/resend-otp/", &account.ResendOtpRequest{UserID: args[0]}, resp)
		if err != nil {
			return fmt.Errorf("failed to resend otp: %w", err)
		}

		printChallenge(cmd.OutOrStdout(), resp)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login [email]",
	Short: "Check the credentials of a verified user",
	Long:  `Check the credentials of a verified user. Without --password the password is read from the first line of stdin.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pw, err := passwordFlag(cmd)
		if err != nil {
			return err
		}

		user := new(account.UserResponse)
		if err := getClient().post(cmd.Context(), "/login/", &account.LoginRequest{Email: args[0], Password: pw}, user); err != nil {
			return fmt.Errorf("failed to log in: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tORG_ID\tROLE")
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", user.ID, user.Name, user.Email, user.OrgID, user.Role)
		return w.Flush()
	},
}

func printChallenge(out io.Writer, resp *account.ChallengeResponse) {
	fmt.Fprintln(out, resp.Message)

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "USER_ID\tOTP\tEXPIRES_AT")

	code := resp.GeneratedOtp
	if code == "" {
		code = "-"
	}
	fmt.Fprintf(w, "%s\t%s\t%s\n", resp.UserID, code, resp.ExpiresAt.Format(time.RFC3339))
	w.Flush()
}

func passwordFlag(cmd *cobra.Command) (string, error) {
	pw, _ := cmd.Flags().GetString("password")
	if pw != "" {
		return pw, nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	pw = strings.TrimRight(line, "\r\n")
	if pw == "" {
		return "", fmt.Errorf("no password provided")
	}

	return pw, nil
}

func init() {
	verifyOtpCmd.Flags().String("password", "", "Password to set")
	loginCmd.Flags().String("password", "", "Password to check")

	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(verifyOtpCmd)
	rootCmd.AddCommand(resendOtpCmd)
	rootCmd.AddCommand(loginCmd)
}
