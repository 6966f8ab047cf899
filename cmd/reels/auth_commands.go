package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/btccrack27/ai-reels/internal/api"
)

func newLoginCommand(ctx *commandContext) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, _, err := ctx.ensureSession()
			if err != nil {
				return err
			}

			email = strings.TrimSpace(email)
			if email == "" {
				return errors.New("login: --email is required")
			}
			if password == "" {
				password, err = readLine(cmd, "Password: ")
				if err != nil {
					return err
				}
			}

			user, err := mgr.Login(cmd.Context(), email, password)
			if err != nil {
				return fmt.Errorf("login: %s", api.Detail(err, "invalid credentials"))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s <%s>\n", user.Name, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "Account email address")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Account password (prompted when omitted)")
	return cmd
}

func newRegisterCommand(ctx *commandContext) *cobra.Command {
	var email, name, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, _, err := ctx.ensureSession()
			if err != nil {
				return err
			}

			email = strings.TrimSpace(email)
			name = strings.TrimSpace(name)
			if email == "" || name == "" {
				return errors.New("register: --email and --name are required")
			}
			if password == "" {
				password, err = readLine(cmd, "Password: ")
				if err != nil {
					return err
				}
			}

			user, err := mgr.Register(cmd.Context(), email, name, password)
			if err != nil {
				return fmt.Errorf("register: %s", api.Detail(err, "registration failed"))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s. You are signed in as %s.\n", user.Name, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "Account email address")
	cmd.Flags().StringVarP(&name, "name", "n", "", "Display name")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Account password (prompted when omitted)")
	return cmd
}

func newLogoutCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, _, err := ctx.ensureSession()
			if err != nil {
				return err
			}
			if err := mgr.Logout(); err != nil {
				return fmt.Errorf("logout: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newWhoamiCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.requireUser(cmd.Context())
			if err != nil {
				return err
			}
			user, err := client.CurrentUser(cmd.Context())
			if err != nil {
				return fmt.Errorf("whoami: %s", api.Detail(err, "could not load account"))
			}

			if asJSON {
				return writeJSON(cmd, user)
			}
			rows := [][]string{
				{"Name", user.Name},
				{"Email", user.Email},
				{"Role", user.Role},
				{"Active", yesNo(user.IsActive)},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Field", "Value"}, rows, nil))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}

func readLine(cmd *cobra.Command, prompt string) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
