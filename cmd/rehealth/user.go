// ABOUTME: CLI commands for profile management: create, login, whoami.
// ABOUTME: Passwords are read from a flag or prompted; stored as bcrypt hashes.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"rehealth/internal/models"
)

var userPassword string

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage profiles",
}

var userCreateCmd = &cobra.Command{
	Use:   "create <username>",
	Short: "Create a new profile and make it active",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username := strings.TrimSpace(args[0])
		if username == "" {
			return fmt.Errorf("username must not be empty")
		}

		password, err := resolvePassword()
		if err != nil {
			return err
		}

		u := models.NewUser(username)
		if err := u.SetPassword(password); err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		if err := db.CreateUser(u); err != nil {
			return fmt.Errorf("failed to create profile: %w", err)
		}

		cfg.CurrentUser = username
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		color.Green("✓ Created profile %s", username)
		return nil
	},
}

var userLoginCmd = &cobra.Command{
	Use:   "login <username>",
	Short: "Switch the active profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username := args[0]
		u, err := db.GetUserByUsername(username)
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}

		password, err := resolvePassword()
		if err != nil {
			return err
		}
		if !u.CheckPassword(password) {
			return fmt.Errorf("wrong password for %s", username)
		}

		cfg.CurrentUser = username
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		color.Green("✓ Logged in as %s", username)
		return nil
	},
}

var userWhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the active profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.CurrentUser == "" {
			fmt.Println("No active profile.")
			return nil
		}
		fmt.Println(cfg.CurrentUser)
		return nil
	},
}

func resolvePassword() (string, error) {
	if userPassword != "" {
		return userPassword, nil
	}
	fmt.Print("Password: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", fmt.Errorf("password must not be empty")
	}
	return password, nil
}

func init() {
	userCmd.PersistentFlags().StringVar(&userPassword, "password", "", "password (prompted when omitted)")
	userCmd.AddCommand(userCreateCmd)
	userCmd.AddCommand(userLoginCmd)
	userCmd.AddCommand(userWhoamiCmd)
	rootCmd.AddCommand(userCmd)
}
