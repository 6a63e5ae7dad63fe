package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/ahgraber/karakeep-client/pkg/karakeep"
	"github.com/ahgraber/karakeep-client/pkg/kkclient"
)

// cliConfig is the persisted shape of ~/.karakeep/config.yml.
type cliConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"baseurl"`
}

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var baseURL string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to a Karakeep server",
		Long:  "Verify an API key against a Karakeep server and save the credentials to the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if baseURL == "" {
				baseURL = viper.GetString("baseurl")
			}

			if baseURL == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("Base URL: ")
				baseURL, _ = reader.ReadString('\n')
				baseURL = strings.TrimSpace(baseURL)
			}

			if baseURL == "" {
				return karakeep.ErrBaseURLRequired
			}

			fmt.Print("API key: ")

			keyBytes, err := term.ReadPassword(int(syscall.Stdin))

			fmt.Println()

			if err != nil {
				return fmt.Errorf("reading API key: %w", err)
			}

			apiKey := strings.TrimSpace(string(keyBytes))
			if apiKey == "" {
				return karakeep.ErrAPIKeyRequired
			}

			client, err := kkclient.NewWithAPIKey(baseURL, apiKey)
			if err != nil {
				return err
			}

			// A cheap authenticated call verifies the key before saving.
			_, err = client.Tags().List(context.Background())
			if err != nil {
				return fmt.Errorf("verifying credentials: %w", err)
			}

			err = saveConfig(&cliConfig{APIKey: apiKey, BaseURL: baseURL})
			if err != nil {
				return err
			}

			fmt.Println("Logged in, credentials saved")

			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "", "Karakeep base URL")

	return cmd
}

// saveConfig writes the config file, creating ~/.karakeep when needed.
func saveConfig(config *cliConfig) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}

	configDir := filepath.Join(home, ".karakeep")

	err = os.MkdirAll(configDir, 0o700)
	if err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	encoded, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	configPath := filepath.Join(configDir, "config.yml")

	err = os.WriteFile(configPath, encoded, 0o600)
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
