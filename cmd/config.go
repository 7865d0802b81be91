package cmd

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/iburimskiy/backdrop/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the settings file path and the effective settings",
	Run:   showConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func showConfig(cmd *cobra.Command, args []string) {
	path := configPath
	if path == "" {
		var err error
		if path, err = config.GetSettingsPath(); err != nil {
			log.Fatal("Failed to locate settings: ", err)
		}
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		log.Fatal("Failed to load settings: ", err)
	}
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		log.Fatal("Failed to encode settings: ", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Settings file:", path)
	fmt.Fprintln(out, string(data))
}
