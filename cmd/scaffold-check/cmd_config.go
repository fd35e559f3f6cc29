package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ai-first-sdlc/scaffold-check/internal/config"
)

var unsetForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage scaffold-check settings",
	Long: `Read and change the settings stored in the project configuration file.

Keys:
  PROFILE               - Check profile (minimal, standard)
  EXTRA_REQUIRED_PATHS  - Space separated paths every profile must find (end with / for a directory)
  REPORT_FORMAT         - Default report format (text, json, markdown, yaml)
  METRICS_FILE          - Prometheus textfile written after each verification
  TEMPLATE_LANGUAGE     - Framework test template installed by init
  PROJECT_VERSION       - VERSION content written by init`,
}

var configGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Print a setting, falling back to its default",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := newContext()
		if err != nil {
			return err
		}
		defer ctx.Close()

		key := strings.ToUpper(args[0])
		if !config.IsKnownKey(key) && !ctx.Config.Exists(key) {
			return fmt.Errorf("config key not found: %s", key)
		}
		fmt.Println(ctx.Config.GetOrDefault(key, ""))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Store a setting",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := newContext()
		if err != nil {
			return err
		}
		defer ctx.Close()

		// Remaining arguments form a space separated list value
		value := strings.Join(args[1:], " ")
		if err := ctx.SetSetting(args[0], value); err != nil {
			return err
		}
		ctx.UI.Successf("%s=%s saved to %s", strings.ToUpper(args[0]), value, ctx.Config.FilePath())
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List settings with their effective values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := newContext()
		if err != nil {
			return err
		}
		defer ctx.Close()

		stored := ctx.Config.GetAll()
		for _, key := range config.KnownKeys {
			value, ok := stored[key]
			source := "config"
			if !ok {
				value = config.Defaults[key]
				source = "default"
			}
			fmt.Printf("%-22s %-28s (%s)\n", key, value, source)
		}

		// Keys the tool does not read are still shown so typos are visible
		var unknown []string
		for key := range stored {
			if !config.IsKnownKey(key) {
				unknown = append(unknown, key)
			}
		}
		sort.Strings(unknown)
		for _, key := range unknown {
			fmt.Printf("%-22s %-28s (unused)\n", key, stored[key])
		}
		return nil
	},
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset KEY",
	Short: "Remove a setting so its default applies",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := newContext()
		if err != nil {
			return err
		}
		defer ctx.Close()

		key := strings.ToUpper(args[0])
		if !ctx.Config.Exists(key) {
			ctx.UI.Infof("%s is not set", key)
			return nil
		}

		if !unsetForce {
			confirm, err := ctx.UI.PromptYesNo(fmt.Sprintf("Remove %s=%s?", key, ctx.Config.GetOrDefault(key, "")), false)
			if err != nil {
				return err
			}
			if !confirm {
				ctx.UI.Info("Unset cancelled")
				return nil
			}
		}

		if err := ctx.Config.Delete(key); err != nil {
			return err
		}
		ctx.UI.Successf("%s removed", key)
		return nil
	},
}

func init() {
	configUnsetCmd.Flags().BoolVarP(&unsetForce, "force", "f", false, "Skip confirmation prompt")

	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configUnsetCmd)
	rootCmd.AddCommand(configCmd)
}
