package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vakitapp/vakit/internal/api"
	"github.com/vakitapp/vakit/internal/astro"
	"github.com/vakitapp/vakit/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or modify configuration",
		Long:  "Display current configuration, or use subcommands to modify it.\nWhen run without subcommands, shows the current configuration.",
		RunE:  runConfigShow,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a config value",
		Long: fmt.Sprintf("Set a configuration value. Valid keys: %s\n\nExamples:\n  vakit config set calc.method ummAlQura\n  vakit config set location.latitude 21.42\n  vakit config set reminders.fajr_offset -10\n  vakit config set time_format 12h",
			strings.Join(config.ValidKeys, ", ")),
		Args: cobra.ExactArgs(2),
		RunE: runConfigSet,
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Print a single config value",
		Args:  cobra.ExactArgs(1),
		RunE:  runConfigGet,
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Reset config to defaults",
		Long:  "Delete the config file and restore all settings to defaults.",
		RunE:  runConfigReset,
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print config file path",
		RunE:  runConfigPath,
	})

	return cmd
}

// runConfigShow displays the current configuration.
func runConfigShow(cmd *cobra.Command, args []string) error {
	path, err := config.Path()
	if err != nil {
		return err
	}

	settings, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Configuration (%s)\n\n", path)
	for _, key := range config.ValidKeys {
		val, _ := settings.Get(key)
		if val == "" {
			val = "(not set)"
		}
		fmt.Printf("  %-28s %s\n", key, val)
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	settings, err := config.Load()
	if err != nil {
		return err
	}
	if err := settings.Set(key, value); err != nil {
		return err
	}
	if err := settings.Save(); err != nil {
		return err
	}

	fmt.Printf("Set %s = %s\n", key, value)
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	settings, err := config.Load()
	if err != nil {
		return err
	}
	val, err := settings.Get(args[0])
	if err != nil {
		return err
	}
	fmt.Println(val)
	return nil
}

func runConfigReset(cmd *cobra.Command, args []string) error {
	if err := config.Reset(); err != nil {
		return err
	}
	fmt.Println("Configuration reset to defaults.")
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	path, err := config.Path()
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}

func newMethodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List all calculation methods",
		Long:  "Print the supported calculation methods with their angle conventions\nand the remote API code each maps to.",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Supported calculation methods:")
			fmt.Println()
			fmt.Printf("  %-24s %-6s %s\n", "Method", "API", "Convention")
			fmt.Printf("  %-24s %-6s %s\n", "──────", "───", "──────────")
			for _, m := range astro.Methods {
				params := astro.MethodParams(m)
				convention := fmt.Sprintf("fajr %.1f°", params.FajrAngle)
				if params.IshaIntervalMinutes > 0 {
					convention += fmt.Sprintf(", isha maghrib+%dm", params.IshaIntervalMinutes)
				} else {
					convention += fmt.Sprintf(", isha %.1f°", params.IshaAngle)
				}
				fmt.Printf("  %-24s %-6d %s\n", m, api.MethodCode(m), convention)
			}
			fmt.Println()
			fmt.Println("Select one with --method <name> or 'vakit config set calc.method <name>'.")
			return nil
		},
	}
}
