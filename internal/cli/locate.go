package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vakitapp/vakit/internal/config"
	"github.com/vakitapp/vakit/internal/geo"
)

var flagLocateSave bool

func newLocateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locate",
		Short: "Detect location from your public IP",
		Long:  "Query a free IP geolocation service and print the result.\nWith --save the detected location becomes the configured one.",
		RunE:  runLocate,
	}

	cmd.Flags().BoolVar(&flagLocateSave, "save", false, "Write the detected location to the config file")

	return cmd
}

func runLocate(cmd *cobra.Command, args []string) error {
	detected, err := geo.NewDetector().Detect(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("Detected: %s (%.4f, %.4f), %s\n",
		detected.DisplayName(), detected.Latitude, detected.Longitude, detected.Timezone)

	if !flagLocateSave {
		fmt.Println("Run with --save to make this the configured location.")
		return nil
	}

	settings, err := config.Load()
	if err != nil {
		return err
	}
	settings.Location = detected
	if err := settings.Save(); err != nil {
		return err
	}
	fmt.Println("Location saved.")
	return nil
}
