package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"snowreg/internal/regobs"
)

// submit <file>: submit a registration read from a JSON file.
func submitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit <file>",
		Short: "Submit a snow registration from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Regobs.Username == "" || cfg.Regobs.Password == "" {
				return fmt.Errorf("observation service credentials missing, set regobs.username and regobs.password")
			}

			payload, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var registration regobs.SnowRegistration
			if err := json.Unmarshal(payload, &registration); err != nil {
				return fmt.Errorf("failed to parse registration: %w", err)
			}

			conn := newConnection()
			err = conn.Authenticate(cmd.Context(),
				cfg.Regobs.Username, cfg.Regobs.Password,
				cfg.Regobs.ClientID, cfg.Regobs.AppToken)
			if err != nil {
				return err
			}

			stored, err := conn.Submit(cmd.Context(), &registration)
			if err != nil {
				return err
			}
			if stored.ID != nil {
				fmt.Printf("submitted registration %d\n", *stored.ID)
			}
			return nil
		},
	}
	return cmd
}
