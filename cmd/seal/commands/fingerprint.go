package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"seal/internal/crypto"
)

func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the identity fingerprint",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := keys.LoadRecipient()
			if err != nil {
				return err
			}
			fmt.Printf("Fingerprint (%s): %s\n", r.Curve, crypto.Fingerprint(r.Public))
			return nil
		},
	}
}
