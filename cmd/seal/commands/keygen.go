package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"seal/internal/crypto"
	"seal/internal/domain"
)

// keygen: create a recipient key pair and store it sealed under the
// passphrase.
func keygenCmd() *cobra.Command {
	var curveName string
	var force bool

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a recipient key pair and store it securely",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			if !force {
				exists, err := keys.HasIdentity()
				if err != nil {
					return err
				}
				if exists {
					return fmt.Errorf("identity already exists in %s (use --force to replace)", home)
				}
			}

			group, err := crypto.GroupByName(curveName)
			if err != nil {
				return err
			}
			priv, err := group.GenerateKeyPair()
			if err != nil {
				return err
			}
			defer priv.Wipe()

			id := domain.Identity{
				Curve:   group.Name(),
				Private: priv.Bytes(),
				Public:  priv.Public().Octets(),
			}
			if err := keys.SaveIdentity(passphrase, id); err != nil {
				return err
			}
			fmt.Printf("Identity created on %s.\nFingerprint: %s\n", group.Name(), crypto.Fingerprint(id.Public))
			return nil
		},
	}
	cmd.Flags().StringVar(&curveName, "curve", "P-256", "curve (P-256, P-384, P-521, secp256k1)")
	cmd.Flags().BoolVar(&force, "force", false, "replace an existing identity")
	return cmd
}
