package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"seal/internal/crypto"
	"seal/internal/cryptogram"
	"seal/internal/protocol/ecies"
	"seal/internal/util/memzero"
)

// decrypt <in> <out>: open a cryptogram with the local identity. The
// suite flags must match the ones used to encrypt.
func decryptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decrypt <in> <out>",
		Short: "Decrypt a cryptogram with the local identity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			id, err := keys.LoadIdentity(passphrase)
			if err != nil {
				return err
			}
			defer memzero.Zero(id.Private)

			group, err := crypto.GroupByName(id.Curve)
			if err != nil {
				return err
			}
			priv, err := group.ParseScalar(id.Private)
			if err != nil {
				return fmt.Errorf("stored identity: %w", err)
			}
			defer priv.Wipe()

			ctx, err := buildContext(func(cipher crypto.Cipher, mac, kdf crypto.Digest) (*ecies.Context, error) {
				return ecies.NewContext(group, priv.Public(), priv, cipher, mac, kdf)
			})
			if err != nil {
				return err
			}

			raw, err := readInput(args[0])
			if err != nil {
				return err
			}
			cg, err := cryptogram.Parse(raw, ctx.KeyOctets(), ctx.MACSize())
			if err != nil {
				return err
			}
			plaintext, err := ecies.Decrypt(ctx, cg)
			if err != nil {
				return err
			}
			return writeOutput(args[1], plaintext)
		},
	}
	suiteFlags(cmd)
	return cmd
}
