package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"seal/internal/crypto"
	"seal/internal/protocol/ecies"
	"seal/internal/store"
)

// encrypt --to <recipient.json> <in> <out>: seal a file to a
// recipient's public key. "-" selects stdin/stdout.
func encryptCmd() *cobra.Command {
	var recipientPath string

	cmd := &cobra.Command{
		Use:   "encrypt --to <recipient> <in> <out>",
		Short: "Encrypt a file to a recipient's public key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := store.ReadRecipient(recipientPath)
			if err != nil {
				return err
			}
			group, err := crypto.GroupByName(r.Curve)
			if err != nil {
				return err
			}
			pub, err := group.ParsePoint(r.Public)
			if err != nil {
				return fmt.Errorf("recipient public key: %w", err)
			}

			ctx, err := buildContext(func(cipher crypto.Cipher, mac, kdf crypto.Digest) (*ecies.Context, error) {
				return ecies.NewEncryptContext(group, pub, cipher, mac, kdf)
			})
			if err != nil {
				return err
			}

			plaintext, err := readInput(args[0])
			if err != nil {
				return err
			}
			cg, err := ecies.Encrypt(ctx, plaintext)
			if err != nil {
				return err
			}
			return writeOutput(args[1], cg.Bytes())
		},
	}
	cmd.Flags().StringVar(&recipientPath, "to", "", "recipient file produced by export")
	_ = cmd.MarkFlagRequired("to")
	suiteFlags(cmd)
	return cmd
}

// buildContext resolves the suite flags and hands the pieces to build.
func buildContext(build func(crypto.Cipher, crypto.Digest, crypto.Digest) (*ecies.Context, error)) (*ecies.Context, error) {
	cipher, err := crypto.CipherByName(cipherName)
	if err != nil {
		return nil, err
	}
	mac, err := crypto.DigestByName(macName)
	if err != nil {
		return nil, err
	}
	kdf, err := crypto.DigestByName(kdfName)
	if err != nil {
		return nil, err
	}
	return build(cipher, mac, kdf)
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, b []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(b)
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
