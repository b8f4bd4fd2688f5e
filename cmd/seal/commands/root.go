package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"seal/internal/store"
)

var (
	home       string
	passphrase string
	keys       *store.FileStore

	cipherName string
	macName    string
	kdfName    string
)

func Execute() error {
	root := &cobra.Command{
		Use:           "seal",
		Short:         "ECIES envelope encryption for files",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".seal")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}
			keys = store.NewFileStore(home)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "key directory (default ~/.seal)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the identity")

	root.AddCommand(keygenCmd(), exportCmd(), fingerprintCmd(), encryptCmd(), decryptCmd())
	return root.Execute()
}

// suiteFlags registers the cipher/digest selection shared by encrypt
// and decrypt. Both sides must agree on the suite; the cryptogram
// carries no negotiation fields.
func suiteFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&cipherName, "cipher", "aes-256-cbc", "symmetric cipher (aes-128-cbc, aes-192-cbc, aes-256-cbc)")
	cmd.Flags().StringVar(&macName, "mac", "sha-256", "MAC digest (sha-256, sha-384, sha-512, sha3-256)")
	cmd.Flags().StringVar(&kdfName, "kdf", "sha-256", "KDF digest (sha-256, sha-384, sha-512, sha3-256)")
}
