// Package commands defines the seal CLI and wires the keystore for
// subcommands.
//
// Commands
//
//   - keygen       Create the local recipient key pair
//   - export       Write the shareable recipient file
//   - fingerprint  Print the identity fingerprint
//   - encrypt      Seal a file to a recipient's public key
//   - decrypt      Open a cryptogram with the local identity
//
// # Implementation
//
// The root command resolves the key directory and constructs the file
// store before any subcommand runs. Encrypt and decrypt share the
// suite flags (--cipher, --mac, --kdf); the cryptogram carries no
// negotiation fields, so both sides must pass the same selection.
package commands
