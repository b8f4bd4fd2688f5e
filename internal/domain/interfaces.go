package domain

// IdentityStore persists the local identity, private half sealed
// under a passphrase.
type IdentityStore interface {
	SaveIdentity(passphrase string, id Identity) error
	LoadIdentity(passphrase string) (Identity, error)
	// LoadRecipient returns the public half without the passphrase.
	LoadRecipient() (Recipient, error)
	HasIdentity() (bool, error)
}
