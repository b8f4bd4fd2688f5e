// Package store persists the local identity on disk.
//
// The key pair is sealed with ChaCha20-Poly1305 under an argon2id
// passphrase-derived key (salt-bound, versioned JSON blob); the public
// half is kept alongside in clear JSON so export and fingerprint work
// without the passphrase. Writes go through a temp file and rename.
package store
