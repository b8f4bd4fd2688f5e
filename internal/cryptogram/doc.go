// Package cryptogram holds the three-field ECIES output container.
//
// The wire layout is fixed: ephemeral public key, then ciphertext
// body, then authentication tag, with no length prefixes — the key
// and mac lengths are implied by the context that produced it.
package cryptogram
