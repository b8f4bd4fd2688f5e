// Package ecies implements the Elliptic Curve Integrated Encryption
// Scheme: an ephemeral Diffie-Hellman agreement stretched through the
// KDF2 counter-mode derivation, zero-IV AES-CBC over the payload and
// an encrypt-then-MAC HMAC tag, mirrored on decryption with strict
// verify-before-decrypt ordering.
//
// A Context fixes the recipient keys and the primitive selection and
// may be shared across concurrent Encrypt and Decrypt calls. All
// per-message secrets (ephemeral scalar, shared secret, envelope key)
// are wiped before the call returns, on success and on every error
// path; only the cryptogram or the plaintext crosses the boundary.
package ecies
