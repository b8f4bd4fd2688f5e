// Package domain defines the pure types shared across seal: stored
// identities, shareable recipients and the store interface the CLI
// wires against.
package domain
