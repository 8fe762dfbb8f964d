// Package cryptoalg defines the contracts and models around the AES cipher core:
// the processor that turns raw or passphrase-derived keys into encrypt/decrypt calls,
// and the service consumed by the CLI and REST front ends.
package cryptoalg
