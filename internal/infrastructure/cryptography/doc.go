// Package cryptography implements the AES processor on top of the rijndael cipher core.
package cryptography
