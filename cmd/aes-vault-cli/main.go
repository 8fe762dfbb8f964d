// Package main is the entry point for the aes-vault-cli application.
// It initializes the root command, registers the AES sub-commands
// and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/MGTheTrain/aes-vault/cmd/aes-vault-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "aes-vault-cli",
		Short: "AES block cipher CLI tool",
		Long: `aes-vault-cli encrypts and decrypts files with AES-128, AES-192 or AES-256.
Every 16-byte block is enciphered independently and the last block is zero padded.
Decryption returns the padding as-is.

Keys are either raw key files (see generate-aes-keys) or derived from a passphrase
with --passphrase and --key-size.`,
		SilenceUsage: true,
	}

	if err := commands.InitAESCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize AES commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
