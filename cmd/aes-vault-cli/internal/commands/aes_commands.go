package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MGTheTrain/aes-vault/internal/app"
	"github.com/MGTheTrain/aes-vault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/aes-vault/internal/domain/rijndael"
	"github.com/MGTheTrain/aes-vault/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/aes-vault/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// AESCommandHandler encapsulates logic for handling AES operations via CLI.
type AESCommandHandler struct {
	aesProcessor  cryptoalg.AESProcessor
	cipherService cryptoalg.CipherService
	logger        logger.Logger
}

// NewAESCommandHandler initializes and returns an AESCommandHandler instance with
// configured logger, AES processor and cipher service.
func NewAESCommandHandler(log logger.Logger, opts ...rijndael.Option) (*AESCommandHandler, error) {
	aesProcessor, err := cryptography.NewAESProcessor(log, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES processor: %w", err)
	}

	cipherService, err := app.NewCipherService(aesProcessor, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher service: %w", err)
	}

	return &AESCommandHandler{
		aesProcessor:  aesProcessor,
		cipherService: cipherService,
		logger:        log,
	}, nil
}

// GenerateAESKeysCmd generates an AES key and persists it in the selected directory
func (commandHandler *AESCommandHandler) GenerateAESKeysCmd(cmd *cobra.Command, _ []string) error {
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		return fmt.Errorf("invalid key-size flag: %w", err)
	}

	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		return fmt.Errorf("invalid key-dir flag: %w", err)
	}

	secretKey, err := commandHandler.aesProcessor.GenerateKey(keySize)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	keyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-symmetric-key.bin", uuid.New()))
	if err := os.WriteFile(keyFilePath, secretKey, 0600); err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	commandHandler.logger.Info("AES key saved to ", keyFilePath)
	return nil
}

// EncryptAESCmd encrypts a file with a key file or a passphrase
func (commandHandler *AESCommandHandler) EncryptAESCmd(cmd *cobra.Command, _ []string) error {
	return commandHandler.transform(cmd, "Encrypted", commandHandler.cipherService.Encrypt)
}

// DecryptAESCmd decrypts a file with a key file or a passphrase. Zero padding is kept.
func (commandHandler *AESCommandHandler) DecryptAESCmd(cmd *cobra.Command, _ []string) error {
	return commandHandler.transform(cmd, "Decrypted", commandHandler.cipherService.Decrypt)
}

type cipherFunc func(ctx context.Context, material *cryptoalg.KeyMaterial, data []byte) ([]byte, error)

func (commandHandler *AESCommandHandler) transform(cmd *cobra.Command, verb string, fn cipherFunc) error {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		return fmt.Errorf("invalid input-file flag: %w", err)
	}
	outputFilePath, err := cmd.Flags().GetString("output-file")
	if err != nil {
		return fmt.Errorf("invalid output-file flag: %w", err)
	}

	material, err := keyMaterialFromFlags(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	input, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	output, err := fn(cmd.Context(), material, input)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	if err := os.WriteFile(outputFilePath, output, 0600); err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	commandHandler.logger.Info(verb, " data saved to ", outputFilePath)
	return nil
}

// keyMaterialFromFlags reads either --symmetric-key or --passphrase with --key-size (bytes).
func keyMaterialFromFlags(cmd *cobra.Command) (*cryptoalg.KeyMaterial, error) {
	symmetricKey, err := cmd.Flags().GetString("symmetric-key")
	if err != nil {
		return nil, fmt.Errorf("invalid symmetric-key flag: %w", err)
	}
	passphrase, err := cmd.Flags().GetString("passphrase")
	if err != nil {
		return nil, fmt.Errorf("invalid passphrase flag: %w", err)
	}
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		return nil, fmt.Errorf("invalid key-size flag: %w", err)
	}

	material := &cryptoalg.KeyMaterial{Passphrase: passphrase}
	if passphrase != "" {
		material.KeySize = uint32(keySize) * 8 //nolint:gosec // validated as 128/192/256 bits
	}

	if symmetricKey != "" {
		key, err := os.ReadFile(filepath.Clean(symmetricKey))
		if err != nil {
			return nil, err
		}
		material.Key = key
	}

	if err := material.Validate(); err != nil {
		return nil, fmt.Errorf("either --symmetric-key or --passphrase with --key-size is required: %w", err)
	}
	return material, nil
}

// InitAESCommands registers AES-related commands
func InitAESCommands(rootCmd *cobra.Command) error {
	log, err := setupLogger()
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}

	handler, err := NewAESCommandHandler(log)
	if err != nil {
		return fmt.Errorf("failed to create AES command handler %w", err)
	}

	handler.Register(rootCmd)
	return nil
}

// Register attaches the generate, encrypt and decrypt commands to rootCmd.
func (commandHandler *AESCommandHandler) Register(rootCmd *cobra.Command) {
	var generateAESKeysCmd = &cobra.Command{
		Use:   "generate-aes-keys",
		Short: "Generate AES keys",
		RunE:  commandHandler.GenerateAESKeysCmd,
	}
	generateAESKeysCmd.Flags().IntP("key-size", "", 16, "AES key size in bytes (16, 24 or 32)")
	generateAESKeysCmd.Flags().StringP("key-dir", "", "", "Directory to store the encryption key")
	rootCmd.AddCommand(generateAESKeysCmd)

	var encryptAESFileCmd = &cobra.Command{
		Use:   "encrypt-aes",
		Short: "Encrypt a file using AES",
		RunE:  commandHandler.EncryptAESCmd,
	}
	encryptAESFileCmd.Flags().StringP("input-file", "", "", "Path to input file that needs to be encrypted")
	encryptAESFileCmd.Flags().StringP("output-file", "", "", "Path to encrypted output file")
	addKeyFlags(encryptAESFileCmd)
	rootCmd.AddCommand(encryptAESFileCmd)

	var decryptAESFileCmd = &cobra.Command{
		Use:   "decrypt-aes",
		Short: "Decrypt a file using AES",
		RunE:  commandHandler.DecryptAESCmd,
	}
	decryptAESFileCmd.Flags().StringP("input-file", "", "", "Input encrypted file path")
	decryptAESFileCmd.Flags().StringP("output-file", "", "", "Path to decrypted output file")
	addKeyFlags(decryptAESFileCmd)
	rootCmd.AddCommand(decryptAESFileCmd)
}

func addKeyFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("symmetric-key", "", "", "Path to the symmetric key")
	cmd.Flags().StringP("passphrase", "", "", "Passphrase to derive the key from")
	cmd.Flags().IntP("key-size", "", 16, "Derived key size in bytes (16, 24 or 32)")
	cmd.MarkFlagsMutuallyExclusive("symmetric-key", "passphrase")
	_ = cmd.MarkFlagRequired("input-file")
	_ = cmd.MarkFlagRequired("output-file")
}
