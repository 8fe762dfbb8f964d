package v1

import (
	"encoding/hex"
	"fmt"
	"net/http"

	"github.com/MGTheTrain/aes-vault/internal/domain/cryptoalg"

	"github.com/gin-gonic/gin"
)

// KeyHandler defines the interface for handling key-related operations
type KeyHandler interface {
	GenerateKey(ctx *gin.Context)
}

type keyHandler struct {
	cipherService cryptoalg.CipherService
}

// NewKeyHandler creates a new KeyHandler
func NewKeyHandler(cipherService cryptoalg.CipherService) KeyHandler {
	return &keyHandler{
		cipherService: cipherService,
	}
}

// GenerateKey handles the POST request to generate a random AES key
// @Summary Generate an AES key
// @Description Generate a random AES key of 128, 192 or 256 bits. The key is returned hex encoded and not stored.
// @Tags Key
// @Accept json
// @Produce json
// @Param requestBody body GenerateKeyRequest true "Key size in bits"
// @Success 201 {object} GeneratedKeyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /keys [post]
func (handler *keyHandler) GenerateKey(ctx *gin.Context) {
	var request GenerateKeyRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid key data: %v", err)})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	generated, err := handler.cipherService.GenerateKey(ctx, request.KeySize)
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("error generating key: %v", err)})
		return
	}

	ctx.JSON(http.StatusCreated, GeneratedKeyResponse{
		ID:              generated.ID,
		Algorithm:       generated.Algorithm,
		Type:            generated.Type,
		KeySize:         generated.KeySize,
		Key:             hex.EncodeToString(generated.Key),
		DateTimeCreated: generated.DateTimeCreated,
	})
}
