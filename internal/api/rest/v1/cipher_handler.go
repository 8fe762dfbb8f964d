package v1

import (
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"

	"github.com/MGTheTrain/aes-vault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/aes-vault/internal/domain/rijndael"

	"github.com/gin-gonic/gin"
)

// CipherHandler defines the interface for handling encrypt and decrypt requests
type CipherHandler interface {
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
}

type cipherHandler struct {
	cipherService cryptoalg.CipherService
}

// NewCipherHandler creates a new CipherHandler
func NewCipherHandler(cipherService cryptoalg.CipherService) CipherHandler {
	return &cipherHandler{
		cipherService: cipherService,
	}
}

// Encrypt handles the POST request to encrypt hex data
// @Summary Encrypt data
// @Description Zero-pad the data to whole 16-byte blocks and encrypt every block independently.
// @Tags Cipher
// @Accept json
// @Produce json
// @Param requestBody body CipherRequest true "Key material and hex data"
// @Success 201 {object} EncryptResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /encrypt [post]
func (handler *cipherHandler) Encrypt(ctx *gin.Context) {
	material, data, ok := bindCipherRequest(ctx)
	if !ok {
		return
	}

	ciphertext, err := handler.cipherService.Encrypt(ctx, material, data)
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("error encrypting data: %v", err)})
		return
	}

	ctx.JSON(http.StatusCreated, EncryptResponse{Ciphertext: hex.EncodeToString(ciphertext)})
}

// Decrypt handles the POST request to decrypt hex data
// @Summary Decrypt data
// @Description Decrypt every 16-byte block independently. Zero padding is returned as-is.
// @Tags Cipher
// @Accept json
// @Produce json
// @Param requestBody body CipherRequest true "Key material and hex ciphertext"
// @Success 200 {object} DecryptResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /decrypt [post]
func (handler *cipherHandler) Decrypt(ctx *gin.Context) {
	material, data, ok := bindCipherRequest(ctx)
	if !ok {
		return
	}

	plaintext, err := handler.cipherService.Decrypt(ctx, material, data)
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("error decrypting data: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, DecryptResponse{Plaintext: hex.EncodeToString(plaintext)})
}

func bindCipherRequest(ctx *gin.Context) (*cryptoalg.KeyMaterial, []byte, bool) {
	var request CipherRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request body: %v", err)})
		return nil, nil, false
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return nil, nil, false
	}

	material, err := request.KeyMaterial()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return nil, nil, false
	}

	data, err := request.DataBytes()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return nil, nil, false
	}

	return material, data, true
}

// statusFor maps cipher errors caused by the caller to 400 and everything else to 500.
func statusFor(err error) int {
	var cfgErr *rijndael.ConfigError
	var inputErr *rijndael.InputError
	if errors.As(err, &cfgErr) || errors.As(err, &inputErr) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
