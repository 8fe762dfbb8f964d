package v1

import (
	"github.com/MGTheTrain/aes-vault/internal/domain/cryptoalg"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine, cipherService cryptoalg.CipherService) {
	v1 := r.Group(BasePath)

	cipherHandler := NewCipherHandler(cipherService)
	v1.POST("/encrypt", cipherHandler.Encrypt)
	v1.POST("/decrypt", cipherHandler.Decrypt)

	keyHandler := NewKeyHandler(cipherService)
	v1.POST("/keys", keyHandler.GenerateKey)
}
