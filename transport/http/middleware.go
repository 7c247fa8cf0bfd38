package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rithwik3425/Blockchain-Secure-Docs/service"
)

const (
	// HeaderAddress and HeaderSignature carry the wallet credentials on
	// every protected request. The signature is the one accepted at the
	// last login, resent as a bearer-token substitute.
	HeaderAddress   = "X-Wallet-Address"
	HeaderSignature = "X-Wallet-Signature"

	contextAddressKey = "userAddress"
)

// AuthMiddleware creates middleware that authorizes requests against the
// stored session state and puts the resolved address into the context.
func AuthMiddleware(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		address := c.GetHeader(HeaderAddress)
		signature := c.GetHeader(HeaderSignature)
		if address == "" || signature == "" {
			writeError(c, http.StatusUnauthorized, "unauthorized", "wallet address and signature headers are required")
			return
		}

		resolved, err := authService.Authorize(c.Request.Context(), address, signature)
		if err != nil {
			writeServiceError(c, err)
			return
		}

		c.Set(contextAddressKey, resolved)

		c.Next()
	}
}
