package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Rithwik3425/Blockchain-Secure-Docs/core"
	"github.com/Rithwik3425/Blockchain-Secure-Docs/service"
)

// Handlers contains the HTTP handlers for auth and document endpoints
type Handlers struct {
	authService *service.AuthService
	docService  *service.DocumentService
}

// NewHandlers creates new HTTP handlers
func NewHandlers(authService *service.AuthService, docService *service.DocumentService) *Handlers {
	return &Handlers{
		authService: authService,
		docService:  docService,
	}
}

// Challenge handles the challenge request: it registers the address on
// first contact and returns the message the wallet must sign.
func (h *Handlers) Challenge(c *gin.Context) {
	var req struct {
		Address string `json:"address" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid_request", "address is required")
		return
	}

	challenge, err := h.authService.IssueChallenge(c.Request.Context(), req.Address)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"address": challenge.Address,
		"nonce":   challenge.Nonce,
		"message": challenge.Message,
	})
}

// Login handles the login request: it verifies the signature over the
// current challenge and establishes the session signature.
func (h *Handlers) Login(c *gin.Context) {
	var req struct {
		Address   string `json:"address" binding:"required"`
		Signature string `json:"signature" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid_request", "address and signature are required")
		return
	}

	identity, err := h.authService.Login(c.Request.Context(), req.Address, req.Signature)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	loginCounter.Inc()

	c.JSON(http.StatusOK, gin.H{
		"address":               identity.Address,
		"last_authenticated_at": identity.LastAuthenticatedAt.Format(time.RFC3339),
	})
}

// Me returns information about the authenticated wallet
func (h *Handlers) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"address": callerAddress(c),
	})
}

// CreateDocument records new document metadata for the caller
func (h *Handlers) CreateDocument(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		CID         string `json:"cid" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid_request", "name and cid are required")
		return
	}

	doc, err := h.docService.Create(c.Request.Context(), callerAddress(c), req.Name, req.Description, req.CID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, doc)
}

// ListDocuments returns the caller's documents
func (h *Handlers) ListDocuments(c *gin.Context) {
	docs, err := h.docService.List(c.Request.Context(), callerAddress(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	if docs == nil {
		docs = []*core.Document{}
	}
	c.JSON(http.StatusOK, gin.H{"documents": docs})
}

// GetDocument returns one of the caller's documents
func (h *Handlers) GetDocument(c *gin.Context) {
	doc, err := h.docService.Get(c.Request.Context(), callerAddress(c), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

// UpdateDocument changes metadata of one of the caller's documents
func (h *Handlers) UpdateDocument(c *gin.Context) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}

	doc, err := h.docService.Update(c.Request.Context(), callerAddress(c), c.Param("id"), req.Name, req.Description)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

// DeleteDocument removes one of the caller's documents
func (h *Handlers) DeleteDocument(c *gin.Context) {
	if err := h.docService.Delete(c.Request.Context(), callerAddress(c), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "document deleted"})
}

func callerAddress(c *gin.Context) string {
	return c.GetString(contextAddressKey)
}

// writeServiceError maps the closed error set from the services onto HTTP
// responses. Only the taxonomy tag and a short message leave the process;
// store internals never do.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrInvalidAddress):
		writeError(c, http.StatusBadRequest, "invalid_address", "not a valid ethereum address")
	case errors.Is(err, core.ErrMalformedSignature):
		writeError(c, http.StatusBadRequest, "malformed_signature", "signature could not be parsed")
	case errors.Is(err, core.ErrNotRegistered):
		writeError(c, http.StatusUnauthorized, "not_registered", "request a challenge first")
	case errors.Is(err, core.ErrUnauthorized):
		writeError(c, http.StatusUnauthorized, "unauthorized", "signature does not match")
	case errors.Is(err, core.ErrNotDocumentOwner):
		writeError(c, http.StatusForbidden, "forbidden", "document belongs to another wallet")
	case errors.Is(err, core.ErrDocumentNotFound):
		writeError(c, http.StatusNotFound, "not_found", "document not found")
	default:
		writeError(c, http.StatusInternalServerError, "internal", "internal error")
	}
}

func writeError(c *gin.Context, status int, kind, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": kind, "message": message})
}
