package core

import "errors"

var (
	ErrInvalidAddress     = errors.New("invalid ethereum address")
	ErrNotRegistered      = errors.New("address has not requested a challenge")
	ErrMalformedSignature = errors.New("malformed signature")
	ErrUnauthorized       = errors.New("signature does not authorize this address")
	ErrDocumentNotFound   = errors.New("document not found")
	ErrNotDocumentOwner   = errors.New("caller does not own this document")
	ErrStoreFailure       = errors.New("store operation failed")
)
