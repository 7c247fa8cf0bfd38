package core

import "time"

// Document is the metadata record for a stored document. The file content
// itself lives in IPFS; CID is kept as an opaque reference to it.
type Document struct {
	ID          string    `json:"id"`
	Owner       string    `json:"owner"` // checksummed address of the uploader
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CID         string    `json:"cid"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
