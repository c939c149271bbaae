package client

import "encoding/json"

// envelope is the wire format shared by every backend endpoint.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Total   int             `json:"total,omitempty"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// CreatePersonRequest for POST /personas. Image is a base64 data URL
// captured from the browser camera widget.
type CreatePersonRequest struct {
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido,omitempty"`
	Type      string `json:"tipo,omitempty"`
	Notes     string `json:"notas,omitempty"`
	Image     string `json:"imagen"`
}

// CreatePersonResult is the data payload of a successful registration.
type CreatePersonResult struct {
	ID        int64  `json:"id"`
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
}

// resolveRequest for POST /eventos/{id}/resolver.
type resolveRequest struct {
	Notes string `json:"notas"`
}
