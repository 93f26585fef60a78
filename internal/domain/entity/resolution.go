package entity

import (
	"beacon/internal/domain/identifier"
)

// Resolution is the ephemeral outcome of resolving a free-form identifier to
// a canonical device. It is returned to the caller and never persisted.
//
// Directory failures, timeouts, and genuine no-matches all collapse into
// Found == false: the resolver trades diagnostic precision for an
// exception-free caller contract.
type Resolution struct {
	Found        bool            `json:"found"`
	SerialNumber string          `json:"serial_number,omitempty"`
	Identifier   string          `json:"identifier"`
	Kind         identifier.Kind `json:"identifier_type"`
}
