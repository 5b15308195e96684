package dicom

import (
	"math/big"

	"github.com/google/uuid"
)

// uuidRoot is the UID root for UUID-derived unique identifiers.
const uuidRoot = "2.25."

// NewUID returns a globally unique identifier on the UUID root,
// encoded as the decimal value of a random 128-bit UUID.
func NewUID() string {
	u := uuid.New()

	var n big.Int
	n.SetBytes(u[:])
	return uuidRoot + n.String()
}
