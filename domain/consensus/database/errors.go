package database

import (
	"github.com/kaspanet/kaspadns/infrastructure/db/database"
)

// ErrNotFound is returned by stores and the ledger view for absent
// outpoints, domain records and state keys.
var ErrNotFound = database.ErrNotFound

// IsNotFoundError returns whether err is, or wraps, ErrNotFound
func IsNotFoundError(err error) bool {
	return database.IsNotFoundError(err)
}
