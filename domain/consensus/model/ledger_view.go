package model

import "github.com/kaspanet/kaspadns/domain/consensus/model/externalapi"

// LedgerView is a read-only view of the committed domain records.
// Changes staged by the block in progress are never visible through it.
type LedgerView interface {
	HasDomainRecord(name string) (bool, error)

	// DomainRecord returns the record of the given name, or an error
	// wrapping database.ErrNotFound if there isn't one.
	DomainRecord(name string) (*externalapi.DomainRecord, error)
}
