package domainnames

import (
	"github.com/kaspanet/kaspadns/domain/consensus/database"
	"github.com/kaspanet/kaspadns/domain/consensus/model"
	"github.com/kaspanet/kaspadns/domain/consensus/model/externalapi"
	"github.com/kaspanet/kaspadns/domain/dagconfig"
)

// NameStatus is the availability of a name to a new claim, as seen from
// the block in progress
type NameStatus struct {
	// Available is false if the name has a live claim, either
	// committed or earlier in the block in progress.
	Available bool

	// NewOrExpired is true if the name has no committed claim, or if
	// its committed claim passed the expiration horizon.
	NewOrExpired bool

	// PreviousRecord is the committed record of the name, if any
	PreviousRecord *externalapi.DomainRecord
}

// CheckNameStatus combines the committed ledger with the names already
// claimed in the block in progress to find out the status of name
func CheckNameStatus(name string, namePool *model.NamePool, ledgerView model.LedgerView,
	blockHeight uint64, params *dagconfig.Params) (*NameStatus, error) {

	if namePool.Contains(name) {
		return &NameStatus{Available: false, NewOrExpired: false}, nil
	}

	record, err := ledgerView.DomainRecord(name)
	if database.IsNotFoundError(err) {
		return &NameStatus{Available: true, NewOrExpired: true}, nil
	}
	if err != nil {
		return nil, err
	}

	status := &NameStatus{PreviousRecord: record}
	switch {
	case DomainIsExpired(record, blockHeight, params):
		status.Available = true
		status.NewOrExpired = true
	case !AuctionIsClosed(record, blockHeight, params):
		status.Available = true
	}
	return status, nil
}

// AuctionIsClosed returns whether the bidding window of record's name is
// closed at blockHeight. Settled records are closed regardless of age.
func AuctionIsClosed(record *externalapi.DomainRecord, blockHeight uint64, params *dagconfig.Params) bool {
	if record.State == externalapi.DomainStateNotInAuction {
		return true
	}
	return record.Age(blockHeight) >= params.DomainAuctionDuration
}

// DomainIsExpired returns whether record's claim passed the expiration
// horizon at blockHeight
func DomainIsExpired(record *externalapi.DomainRecord, blockHeight uint64, params *dagconfig.Params) bool {
	return record.Age(blockHeight) >= params.DomainExpirationDuration
}
