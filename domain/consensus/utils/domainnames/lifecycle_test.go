package domainnames

import (
	"testing"

	"github.com/kaspanet/kaspadns/domain/consensus/database"
	"github.com/kaspanet/kaspadns/domain/consensus/model"
	"github.com/kaspanet/kaspadns/domain/consensus/model/externalapi"
	"github.com/kaspanet/kaspadns/domain/dagconfig"
	"github.com/pkg/errors"
)

type fakeLedgerView map[string]*externalapi.DomainRecord

func (f fakeLedgerView) HasDomainRecord(name string) (bool, error) {
	_, ok := f[name]
	return ok, nil
}

func (f fakeLedgerView) DomainRecord(name string) (*externalapi.DomainRecord, error) {
	record, ok := f[name]
	if !ok {
		return nil, errors.Wrapf(database.ErrNotFound, "domain record %s not found", name)
	}
	return record.Clone(), nil
}

type failingLedgerView struct{}

func (failingLedgerView) HasDomainRecord(string) (bool, error) {
	return false, errors.New("disk on fire")
}

func (failingLedgerView) DomainRecord(string) (*externalapi.DomainRecord, error) {
	return nil, errors.New("disk on fire")
}

func TestCheckNameStatus(t *testing.T) {
	params := &dagconfig.SimnetParams // auction: 3 blocks, expiration: 10 blocks

	ledger := fakeLedgerView{
		"auctioned": {Name: "auctioned", State: externalapi.DomainStatePossiblyInAuction, LastUpdateBlockHeight: 10},
		"settled":   {Name: "settled", State: externalapi.DomainStateNotInAuction, LastUpdateBlockHeight: 10},
	}
	namePool := model.NewNamePool()
	namePool.Add("pooled")

	tests := []struct {
		name                 string
		blockHeight          uint64
		expectedAvailable    bool
		expectedNewOrExpired bool
		expectedRecord       bool
	}{
		{"unseen", 12, true, true, false},
		{"pooled", 12, false, false, false},
		{"auctioned", 12, true, false, true},
		{"auctioned", 13, false, false, true},
		{"auctioned", 20, true, true, true},
		{"settled", 11, false, false, true},
		{"settled", 19, false, false, true},
		{"settled", 20, true, true, true},
	}

	for _, test := range tests {
		status, err := CheckNameStatus(test.name, namePool, ledger, test.blockHeight, params)
		if err != nil {
			t.Fatalf("TestCheckNameStatus: %s at %d: %s", test.name, test.blockHeight, err)
		}
		if status.Available != test.expectedAvailable || status.NewOrExpired != test.expectedNewOrExpired {
			t.Fatalf("TestCheckNameStatus: %s at %d: expected (available: %t, new or expired: %t), got %+v",
				test.name, test.blockHeight, test.expectedAvailable, test.expectedNewOrExpired, status)
		}
		if (status.PreviousRecord != nil) != test.expectedRecord {
			t.Fatalf("TestCheckNameStatus: %s at %d: expected a previous record: %t",
				test.name, test.blockHeight, test.expectedRecord)
		}
	}

	_, err := CheckNameStatus("unseen", namePool, failingLedgerView{}, 12, params)
	if err == nil || database.IsNotFoundError(err) {
		t.Fatalf("TestCheckNameStatus: expected the ledger error to propagate, got %v", err)
	}
}

func TestAuctionIsClosedAndDomainIsExpired(t *testing.T) {
	params := &dagconfig.SimnetParams
	record := &externalapi.DomainRecord{State: externalapi.DomainStatePossiblyInAuction, LastUpdateBlockHeight: 5}

	if AuctionIsClosed(record, 7, params) {
		t.Fatalf("TestAuctionIsClosedAndDomainIsExpired: auction closed before its duration elapsed")
	}
	if !AuctionIsClosed(record, 8, params) {
		t.Fatalf("TestAuctionIsClosedAndDomainIsExpired: auction still open after its duration elapsed")
	}

	record.State = externalapi.DomainStateNotInAuction
	if !AuctionIsClosed(record, 5, params) {
		t.Fatalf("TestAuctionIsClosedAndDomainIsExpired: a settled record has an open auction")
	}

	if DomainIsExpired(record, 14, params) {
		t.Fatalf("TestAuctionIsClosedAndDomainIsExpired: expired one block early")
	}
	if !DomainIsExpired(record, 15, params) {
		t.Fatalf("TestAuctionIsClosedAndDomainIsExpired: not expired at the expiration horizon")
	}
}
