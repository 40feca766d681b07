package domainrecordstore

import (
	"github.com/kaspanet/kaspadns/domain/consensus/model"
	"github.com/kaspanet/kaspadns/domain/consensus/model/externalapi"
)

// ledgerView exposes the committed records of a domainRecordStore.
// Staged changes are invisible to it.
type ledgerView struct {
	store     *domainRecordStore
	dbContext model.DBReader
}

// LedgerView returns a read-only view of the records committed in dbContext
func (drs *domainRecordStore) LedgerView(dbContext model.DBReader) model.LedgerView {
	return &ledgerView{
		store:     drs,
		dbContext: dbContext,
	}
}

func (lv *ledgerView) HasDomainRecord(name string) (bool, error) {
	return lv.dbContext.Has(lv.store.nameAsKey(name))
}

func (lv *ledgerView) DomainRecord(name string) (*externalapi.DomainRecord, error) {
	return lv.store.committedDomainRecord(lv.dbContext, name)
}
