package model

import "github.com/kaspanet/kaspadns/domain/consensus/model/externalapi"

// DomainRecordStore represents a store of domain records, at most one per name
type DomainRecordStore interface {
	Stage(stagingArea *StagingArea, record *externalapi.DomainRecord)
	StageDelete(stagingArea *StagingArea, name string)
	IsStaged(stagingArea *StagingArea) bool
	DomainRecord(dbContext DBReader, stagingArea *StagingArea, name string) (*externalapi.DomainRecord, error)
	HasDomainRecord(dbContext DBReader, stagingArea *StagingArea, name string) (bool, error)
	AllDomainRecords(dbContext DBReader) ([]*externalapi.DomainRecord, error)
	Commitment(dbContext DBReader, stagingArea *StagingArea) (*externalapi.DomainHash, error)
	LedgerView(dbContext DBReader) LedgerView
}
