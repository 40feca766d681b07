package model

import "github.com/kaspanet/kaspadns/domain/consensus/model/externalapi"

// UTXOStore represents a store of unspent transaction outputs
type UTXOStore interface {
	StageAdd(stagingArea *StagingArea, outpoint *externalapi.DomainOutpoint, entry externalapi.UTXOEntry)
	StageRemove(stagingArea *StagingArea, outpoint *externalapi.DomainOutpoint)
	IsStaged(stagingArea *StagingArea) bool
	UTXOEntry(dbContext DBReader, stagingArea *StagingArea, outpoint *externalapi.DomainOutpoint) (externalapi.UTXOEntry, error)
	HasUTXOEntry(dbContext DBReader, stagingArea *StagingArea, outpoint *externalapi.DomainOutpoint) (bool, error)
}
