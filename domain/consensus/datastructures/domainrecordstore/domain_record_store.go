package domainrecordstore

import (
	"github.com/kaspanet/kaspadns/domain/consensus/database"
	"github.com/kaspanet/kaspadns/domain/consensus/model"
	"github.com/kaspanet/kaspadns/domain/consensus/model/externalapi"
	"github.com/kaspanet/kaspadns/domain/consensus/utils/multiset"
	"github.com/kaspanet/kaspadns/domain/consensus/utils/utxo"
	"github.com/pkg/errors"
)

var domainRecordBucket = database.MakeBucket([]byte("domain-records"))
var commitmentKey = database.MakeBucket(nil).Key([]byte("domain-records-commitment"))

// domainRecordStore represents a store of domain records. Alongside the
// records it keeps a multiset commitment to the whole set of records.
type domainRecordStore struct {
}

// New instantiates a new DomainRecordStore
func New() model.DomainRecordStore {
	return &domainRecordStore{}
}

// Stage stages record as the record of its name, replacing any previous one
func (drs *domainRecordStore) Stage(stagingArea *model.StagingArea, record *externalapi.DomainRecord) {
	stagingShard := drs.stagingShard(stagingArea)
	delete(stagingShard.toDelete, record.Name)
	stagingShard.toAdd[record.Name] = record.Clone()
}

// StageDelete stages the removal of the record of name
func (drs *domainRecordStore) StageDelete(stagingArea *model.StagingArea, name string) {
	stagingShard := drs.stagingShard(stagingArea)
	delete(stagingShard.toAdd, name)
	stagingShard.toDelete[name] = struct{}{}
}

func (drs *domainRecordStore) IsStaged(stagingArea *model.StagingArea) bool {
	return drs.stagingShard(stagingArea).isStaged()
}

// DomainRecord gets the record of name. It returns database.ErrNotFound
// if name has no record.
func (drs *domainRecordStore) DomainRecord(dbContext model.DBReader, stagingArea *model.StagingArea,
	name string) (*externalapi.DomainRecord, error) {

	stagingShard := drs.stagingShard(stagingArea)

	if _, ok := stagingShard.toDelete[name]; ok {
		return nil, errors.Wrapf(database.ErrNotFound, "domain record %s is staged for deletion", name)
	}
	if record, ok := stagingShard.toAdd[name]; ok {
		return record.Clone(), nil
	}

	return drs.committedDomainRecord(dbContext, name)
}

// HasDomainRecord returns whether name has a record
func (drs *domainRecordStore) HasDomainRecord(dbContext model.DBReader, stagingArea *model.StagingArea,
	name string) (bool, error) {

	stagingShard := drs.stagingShard(stagingArea)

	if _, ok := stagingShard.toDelete[name]; ok {
		return false, nil
	}
	if _, ok := stagingShard.toAdd[name]; ok {
		return true, nil
	}

	return dbContext.Has(drs.nameAsKey(name))
}

// AllDomainRecords returns every committed record, ordered by name
func (drs *domainRecordStore) AllDomainRecords(dbContext model.DBReader) ([]*externalapi.DomainRecord, error) {
	cursor, err := dbContext.Cursor(domainRecordBucket)
	if err != nil {
		return nil, err
	}
	defer cursor.Close()

	var records []*externalapi.DomainRecord
	for ok := cursor.First(); ok; ok = cursor.Next() {
		recordBytes, err := cursor.Value()
		if err != nil {
			return nil, err
		}
		record, err := utxo.DeserializeDomainRecord(recordBytes)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// Commitment returns the hash of the set of records, staged changes
// included
func (drs *domainRecordStore) Commitment(dbContext model.DBReader, stagingArea *model.StagingArea) (
	*externalapi.DomainHash, error) {

	commitment, err := drs.stagedCommitment(dbContext, drs.stagingShard(stagingArea))
	if err != nil {
		return nil, err
	}
	return commitment.Hash(), nil
}

func (drs *domainRecordStore) committedDomainRecord(dbContext model.DBReader, name string) (
	*externalapi.DomainRecord, error) {

	recordBytes, err := dbContext.Get(drs.nameAsKey(name))
	if err != nil {
		return nil, err
	}
	return utxo.DeserializeDomainRecord(recordBytes)
}

func (drs *domainRecordStore) committedCommitment(dbContext model.DBReader) (model.Multiset, error) {
	commitmentBytes, err := dbContext.Get(commitmentKey)
	if database.IsNotFoundError(err) {
		return multiset.New(), nil
	}
	if err != nil {
		return nil, err
	}
	return multiset.FromBytes(commitmentBytes)
}

// stagedCommitment applies the changes of stagingShard to the committed
// commitment. Every replaced or deleted record is removed from the
// multiset in its serialized form, exactly as it was added.
func (drs *domainRecordStore) stagedCommitment(dbContext model.DBReader,
	stagingShard *domainRecordStagingShard) (model.Multiset, error) {

	commitment, err := drs.committedCommitment(dbContext)
	if err != nil {
		return nil, err
	}

	for name := range stagingShard.toDelete {
		err := drs.removeCommittedRecord(dbContext, commitment, name)
		if err != nil {
			return nil, err
		}
	}

	for name, record := range stagingShard.toAdd {
		err := drs.removeCommittedRecord(dbContext, commitment, name)
		if err != nil {
			return nil, err
		}
		recordBytes, err := utxo.SerializeDomainRecord(record)
		if err != nil {
			return nil, err
		}
		commitment.Add(recordBytes)
	}

	return commitment, nil
}

func (drs *domainRecordStore) removeCommittedRecord(dbContext model.DBReader, commitment model.Multiset, name string) error {
	recordBytes, err := dbContext.Get(drs.nameAsKey(name))
	if database.IsNotFoundError(err) {
		return nil
	}
	if err != nil {
		return err
	}
	commitment.Remove(recordBytes)
	return nil
}

func (drs *domainRecordStore) nameAsKey(name string) model.DBKey {
	return domainRecordBucket.Key([]byte(name))
}
