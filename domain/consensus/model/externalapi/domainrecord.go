package externalapi

// DomainRecord is the committed state of a claimed name: the output that
// last claimed it and the height at which that happened
type DomainRecord struct {
	Name                  string
	Value                 []byte
	Owner                 DomainPublicKey
	State                 DomainState
	Amount                uint64
	LastUpdateOutpoint    DomainOutpoint
	LastUpdateBlockHeight uint64
}

// Clone returns a clone of DomainRecord
func (record *DomainRecord) Clone() *DomainRecord {
	clone := *record
	clone.Value = make([]byte, len(record.Value))
	copy(clone.Value, record.Value)
	return &clone
}

// Age returns the number of blocks between the record's last update and
// the given block height
func (record *DomainRecord) Age(blockHeight uint64) uint64 {
	if blockHeight < record.LastUpdateBlockHeight {
		return 0
	}
	return blockHeight - record.LastUpdateBlockHeight
}
