package utxo

import (
	"bytes"
	"io"

	"github.com/kaspanet/kaspadns/domain/consensus/model/externalapi"
	"github.com/kaspanet/kaspadns/domain/consensus/utils/serialization"
)

// SerializeOutpoint returns the byte-slice representation of the given outpoint
func SerializeOutpoint(outpoint *externalapi.DomainOutpoint) ([]byte, error) {
	w := &bytes.Buffer{}
	err := serializeOutpoint(w, outpoint)
	if err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// DeserializeOutpoint deserializes the given byte slice to an outpoint
func DeserializeOutpoint(outpointBytes []byte) (*externalapi.DomainOutpoint, error) {
	return deserializeOutpoint(bytes.NewReader(outpointBytes))
}

func serializeOutpoint(w io.Writer, outpoint *externalapi.DomainOutpoint) error {
	return serialization.WriteElements(w, outpoint.TransactionID, outpoint.Index)
}

func deserializeOutpoint(r io.Reader) (*externalapi.DomainOutpoint, error) {
	outpoint := &externalapi.DomainOutpoint{}
	err := serialization.ReadElements(r, &outpoint.TransactionID, &outpoint.Index)
	if err != nil {
		return nil, err
	}
	return outpoint, nil
}

// SerializeUTXOEntry returns the byte-slice representation of the given UTXOEntry
func SerializeUTXOEntry(entry externalapi.UTXOEntry) ([]byte, error) {
	w := &bytes.Buffer{}
	err := serialization.WriteElements(w, entry.Amount(), entry.BlockHeight())
	if err != nil {
		return nil, err
	}
	err = serialization.WriteClaim(w, entry.Claim())
	if err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// DeserializeUTXOEntry deserializes the given byte slice to a UTXOEntry
func DeserializeUTXOEntry(entryBytes []byte) (externalapi.UTXOEntry, error) {
	r := bytes.NewReader(entryBytes)
	var amount, blockHeight uint64
	err := serialization.ReadElements(r, &amount, &blockHeight)
	if err != nil {
		return nil, err
	}
	claim, err := serialization.ReadClaim(r)
	if err != nil {
		return nil, err
	}
	return NewUTXOEntry(amount, claim, blockHeight), nil
}

// SerializeDomainRecord returns the byte-slice representation of the given record
func SerializeDomainRecord(record *externalapi.DomainRecord) ([]byte, error) {
	w := &bytes.Buffer{}
	err := serialization.WriteElements(w, record.Name, record.Value, record.Owner, uint8(record.State),
		record.Amount, record.LastUpdateBlockHeight)
	if err != nil {
		return nil, err
	}
	err = serializeOutpoint(w, &record.LastUpdateOutpoint)
	if err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// DeserializeDomainRecord deserializes the given byte slice to a domain record
func DeserializeDomainRecord(recordBytes []byte) (*externalapi.DomainRecord, error) {
	r := bytes.NewReader(recordBytes)
	record := &externalapi.DomainRecord{}
	var state uint8
	err := serialization.ReadElements(r, &record.Name, &record.Value, &record.Owner, &state,
		&record.Amount, &record.LastUpdateBlockHeight)
	if err != nil {
		return nil, err
	}
	record.State = externalapi.DomainState(state)

	outpoint, err := deserializeOutpoint(r)
	if err != nil {
		return nil, err
	}
	record.LastUpdateOutpoint = *outpoint
	return record, nil
}
