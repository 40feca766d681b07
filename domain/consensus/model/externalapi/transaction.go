package externalapi

import (
	"fmt"
)

// DomainTransaction represents a transaction
type DomainTransaction struct {
	Version    uint16
	Inputs     []*DomainTransactionInput
	Outputs    []*DomainTransactionOutput
	Signatures []*DomainTransactionSignature

	Fee uint64
}

// Clone returns a clone of DomainTransaction
func (tx *DomainTransaction) Clone() *DomainTransaction {
	inputsClone := make([]*DomainTransactionInput, len(tx.Inputs))
	for i, input := range tx.Inputs {
		inputsClone[i] = input.Clone()
	}

	outputsClone := make([]*DomainTransactionOutput, len(tx.Outputs))
	for i, output := range tx.Outputs {
		outputsClone[i] = output.Clone()
	}

	signaturesClone := make([]*DomainTransactionSignature, len(tx.Signatures))
	for i, signature := range tx.Signatures {
		signaturesClone[i] = signature.Clone()
	}

	return &DomainTransaction{
		Version:    tx.Version,
		Inputs:     inputsClone,
		Outputs:    outputsClone,
		Signatures: signaturesClone,
		Fee:        tx.Fee,
	}
}

// DomainTransactionInput represents a transaction input
type DomainTransactionInput struct {
	PreviousOutpoint DomainOutpoint

	UTXOEntry UTXOEntry
}

// Clone returns a clone of DomainTransactionInput
func (input *DomainTransactionInput) Clone() *DomainTransactionInput {
	// UTXOEntry is a read-only type, so it's shared between clones
	return &DomainTransactionInput{
		PreviousOutpoint: input.PreviousOutpoint,
		UTXOEntry:        input.UTXOEntry,
	}
}

// DomainOutpoint represents a transaction outpoint
type DomainOutpoint struct {
	TransactionID DomainTransactionID
	Index         uint32
}

// NewDomainOutpoint instantiates a new DomainOutpoint with the given id and index
func NewDomainOutpoint(id *DomainTransactionID, index uint32) *DomainOutpoint {
	return &DomainOutpoint{
		TransactionID: *id,
		Index:         index,
	}
}

// Equal returns whether op equals to other
func (op *DomainOutpoint) Equal(other *DomainOutpoint) bool {
	if op == nil || other == nil {
		return op == other
	}

	return *op == *other
}

// String stringifies an outpoint.
func (op DomainOutpoint) String() string {
	return fmt.Sprintf("(%s: %d)", op.TransactionID, op.Index)
}

// DomainTransactionOutput represents a transaction output. Every
// output pairs an amount with the claim that spends it.
type DomainTransactionOutput struct {
	Value uint64
	Claim Claim
}

// Clone returns a clone of DomainTransactionOutput
func (output *DomainTransactionOutput) Clone() *DomainTransactionOutput {
	var claimClone Claim
	if output.Claim != nil {
		claimClone = output.Claim.Clone()
	}
	return &DomainTransactionOutput{
		Value: output.Value,
		Claim: claimClone,
	}
}

// DomainTransactionID represents the ID of a transaction
type DomainTransactionID DomainHash

// NewDomainTransactionIDFromByteArray constructs a new TransactionID out of a byte array
func NewDomainTransactionIDFromByteArray(transactionIDBytes *[DomainHashSize]byte) *DomainTransactionID {
	return (*DomainTransactionID)(NewDomainHashFromByteArray(transactionIDBytes))
}

// String stringifies a transaction ID.
func (id DomainTransactionID) String() string {
	return DomainHash(id).String()
}

// ByteArray returns the bytes in this transactionID represented as a byte array.
// The transactionID bytes are cloned, therefore it is safe to modify the resulting array.
func (id *DomainTransactionID) ByteArray() *[DomainHashSize]byte {
	return (*DomainHash)(id).ByteArray()
}

// Equal returns whether id equals to other
func (id *DomainTransactionID) Equal(other *DomainTransactionID) bool {
	return (*DomainHash)(id).Equal((*DomainHash)(other))
}
