package utxo

import (
	"github.com/kaspanet/kaspadns/domain/consensus/model/externalapi"
)

type utxoEntry struct {
	amount      uint64
	claim       externalapi.Claim
	blockHeight uint64
}

// NewUTXOEntry creates a new utxoEntry representing the given txOut
func NewUTXOEntry(amount uint64, claim externalapi.Claim, blockHeight uint64) externalapi.UTXOEntry {
	return &utxoEntry{
		amount:      amount,
		claim:       claim,
		blockHeight: blockHeight,
	}
}

func (u *utxoEntry) Amount() uint64 {
	return u.amount
}

func (u *utxoEntry) Claim() externalapi.Claim {
	return u.claim
}

func (u *utxoEntry) BlockHeight() uint64 {
	return u.blockHeight
}

// Equal returns whether entry equals to other
func (u *utxoEntry) Equal(other externalapi.UTXOEntry) bool {
	if u == nil || other == nil {
		return u == nil && other == nil
	}

	// If only the underlying value of other is nil it'll
	// make `other == nil` return false, so we check it
	// explicitly.
	downcastedOther := other.(*utxoEntry)
	if u == nil || downcastedOther == nil {
		return u == nil && downcastedOther == nil
	}

	if u.Amount() != other.Amount() {
		return false
	}

	if !u.Claim().Equal(other.Claim()) {
		return false
	}

	if u.BlockHeight() != other.BlockHeight() {
		return false
	}

	return true
}
