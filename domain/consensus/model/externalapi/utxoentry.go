package externalapi

// UTXOEntry houses details about an individual transaction output in a utxo
// set such as the height of the block that accepted it, its claim, and how
// much it pays.
type UTXOEntry interface {
	Amount() uint64      // Utxo amount in Sompis
	Claim() Claim        // The claim that spends the output.
	BlockHeight() uint64 // Height of the block accepting the tx.
	Equal(other UTXOEntry) bool
}

// OutpointAndUTXOEntryPair is an outpoint along with its
// respective UTXO entry
type OutpointAndUTXOEntryPair struct {
	Outpoint  *DomainOutpoint
	UTXOEntry UTXOEntry
}
