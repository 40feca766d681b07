package consensusstatemanager

import (
	"github.com/kaspanet/kaspadns/domain/consensus/database"
	"github.com/kaspanet/kaspadns/domain/consensus/model"
	"github.com/kaspanet/kaspadns/domain/consensus/model/externalapi"
)

// PopulateTransactionWithUTXOEntries populates the transaction UTXO entries with data from the committed UTXO set.
// Entries the caller already set are overwritten, so a transaction is always judged by the committed ledger.
// Inputs whose outpoint is not in the UTXO set are left without an entry, for the transaction validator to
// reject. Only database failures are returned as errors.
func (csm *consensusStateManager) PopulateTransactionWithUTXOEntries(transaction *externalapi.DomainTransaction) error {
	stagingArea := model.NewStagingArea()
	for _, transactionInput := range transaction.Inputs {
		// nil inputs are rejected by the transaction validator
		if transactionInput == nil {
			continue
		}
		transactionInput.UTXOEntry = nil

		utxoEntry, err := csm.utxoStore.UTXOEntry(csm.databaseContext, stagingArea, &transactionInput.PreviousOutpoint)
		if database.IsNotFoundError(err) {
			continue
		}
		if err != nil {
			return err
		}
		transactionInput.UTXOEntry = utxoEntry
	}

	return nil
}
