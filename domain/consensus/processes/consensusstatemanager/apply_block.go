package consensusstatemanager

import (
	"github.com/kaspanet/kaspadns/domain/consensus/database"
	"github.com/kaspanet/kaspadns/domain/consensus/model"
	"github.com/kaspanet/kaspadns/domain/consensus/model/externalapi"
	"github.com/kaspanet/kaspadns/domain/consensus/ruleerrors"
	"github.com/kaspanet/kaspadns/domain/consensus/utils/consensushashing"
	"github.com/kaspanet/kaspadns/domain/consensus/utils/utxo"
	"github.com/kaspanet/kaspadns/infrastructure/logger"
	"github.com/pkg/errors"
)

// ApplyBlock writes the effects of an already validated block: its inputs
// are spent, its outputs are added to the UTXO set, its domain claims
// become the records of their names and the head advances to the block's
// height. All of it is committed in a single database transaction.
func (csm *consensusStateManager) ApplyBlock(block *externalapi.DomainBlock) error {
	onEnd := logger.LogAndMeasureExecutionTime(log, "ApplyBlock")
	defer onEnd()

	nextBlockHeight, err := csm.NextBlockHeight()
	if err != nil {
		return err
	}
	if block.Height != nextBlockHeight {
		return errors.Wrapf(ruleerrors.ErrWrongBlockHeight, "cannot apply block at height %d "+
			"while the next height is %d", block.Height, nextBlockHeight)
	}

	stagingArea := model.NewStagingArea()
	for _, transaction := range block.Transactions {
		err := csm.PopulateTransactionWithUTXOEntries(transaction)
		if err != nil {
			return err
		}
		err = csm.stageTransaction(stagingArea, transaction, block.Height)
		if err != nil {
			return err
		}
	}
	csm.consensusStateStore.StageHeadHeight(stagingArea, block.Height)

	dbTx, err := csm.databaseContext.Begin()
	if err != nil {
		return err
	}
	defer dbTx.RollbackUnlessClosed()

	err = stagingArea.Commit(dbTx)
	if err != nil {
		return err
	}
	err = dbTx.Commit()
	if err != nil {
		return err
	}

	log.Debugf("Applied block at height %d with %d transactions", block.Height, len(block.Transactions))
	return nil
}

func (csm *consensusStateManager) stageTransaction(stagingArea *model.StagingArea,
	transaction *externalapi.DomainTransaction, blockHeight uint64) error {

	transactionID := consensushashing.TransactionID(transaction)

	var releasedDomainInput *externalapi.DomainTransactionInput
	hasDomainOutput := false

	for _, input := range transaction.Inputs {
		if input.UTXOEntry == nil {
			return errors.Errorf("transaction %s spends %s which is not in the UTXO set",
				transactionID, input.PreviousOutpoint)
		}
		if _, ok := input.UTXOEntry.Claim().(*externalapi.ClaimDomain); ok {
			releasedDomainInput = input
		}
		csm.utxoStore.StageRemove(stagingArea, &input.PreviousOutpoint)
	}

	for i, output := range transaction.Outputs {
		outpoint := externalapi.NewDomainOutpoint(transactionID, uint32(i))
		csm.utxoStore.StageAdd(stagingArea, outpoint, utxo.NewUTXOEntry(output.Value, output.Claim, blockHeight))

		claim, ok := output.Claim.(*externalapi.ClaimDomain)
		if !ok {
			continue
		}
		hasDomainOutput = true
		csm.domainRecordStore.Stage(stagingArea, &externalapi.DomainRecord{
			Name:                  claim.Name,
			Value:                 claim.Value,
			Owner:                 claim.Owner,
			State:                 claim.State,
			Amount:                output.Value,
			LastUpdateOutpoint:    *outpoint,
			LastUpdateBlockHeight: blockHeight,
		})
	}

	if releasedDomainInput != nil && !hasDomainOutput {
		return csm.stageDomainRelease(stagingArea, releasedDomainInput)
	}
	return nil
}

// stageDomainRelease deletes the record of a name whose claim was spent
// without being claimed again. A record is only deleted through the
// output that currently claims it: spending an outdated claim, or one
// whose record is already gone, leaves the records as they are.
func (csm *consensusStateManager) stageDomainRelease(stagingArea *model.StagingArea,
	input *externalapi.DomainTransactionInput) error {

	claim := input.UTXOEntry.Claim().(*externalapi.ClaimDomain)
	record, err := csm.domainRecordStore.DomainRecord(csm.databaseContext, stagingArea, claim.Name)
	if database.IsNotFoundError(err) {
		log.Debugf("Outdated claim %s of domain %s was spent", input.PreviousOutpoint, claim.Name)
		return nil
	}
	if err != nil {
		return err
	}
	if record.LastUpdateOutpoint != input.PreviousOutpoint {
		log.Debugf("Outdated claim %s of domain %s was spent", input.PreviousOutpoint, claim.Name)
		return nil
	}

	log.Debugf("Domain %s was released by %s", claim.Name, input.PreviousOutpoint)
	csm.domainRecordStore.StageDelete(stagingArea, claim.Name)
	return nil
}
