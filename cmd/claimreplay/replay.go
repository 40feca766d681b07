package main

import (
	"fmt"
	"io"

	"github.com/kaspanet/kaspadns/domain/consensus"
	"github.com/kaspanet/kaspadns/domain/consensus/model/externalapi"
	"github.com/kaspanet/kaspadns/domain/consensus/ruleerrors"
	"github.com/kaspanet/kaspadns/domain/consensus/utils/consensushashing"
	"github.com/kaspanet/kaspadns/domain/consensus/utils/owneraddress"
	"github.com/pkg/errors"
)

// replayer feeds a fixture through a consensus, writing a verdict line for
// every block and every rejected transaction
type replayer struct {
	consensus consensus.Consensus
	resolver  *fixtureResolver
	build     bool
	out       io.Writer
}

type replayResult struct {
	acceptedBlocks       int
	rejectedBlocks       int
	rejectedTransactions int
}

func (r *replayer) replay(f *fixture) (*replayResult, error) {
	for _, genesisOutput := range f.Genesis {
		outpoint, err := r.resolver.genesisOutpoint(genesisOutput)
		if err != nil {
			return nil, err
		}
		output, err := r.resolver.output(genesisOutput.Output)
		if err != nil {
			return nil, errors.Wrapf(err, "genesis output %s", genesisOutput.Label)
		}
		err = r.consensus.AddGenesisUTXO(outpoint, output.Value, output.Claim)
		if err != nil {
			return nil, err
		}
	}
	log.Infof("Seeded %d genesis outputs", len(f.Genesis))

	result := &replayResult{}
	for _, blockJSON := range f.Blocks {
		transactions := make([]*externalapi.DomainTransaction, len(blockJSON.Transactions))
		labels := make(map[*externalapi.DomainTransaction]string, len(blockJSON.Transactions))
		for i, transactionJSON := range blockJSON.Transactions {
			tx, err := r.resolver.transaction(transactionJSON)
			if err != nil {
				return nil, err
			}
			transactions[i] = tx
			labels[tx] = transactionJSON.Label
		}

		var err error
		if r.build {
			err = r.buildBlock(transactions, labels, result)
		} else {
			err = r.validateBlock(transactions, labels, result)
		}
		if err != nil {
			return nil, err
		}
	}

	return result, r.writeRecords()
}

func (r *replayer) buildBlock(transactions []*externalapi.DomainTransaction,
	labels map[*externalapi.DomainTransaction]string, result *replayResult) error {

	block, invalidTransactions, err := r.consensus.BuildBlock(transactions)
	if err != nil {
		return err
	}
	for _, invalid := range invalidTransactions {
		r.writeRejectedTransaction(block.Height, labels[invalid.Transaction], invalid)
	}
	result.rejectedTransactions += len(invalidTransactions)

	summaries, err := r.consensus.ValidateAndInsertBlock(block)
	if err != nil {
		return err
	}
	result.acceptedBlocks++
	r.writeAcceptedBlock(block, labels, summaries)
	return nil
}

func (r *replayer) validateBlock(transactions []*externalapi.DomainTransaction,
	labels map[*externalapi.DomainTransaction]string, result *replayResult) error {

	headHeight, err := r.consensus.HeadHeight()
	if err != nil {
		return err
	}
	block := &externalapi.DomainBlock{
		Height:       headHeight + 1,
		Transactions: transactions,
	}

	summaries, err := r.consensus.ValidateAndInsertBlock(block)
	if err != nil {
		invalidTransactionsErr := ruleerrors.ErrInvalidTransactionsInNewBlock{}
		if !errors.As(err, &invalidTransactionsErr) {
			return err
		}
		result.rejectedBlocks++
		result.rejectedTransactions += len(invalidTransactionsErr.InvalidTransactions)
		fmt.Fprintf(r.out, "block %d rejected\n", block.Height)
		for _, invalid := range invalidTransactionsErr.InvalidTransactions {
			r.writeRejectedTransaction(block.Height, labels[invalid.Transaction], invalid)
		}
		return nil
	}
	result.acceptedBlocks++
	r.writeAcceptedBlock(block, labels, summaries)
	return nil
}

func (r *replayer) writeAcceptedBlock(block *externalapi.DomainBlock,
	labels map[*externalapi.DomainTransaction]string, summaries []*externalapi.TransactionSummary) {

	fmt.Fprintf(r.out, "block %d accepted with %d transactions\n", block.Height, len(block.Transactions))
	for i, tx := range block.Transactions {
		summary := summaries[i]
		fmt.Fprintf(r.out, "  %s (%s) accepted: in %d, out %d, fee %d, required fees %d\n",
			labels[tx], consensushashing.TransactionID(tx), summary.TotalIn, summary.TotalOut,
			summary.Fee, summary.RequiredFees)
	}
}

func (r *replayer) writeRejectedTransaction(blockHeight uint64, label string, invalid ruleerrors.InvalidTransaction) {
	category, _ := ruleerrors.CategoryOf(invalid.Error)
	fmt.Fprintf(r.out, "  %s (%s) rejected in block %d [%s]: %s\n",
		label, invalid.TransactionID, blockHeight, category, invalid.Error)
}

func (r *replayer) writeRecords() error {
	records, err := r.consensus.GetDomainRecords()
	if err != nil {
		return err
	}
	for _, record := range records {
		owner, err := owneraddress.Encode(record.Owner, r.resolver.prefix)
		if err != nil {
			return err
		}
		fmt.Fprintf(r.out, "record %s: owner %s, state %s, amount %d, last updated at %d by %s\n",
			record.Name, owner, record.State, record.Amount, record.LastUpdateBlockHeight,
			record.LastUpdateOutpoint)
	}

	commitment, err := r.consensus.DomainRecordsCommitment()
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "records commitment: %s\n", commitment)
	return nil
}
