package consensus_test

import (
	"testing"

	"github.com/kaspanet/go-secp256k1"
	"github.com/kaspanet/kaspadns/domain/consensus"
	"github.com/kaspanet/kaspadns/domain/consensus/model/externalapi"
	"github.com/kaspanet/kaspadns/domain/consensus/ruleerrors"
	"github.com/kaspanet/kaspadns/domain/consensus/utils/consensushashing"
	"github.com/kaspanet/kaspadns/domain/consensus/utils/signing"
	"github.com/kaspanet/kaspadns/domain/dagconfig"
	"github.com/pkg/errors"
)

type owner struct {
	keyPair   *secp256k1.SchnorrKeyPair
	publicKey externalapi.DomainPublicKey
}

func newOwner(t *testing.T, seed string) *owner {
	keyPair, err := signing.KeyPairFromSeed([]byte(seed))
	if err != nil {
		t.Fatalf("KeyPairFromSeed: %s", err)
	}
	publicKey, err := signing.PublicKey(keyPair)
	if err != nil {
		t.Fatalf("PublicKey: %s", err)
	}
	return &owner{keyPair: keyPair, publicKey: publicKey}
}

func genesisOutpoint(id byte) *externalapi.DomainOutpoint {
	return externalapi.NewDomainOutpoint(
		externalapi.NewDomainTransactionIDFromByteArray(&[externalapi.DomainHashSize]byte{id}), 0)
}

func spend(outpoints ...*externalapi.DomainOutpoint) []*externalapi.DomainTransactionInput {
	inputs := make([]*externalapi.DomainTransactionInput, len(outpoints))
	for i, outpoint := range outpoints {
		inputs[i] = &externalapi.DomainTransactionInput{PreviousOutpoint: *outpoint}
	}
	return inputs
}

func pay(amount uint64, to *owner) *externalapi.DomainTransactionOutput {
	return &externalapi.DomainTransactionOutput{
		Value: amount,
		Claim: &externalapi.ClaimBySignature{Owner: to.publicKey},
	}
}

func claim(amount uint64, name string, to *owner, state externalapi.DomainState) *externalapi.DomainTransactionOutput {
	return &externalapi.DomainTransactionOutput{
		Value: amount,
		Claim: &externalapi.ClaimDomain{Name: name, Value: []byte("ipfs://" + name), Owner: to.publicKey, State: state},
	}
}

func signedTransaction(t *testing.T, inputs []*externalapi.DomainTransactionInput,
	outputs []*externalapi.DomainTransactionOutput, signers ...*owner) *externalapi.DomainTransaction {

	tx := &externalapi.DomainTransaction{Inputs: inputs, Outputs: outputs}
	for _, signer := range signers {
		err := signing.SignTransaction(tx, signer.keyPair)
		if err != nil {
			t.Fatalf("SignTransaction: %s", err)
		}
	}
	return tx
}

func outpointOf(tx *externalapi.DomainTransaction, index uint32) *externalapi.DomainOutpoint {
	return externalapi.NewDomainOutpoint(consensushashing.TransactionID(tx), index)
}

func addBlock(t *testing.T, tc consensus.TestConsensus, transactions ...*externalapi.DomainTransaction) (
	*externalapi.DomainBlock, []ruleerrors.InvalidTransaction) {

	block, invalidTransactions, err := tc.AddBlock(transactions)
	if err != nil {
		t.Fatalf("AddBlock: %+v", err)
	}
	return block, invalidTransactions
}

func expectRejected(t *testing.T, invalidTransactions []ruleerrors.InvalidTransaction,
	tx *externalapi.DomainTransaction, expectedErr error) {

	for _, invalid := range invalidTransactions {
		if invalid.Transaction != tx {
			continue
		}
		if !errors.Is(invalid.Error, expectedErr) {
			t.Fatalf("transaction %s: expected %s, got: %+v", invalid.TransactionID, expectedErr, invalid.Error)
		}
		return
	}
	t.Fatalf("transaction %s was unexpectedly accepted", consensushashing.TransactionID(tx))
}

func expectRecord(t *testing.T, tc consensus.TestConsensus, name string, expectedOwner *owner,
	expectedState externalapi.DomainState, expectedAmount uint64, expectedHeight uint64) {

	record, err := tc.GetDomainRecord(name)
	if err != nil {
		t.Fatalf("GetDomainRecord(%s): %+v", name, err)
	}
	if record.Owner != expectedOwner.publicKey || record.State != expectedState ||
		record.Amount != expectedAmount || record.LastUpdateBlockHeight != expectedHeight {

		t.Fatalf("unexpected record for %s: %+v", name, record)
	}
}

func TestDomainLifecycle(t *testing.T) {
	factory := consensus.NewFactory()
	tc, teardown, err := factory.NewTestConsensus(consensus.NewConfig(&dagconfig.SimnetParams), "TestDomainLifecycle")
	if err != nil {
		t.Fatalf("Error setting up consensus: %+v", err)
	}
	defer teardown(false)

	alice := newOwner(t, "alice")
	bob := newOwner(t, "bob")
	carol := newOwner(t, "carol")

	for i, funded := range []*owner{alice, bob, carol} {
		err := tc.AddGenesisUTXO(genesisOutpoint(byte(i+1)), 10000, &externalapi.ClaimBySignature{Owner: funded.publicKey})
		if err != nil {
			t.Fatalf("AddGenesisUTXO: %+v", err)
		}
	}
	aliceFunds, bobFunds, carolFunds := genesisOutpoint(1), genesisOutpoint(2), genesisOutpoint(3)

	const name = "d1"
	_, err = tc.GetDomainRecord(name)
	if err == nil {
		t.Fatalf("TestDomainLifecycle: %s unexpectedly has a record before it was claimed", name)
	}

	// Two fresh claims of the same name race in one block
	tx1 := signedTransaction(t, spend(aliceFunds),
		[]*externalapi.DomainTransactionOutput{
			claim(1000, name, alice, externalapi.DomainStatePossiblyInAuction),
			pay(8990, alice),
		}, alice)
	tx2 := signedTransaction(t, spend(carolFunds),
		[]*externalapi.DomainTransactionOutput{
			claim(2000, name, carol, externalapi.DomainStatePossiblyInAuction),
			pay(7990, carol),
		}, carol)
	block, invalidTransactions := addBlock(t, tc, tx1, tx2)
	if block.Height != 1 || len(block.Transactions) != 1 || block.Transactions[0] != tx1 {
		t.Fatalf("TestDomainLifecycle: unexpected block 1: %+v", block)
	}
	if tx1.Fee != 10 {
		t.Fatalf("TestDomainLifecycle: expected tx1 fee 10, got %d", tx1.Fee)
	}
	expectRejected(t, invalidTransactions, tx2, ruleerrors.ErrDomainUnavailable)
	expectRecord(t, tc, name, alice, externalapi.DomainStatePossiblyInAuction, 1000, 1)

	// Bob outbids alice while the auction is open
	tx3 := signedTransaction(t, spend(outpointOf(tx1, 0), bobFunds),
		[]*externalapi.DomainTransactionOutput{
			claim(1100, name, bob, externalapi.DomainStatePossiblyInAuction),
			pay(1050, alice),
			pay(8800, bob),
		}, bob)
	_, invalidTransactions = addBlock(t, tc, tx3)
	if len(invalidTransactions) != 0 {
		t.Fatalf("TestDomainLifecycle: tx3 was rejected: %v", invalidTransactions)
	}
	if tx3.Fee != 50 {
		t.Fatalf("TestDomainLifecycle: expected tx3 fee 50, got %d", tx3.Fee)
	}
	expectRecord(t, tc, name, bob, externalapi.DomainStatePossiblyInAuction, 1100, 2)

	refund, err := tc.GetUTXOEntry(outpointOf(tx3, 1))
	if err != nil {
		t.Fatalf("GetUTXOEntry: %+v", err)
	}
	if refund.Amount() != 1050 || !refund.Claim().Equal(&externalapi.ClaimBySignature{Owner: alice.publicKey}) {
		t.Fatalf("TestDomainLifecycle: unexpected refund entry %+v", refund)
	}

	// Carol's bid doesn't raise bob's by enough
	tx4 := signedTransaction(t, spend(outpointOf(tx3, 0), carolFunds),
		[]*externalapi.DomainTransactionOutput{
			claim(1150, name, carol, externalapi.DomainStatePossiblyInAuction),
			pay(1125, bob),
			pay(8800, carol),
		}, carol)
	_, invalidTransactions = addBlock(t, tc, tx4)
	expectRejected(t, invalidTransactions, tx4, ruleerrors.ErrInvalidBidPrice)

	addBlock(t, tc)

	// The auction is over, so bob settles the claim
	tx5 := signedTransaction(t, spend(outpointOf(tx3, 0), outpointOf(tx3, 2)),
		[]*externalapi.DomainTransactionOutput{
			claim(1100, name, bob, externalapi.DomainStateNotInAuction),
			pay(8790, bob),
		}, bob)
	_, invalidTransactions = addBlock(t, tc, tx5)
	if len(invalidTransactions) != 0 {
		t.Fatalf("TestDomainLifecycle: tx5 was rejected: %v", invalidTransactions)
	}
	expectRecord(t, tc, name, bob, externalapi.DomainStateNotInAuction, 1100, 5)

	commitmentBeforeEmptyBlocks, err := tc.DomainRecordsCommitment()
	if err != nil {
		t.Fatalf("DomainRecordsCommitment: %+v", err)
	}
	for height := uint64(6); height < 15; height++ {
		addBlock(t, tc)
	}
	commitmentAfterEmptyBlocks, err := tc.DomainRecordsCommitment()
	if err != nil {
		t.Fatalf("DomainRecordsCommitment: %+v", err)
	}
	if !commitmentBeforeEmptyBlocks.Equal(commitmentAfterEmptyBlocks) {
		t.Fatalf("TestDomainLifecycle: empty blocks changed the records commitment")
	}

	// The claim expired, so it can't be updated, only claimed again
	tx6 := signedTransaction(t, spend(outpointOf(tx5, 0), outpointOf(tx5, 1)),
		[]*externalapi.DomainTransactionOutput{
			claim(1100, name, bob, externalapi.DomainStateNotInAuction),
			pay(8780, bob),
		}, bob)
	tx7 := signedTransaction(t, spend(carolFunds),
		[]*externalapi.DomainTransactionOutput{
			claim(500, name, carol, externalapi.DomainStatePossiblyInAuction),
			pay(9490, carol),
		}, carol)
	block, invalidTransactions = addBlock(t, tc, tx6, tx7)
	if block.Height != 15 {
		t.Fatalf("TestDomainLifecycle: expected block height 15, got %d", block.Height)
	}
	expectRejected(t, invalidTransactions, tx6, ruleerrors.ErrDomainNewOrExpired)
	if len(block.Transactions) != 1 || block.Transactions[0] != tx7 {
		t.Fatalf("TestDomainLifecycle: expected tx7 to be the only transaction of block 15")
	}
	expectRecord(t, tc, name, carol, externalapi.DomainStatePossiblyInAuction, 500, 15)

	records, err := tc.GetDomainRecords()
	if err != nil {
		t.Fatalf("GetDomainRecords: %+v", err)
	}
	if len(records) != 1 || records[0].Name != name {
		t.Fatalf("TestDomainLifecycle: unexpected records %+v", records)
	}

	commitmentAfterReclaim, err := tc.DomainRecordsCommitment()
	if err != nil {
		t.Fatalf("DomainRecordsCommitment: %+v", err)
	}
	if commitmentAfterReclaim.Equal(commitmentAfterEmptyBlocks) {
		t.Fatalf("TestDomainLifecycle: reclaiming %s didn't change the records commitment", name)
	}

	headHeight, err := tc.HeadHeight()
	if err != nil {
		t.Fatalf("HeadHeight: %+v", err)
	}
	if headHeight != 15 {
		t.Fatalf("TestDomainLifecycle: expected head height 15, got %d", headHeight)
	}
}

func TestValidateAndInsertBlockRejections(t *testing.T) {
	factory := consensus.NewFactory()
	tc, teardown, err := factory.NewTestConsensus(consensus.NewConfig(&dagconfig.SimnetParams),
		"TestValidateAndInsertBlockRejections")
	if err != nil {
		t.Fatalf("Error setting up consensus: %+v", err)
	}
	defer teardown(false)

	alice := newOwner(t, "alice")
	bob := newOwner(t, "bob")
	err = tc.AddGenesisUTXO(genesisOutpoint(1), 10000, &externalapi.ClaimBySignature{Owner: alice.publicKey})
	if err != nil {
		t.Fatalf("AddGenesisUTXO: %+v", err)
	}

	_, err = tc.ValidateAndInsertBlock(&externalapi.DomainBlock{Height: 2})
	if !errors.Is(err, ruleerrors.ErrWrongBlockHeight) {
		t.Fatalf("TestValidateAndInsertBlockRejections: expected ErrWrongBlockHeight, got: %+v", err)
	}

	stolen := signedTransaction(t, spend(genesisOutpoint(1)),
		[]*externalapi.DomainTransactionOutput{pay(10000, bob)}, bob)
	_, err = tc.ValidateAndInsertBlock(&externalapi.DomainBlock{
		Height:       1,
		Transactions: []*externalapi.DomainTransaction{stolen},
	})
	invalidTransactionsErr := ruleerrors.ErrInvalidTransactionsInNewBlock{}
	if !errors.As(err, &invalidTransactionsErr) {
		t.Fatalf("TestValidateAndInsertBlockRejections: expected ErrInvalidTransactionsInNewBlock, got: %+v", err)
	}
	if len(invalidTransactionsErr.InvalidTransactions) != 1 ||
		!errors.Is(invalidTransactionsErr.InvalidTransactions[0].Error, ruleerrors.ErrMissingSignature) {

		t.Fatalf("TestValidateAndInsertBlockRejections: unexpected invalid transactions %v",
			invalidTransactionsErr.InvalidTransactions)
	}

	headHeight, err := tc.HeadHeight()
	if err != nil {
		t.Fatalf("HeadHeight: %+v", err)
	}
	if headHeight != 0 {
		t.Fatalf("TestValidateAndInsertBlockRejections: a rejected block moved the head to %d", headHeight)
	}

	err = tc.AddGenesisUTXO(genesisOutpoint(2), 1, &externalapi.ClaimBySignature{Owner: bob.publicKey})
	if err != nil {
		t.Fatalf("AddGenesisUTXO: %+v", err)
	}
	addBlock(t, tc)
	err = tc.AddGenesisUTXO(genesisOutpoint(3), 1, &externalapi.ClaimBySignature{Owner: bob.publicKey})
	if err == nil {
		t.Fatalf("TestValidateAndInsertBlockRejections: AddGenesisUTXO succeeded after the first block")
	}
}
