package transactionvalidator_test

import (
	"testing"

	"github.com/kaspanet/go-secp256k1"
	"github.com/kaspanet/kaspadns/domain/consensus/database"
	"github.com/kaspanet/kaspadns/domain/consensus/model"
	"github.com/kaspanet/kaspadns/domain/consensus/model/externalapi"
	"github.com/kaspanet/kaspadns/domain/consensus/processes/transactionvalidator"
	"github.com/kaspanet/kaspadns/domain/consensus/utils/signing"
	"github.com/kaspanet/kaspadns/domain/consensus/utils/utxo"
	"github.com/kaspanet/kaspadns/domain/dagconfig"
	"github.com/pkg/errors"
)

type testLedgerView map[string]*externalapi.DomainRecord

func (v testLedgerView) HasDomainRecord(name string) (bool, error) {
	_, ok := v[name]
	return ok, nil
}

func (v testLedgerView) DomainRecord(name string) (*externalapi.DomainRecord, error) {
	record, ok := v[name]
	if !ok {
		return nil, errors.Wrapf(database.ErrNotFound, "domain record %s not found", name)
	}
	return record.Clone(), nil
}

type testOwner struct {
	keyPair   *secp256k1.SchnorrKeyPair
	publicKey externalapi.DomainPublicKey
}

func newTestOwner(t *testing.T, seed string) *testOwner {
	keyPair, err := signing.KeyPairFromSeed([]byte(seed))
	if err != nil {
		t.Fatalf("KeyPairFromSeed: %s", err)
	}
	publicKey, err := signing.PublicKey(keyPair)
	if err != nil {
		t.Fatalf("PublicKey: %s", err)
	}
	return &testOwner{keyPair: keyPair, publicKey: publicKey}
}

func testOutpoint(id byte, index uint32) externalapi.DomainOutpoint {
	return *externalapi.NewDomainOutpoint(
		externalapi.NewDomainTransactionIDFromByteArray(&[externalapi.DomainHashSize]byte{id}), index)
}

func signatureInput(outpoint externalapi.DomainOutpoint, amount uint64, owner *testOwner) *externalapi.DomainTransactionInput {
	return &externalapi.DomainTransactionInput{
		PreviousOutpoint: outpoint,
		UTXOEntry:        utxo.NewUTXOEntry(amount, &externalapi.ClaimBySignature{Owner: owner.publicKey}, 0),
	}
}

func domainInput(record *externalapi.DomainRecord) *externalapi.DomainTransactionInput {
	claim := &externalapi.ClaimDomain{
		Name:  record.Name,
		Value: record.Value,
		Owner: record.Owner,
		State: record.State,
	}
	return &externalapi.DomainTransactionInput{
		PreviousOutpoint: record.LastUpdateOutpoint,
		UTXOEntry:        utxo.NewUTXOEntry(record.Amount, claim, record.LastUpdateBlockHeight),
	}
}

func signatureOutput(amount uint64, owner *testOwner) *externalapi.DomainTransactionOutput {
	return &externalapi.DomainTransactionOutput{
		Value: amount,
		Claim: &externalapi.ClaimBySignature{Owner: owner.publicKey},
	}
}

func domainOutput(amount uint64, name string, owner *testOwner, state externalapi.DomainState) *externalapi.DomainTransactionOutput {
	return &externalapi.DomainTransactionOutput{
		Value: amount,
		Claim: &externalapi.ClaimDomain{Name: name, Value: []byte("value of " + name), Owner: owner.publicKey, State: state},
	}
}

func newTestTransaction(inputs []*externalapi.DomainTransactionInput,
	outputs []*externalapi.DomainTransactionOutput) *externalapi.DomainTransaction {

	return &externalapi.DomainTransaction{
		Version: 0,
		Inputs:  inputs,
		Outputs: outputs,
	}
}

func signTestTransaction(t *testing.T, tx *externalapi.DomainTransaction, owners ...*testOwner) *externalapi.DomainTransaction {
	for _, owner := range owners {
		err := signing.SignTransaction(tx, owner.keyPair)
		if err != nil {
			t.Fatalf("SignTransaction: %s", err)
		}
	}
	return tx
}

func newTestValidator(ledgerView testLedgerView) model.TransactionValidator {
	return transactionvalidator.New(ledgerView, &dagconfig.SimnetParams)
}
