package main

import (
	"encoding/hex"
	"encoding/json"
	"os"

	"github.com/kaspanet/go-secp256k1"
	"github.com/kaspanet/kaspadns/domain/consensus/model/externalapi"
	"github.com/kaspanet/kaspadns/domain/consensus/utils/consensushashing"
	"github.com/kaspanet/kaspadns/domain/consensus/utils/hashes"
	"github.com/kaspanet/kaspadns/domain/consensus/utils/owneraddress"
	"github.com/kaspanet/kaspadns/domain/consensus/utils/signing"
	"github.com/pkg/errors"
)

// fixture is the JSON form of a replay: outputs seeded before the first
// block, then blocks in height order. Transactions and genesis outputs
// are referred to by label so fixtures can be written by hand.
type fixture struct {
	Genesis []*genesisOutputJSON `json:"genesis"`
	Blocks  []*blockJSON         `json:"blocks"`
}

type genesisOutputJSON struct {
	Label  string      `json:"label"`
	Output *outputJSON `json:"output"`
}

type blockJSON struct {
	Transactions []*transactionJSON `json:"transactions"`
}

type transactionJSON struct {
	Label   string        `json:"label"`
	Inputs  []*inputJSON  `json:"inputs"`
	Outputs []*outputJSON `json:"outputs"`
	// Signers are hex encoded private keys
	Signers []string `json:"signers"`
}

type inputJSON struct {
	Transaction string `json:"transaction"`
	Index       uint32 `json:"index"`
}

type outputJSON struct {
	Amount uint64      `json:"amount"`
	Owner  string      `json:"owner"`
	Domain *domainJSON `json:"domain,omitempty"`
}

type domainJSON struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	// PossiblyInAuction marks a claim that can still be outbid
	PossiblyInAuction bool `json:"possiblyInAuction"`
}

func readFixture(path string) (*fixture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.DisallowUnknownFields()
	f := &fixture{}
	err = decoder.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "couldn't parse %s", path)
	}
	return f, nil
}

// fixtureResolver turns the JSON forms into domain types. It tracks the
// transaction ID behind every label seen so far.
type fixtureResolver struct {
	prefix         string
	transactionIDs map[string]*externalapi.DomainTransactionID
}

func newFixtureResolver(prefix string) *fixtureResolver {
	return &fixtureResolver{
		prefix:         prefix,
		transactionIDs: make(map[string]*externalapi.DomainTransactionID),
	}
}

// genesisOutpoint returns the outpoint of a genesis output. Genesis
// outputs aren't created by any transaction, so their ID is derived from
// their label.
func (r *fixtureResolver) genesisOutpoint(genesisOutput *genesisOutputJSON) (*externalapi.DomainOutpoint, error) {
	err := r.checkLabel(genesisOutput.Label)
	if err != nil {
		return nil, err
	}
	writer := hashes.NewTransactionIDWriter()
	writer.InfallibleWrite([]byte(genesisOutput.Label))
	id := (*externalapi.DomainTransactionID)(writer.Finalize())
	r.transactionIDs[genesisOutput.Label] = id
	return externalapi.NewDomainOutpoint(id, 0), nil
}

func (r *fixtureResolver) checkLabel(label string) error {
	if label == "" {
		return errors.New("every genesis output and transaction must be labeled")
	}
	if _, exists := r.transactionIDs[label]; exists {
		return errors.Errorf("label %s is used more than once", label)
	}
	return nil
}

func (r *fixtureResolver) transaction(transactionJSON *transactionJSON) (*externalapi.DomainTransaction, error) {
	err := r.checkLabel(transactionJSON.Label)
	if err != nil {
		return nil, err
	}

	tx := &externalapi.DomainTransaction{
		Inputs:     make([]*externalapi.DomainTransactionInput, len(transactionJSON.Inputs)),
		Outputs:    make([]*externalapi.DomainTransactionOutput, len(transactionJSON.Outputs)),
		Signatures: []*externalapi.DomainTransactionSignature{},
	}
	for i, input := range transactionJSON.Inputs {
		id, ok := r.transactionIDs[input.Transaction]
		if !ok {
			return nil, errors.Errorf("transaction %s spends unknown label %s",
				transactionJSON.Label, input.Transaction)
		}
		tx.Inputs[i] = &externalapi.DomainTransactionInput{
			PreviousOutpoint: *externalapi.NewDomainOutpoint(id, input.Index),
		}
	}
	for i, output := range transactionJSON.Outputs {
		tx.Outputs[i], err = r.output(output)
		if err != nil {
			return nil, errors.Wrapf(err, "transaction %s", transactionJSON.Label)
		}
	}

	for _, signer := range transactionJSON.Signers {
		keyPair, err := parsePrivateKey(signer)
		if err != nil {
			return nil, errors.Wrapf(err, "transaction %s", transactionJSON.Label)
		}
		err = signing.SignTransaction(tx, keyPair)
		if err != nil {
			return nil, err
		}
	}

	r.transactionIDs[transactionJSON.Label] = consensushashing.TransactionID(tx)
	return tx, nil
}

func (r *fixtureResolver) output(output *outputJSON) (*externalapi.DomainTransactionOutput, error) {
	owner, err := owneraddress.Decode(output.Owner, r.prefix)
	if err != nil {
		return nil, err
	}

	if output.Domain == nil {
		return &externalapi.DomainTransactionOutput{
			Value: output.Amount,
			Claim: &externalapi.ClaimBySignature{Owner: owner},
		}, nil
	}

	state := externalapi.DomainStateNotInAuction
	if output.Domain.PossiblyInAuction {
		state = externalapi.DomainStatePossiblyInAuction
	}
	return &externalapi.DomainTransactionOutput{
		Value: output.Amount,
		Claim: &externalapi.ClaimDomain{
			Name:  output.Domain.Name,
			Value: []byte(output.Domain.Value),
			Owner: owner,
			State: state,
		},
	}, nil
}

func parsePrivateKey(privateKeyHex string) (*secp256k1.SchnorrKeyPair, error) {
	privateKeyBytes, err := hex.DecodeString(privateKeyHex)
	if err != nil {
		return nil, errors.Wrap(err, "private key isn't valid hex")
	}
	keyPair, err := secp256k1.DeserializeSchnorrPrivateKeyFromSlice(privateKeyBytes)
	if err != nil {
		return nil, errors.Wrap(err, "invalid private key")
	}
	return keyPair, nil
}
