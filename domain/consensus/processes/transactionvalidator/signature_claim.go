package transactionvalidator

import (
	"github.com/kaspanet/kaspadns/domain/consensus/model/externalapi"
	"github.com/kaspanet/kaspadns/domain/consensus/ruleerrors"
	"github.com/pkg/errors"
)

func (v *transactionValidator) validateSignatureClaimInput(claim *externalapi.ClaimBySignature,
	state *transactionEvaluationState) error {

	if !state.hasSignature(claim.Owner) {
		return errors.Wrapf(ruleerrors.ErrMissingSignature, "transaction %s spends an output "+
			"of %s without its signature", state.transactionID, claim.Owner)
	}
	return nil
}
