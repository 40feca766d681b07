package serialization

import (
	"io"

	"github.com/kaspanet/kaspadns/domain/consensus/model/externalapi"
	"github.com/pkg/errors"
)

// WriteClaim writes the claim's kind followed by its fields. A nil claim,
// typed or not, has no encoding.
func WriteClaim(w io.Writer, claim externalapi.Claim) error {
	switch claim := claim.(type) {
	case *externalapi.ClaimBySignature:
		if claim == nil {
			return errors.Wrapf(errNoEncodingForType, "cannot write a nil %T", claim)
		}
		return WriteElements(w, uint8(claim.Kind()), claim.Owner)
	case *externalapi.ClaimDomain:
		if claim == nil {
			return errors.Wrapf(errNoEncodingForType, "cannot write a nil %T", claim)
		}
		return WriteElements(w, uint8(claim.Kind()), claim.Name, claim.Value, claim.Owner, uint8(claim.State))
	}
	return errors.Wrapf(errNoEncodingForType, "couldn't find a way to write claim %T", claim)
}

// ReadClaim reads a claim written by WriteClaim
func ReadClaim(r io.Reader) (externalapi.Claim, error) {
	var kind uint8
	err := ReadElement(r, &kind)
	if err != nil {
		return nil, err
	}

	switch externalapi.ClaimKind(kind) {
	case externalapi.ClaimKindBySignature:
		claim := &externalapi.ClaimBySignature{}
		err := ReadElement(r, &claim.Owner)
		if err != nil {
			return nil, err
		}
		return claim, nil

	case externalapi.ClaimKindDomain:
		claim := &externalapi.ClaimDomain{}
		var state uint8
		err := ReadElements(r, &claim.Name, &claim.Value, &claim.Owner, &state)
		if err != nil {
			return nil, err
		}
		claim.State = externalapi.DomainState(state)
		return claim, nil
	}

	return nil, errors.Wrapf(errMalformed, "unknown claim kind %d", kind)
}
