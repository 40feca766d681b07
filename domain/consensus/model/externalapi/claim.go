package externalapi

import (
	"bytes"
	"fmt"
)

// ClaimKind identifies the condition under which a transaction output
// may later be spent
type ClaimKind uint8

// The set of supported claim kinds. Adding a kind means adding a
// Claim implementation and a case to every claim dispatch.
const (
	ClaimKindBySignature ClaimKind = iota + 1
	ClaimKindDomain
)

var claimKindStrings = map[ClaimKind]string{
	ClaimKindBySignature: "ClaimBySignature",
	ClaimKindDomain:      "ClaimDomain",
}

func (kind ClaimKind) String() string {
	if kindString, ok := claimKindStrings[kind]; ok {
		return kindString
	}
	return fmt.Sprintf("UnknownClaimKind(%d)", uint8(kind))
}

// Claim is the spending condition attached to a transaction output.
// The set of implementations is closed: only types in this package
// may implement it.
type Claim interface {
	Kind() ClaimKind
	Equal(other Claim) bool
	Clone() Claim
	isClaim()
}

// ClaimBySignature is satisfied by a signature of Owner. It's used for
// ordinary payments and for refunds to outbid domain auction bidders.
type ClaimBySignature struct {
	Owner DomainPublicKey
}

// Kind returns ClaimKindBySignature
func (claim *ClaimBySignature) Kind() ClaimKind {
	return ClaimKindBySignature
}

// Equal returns whether claim equals to other
func (claim *ClaimBySignature) Equal(other Claim) bool {
	otherClaim, ok := other.(*ClaimBySignature)
	if !ok {
		return false
	}
	if claim == nil || otherClaim == nil {
		return claim == otherClaim
	}
	return claim.Owner == otherClaim.Owner
}

// Clone returns a clone of ClaimBySignature
func (claim *ClaimBySignature) Clone() Claim {
	clone := *claim
	return &clone
}

func (claim *ClaimBySignature) isClaim() {}

// DomainState is the auction state a domain claim declares
type DomainState uint8

// Domain states
const (
	DomainStateNotInAuction DomainState = iota
	DomainStatePossiblyInAuction
)

func (state DomainState) String() string {
	switch state {
	case DomainStateNotInAuction:
		return "NotInAuction"
	case DomainStatePossiblyInAuction:
		return "PossiblyInAuction"
	default:
		return fmt.Sprintf("UnknownDomainState(%d)", uint8(state))
	}
}

// ClaimDomain claims ownership of a name. Owner is authorized to
// later update or transfer the name.
type ClaimDomain struct {
	Name  string
	Value []byte
	Owner DomainPublicKey
	State DomainState
}

// Kind returns ClaimKindDomain
func (claim *ClaimDomain) Kind() ClaimKind {
	return ClaimKindDomain
}

// Equal returns whether claim equals to other
func (claim *ClaimDomain) Equal(other Claim) bool {
	otherClaim, ok := other.(*ClaimDomain)
	if !ok {
		return false
	}
	if claim == nil || otherClaim == nil {
		return claim == otherClaim
	}
	return claim.Name == otherClaim.Name &&
		bytes.Equal(claim.Value, otherClaim.Value) &&
		claim.Owner == otherClaim.Owner &&
		claim.State == otherClaim.State
}

// Clone returns a clone of ClaimDomain
func (claim *ClaimDomain) Clone() Claim {
	valueClone := make([]byte, len(claim.Value))
	copy(valueClone, claim.Value)
	return &ClaimDomain{
		Name:  claim.Name,
		Value: valueClone,
		Owner: claim.Owner,
		State: claim.State,
	}
}

func (claim *ClaimDomain) isClaim() {}
