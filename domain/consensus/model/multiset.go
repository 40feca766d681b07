package model

import "github.com/kaspanet/kaspadns/domain/consensus/model/externalapi"

// Multiset is a set commitment that supports adding and removing elements
// in any order
type Multiset interface {
	Add(data []byte)
	Remove(data []byte)
	Hash() *externalapi.DomainHash
	Serialize() []byte
	Clone() Multiset
}
