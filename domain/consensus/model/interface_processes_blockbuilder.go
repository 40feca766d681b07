package model

import (
	"github.com/kaspanet/kaspadns/domain/consensus/model/externalapi"
	"github.com/kaspanet/kaspadns/domain/consensus/ruleerrors"
)

// BlockBuilder is responsible for creating blocks on top of the current head
type BlockBuilder interface {
	BuildBlock(transactions []*externalapi.DomainTransaction) (
		*externalapi.DomainBlock, []ruleerrors.InvalidTransaction, error)
}
