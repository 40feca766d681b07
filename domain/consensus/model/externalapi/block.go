package externalapi

// DomainBlock is an ordered list of transactions at a given height.
// The order of Transactions is part of consensus.
type DomainBlock struct {
	Height       uint64
	Transactions []*DomainTransaction
}
