package externalapi

// TransactionSummary is the verdict of an accepted transaction: how much it
// moved and how much of its input value was not returned to any output.
// RequiredFees is the part of Fee that consensus rules demanded, e.g. the
// burned increment of a domain auction bid.
type TransactionSummary struct {
	TotalIn      uint64
	TotalOut     uint64
	Fee          uint64
	RequiredFees uint64
}
