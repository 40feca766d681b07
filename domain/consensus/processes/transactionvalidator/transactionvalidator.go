package transactionvalidator

import (
	"github.com/kaspanet/kaspadns/domain/consensus/model"
	"github.com/kaspanet/kaspadns/domain/dagconfig"
)

// transactionValidator exposes a set of validation classes, after which
// it's possible to determine whether either a transaction is valid
type transactionValidator struct {
	ledgerView model.LedgerView
	params     *dagconfig.Params
}

// New instantiates a new TransactionValidator
func New(ledgerView model.LedgerView, params *dagconfig.Params) model.TransactionValidator {
	return &transactionValidator{
		ledgerView: ledgerView,
		params:     params,
	}
}
