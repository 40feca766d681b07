package ruleerrors

import (
	"fmt"

	"github.com/kaspanet/kaspadns/domain/consensus/model/externalapi"
	"github.com/pkg/errors"
)

// Category groups rule errors by the kind of rule they violate
type Category uint8

// Rule error categories
const (
	// CategoryStructural covers malformed transactions: bad versions,
	// out of range values, duplicate claims or malformed claim fields.
	CategoryStructural Category = iota

	// CategoryExistence covers references to things that don't exist
	// in the ledger.
	CategoryExistence

	// CategoryLifecycle covers names in the wrong stage of their
	// lifecycle for the requested operation.
	CategoryLifecycle

	// CategoryEconomic covers value accounting: bid pricing, refunds,
	// fees and balances.
	CategoryEconomic

	// CategoryAuthorization covers missing or invalid signatures.
	CategoryAuthorization
)

var categoryStrings = [...]string{"Structural", "Existence", "Lifecycle", "Economic", "Authorization"}

func (c Category) String() string {
	if int(c) < len(categoryStrings) {
		return categoryStrings[c]
	}
	return fmt.Sprintf("UnknownCategory(%d)", uint8(c))
}

// These constants are used to identify a specific RuleError.
var (
	// ErrTransactionVersionIsUnknown indicates that the transaction version is unknown.
	ErrTransactionVersionIsUnknown = newRuleError("ErrTransactionVersionIsUnknown", CategoryStructural)

	// ErrMalformedTransaction indicates a transaction with a nil input,
	// output or signature.
	ErrMalformedTransaction = newRuleError("ErrMalformedTransaction", CategoryStructural)

	// ErrNoTxInputs indicates a transaction does not have any inputs. A
	// valid transaction must have at least one input.
	ErrNoTxInputs = newRuleError("ErrNoTxInputs", CategoryStructural)

	// ErrDuplicateTxInputs indicates a transaction references the same
	// input more than once.
	ErrDuplicateTxInputs = newRuleError("ErrDuplicateTxInputs", CategoryStructural)

	// ErrBadTxOutValue indicates an output value for a transaction is
	// invalid in some way such as being out of range.
	ErrBadTxOutValue = newRuleError("ErrBadTxOutValue", CategoryStructural)

	// ErrUnknownClaimKind indicates an input or output carries a claim
	// this node doesn't know how to validate.
	ErrUnknownClaimKind = newRuleError("ErrUnknownClaimKind", CategoryStructural)

	// ErrDuplicateSignature indicates a transaction carries more than one
	// signature by the same public key.
	ErrDuplicateSignature = newRuleError("ErrDuplicateSignature", CategoryStructural)

	// ErrDuplicateDomainInput indicates a transaction spends more than one
	// domain claim.
	ErrDuplicateDomainInput = newRuleError("ErrDuplicateDomainInput", CategoryStructural)

	// ErrDuplicateDomainOutput indicates a transaction creates more than one
	// domain claim.
	ErrDuplicateDomainOutput = newRuleError("ErrDuplicateDomainOutput", CategoryStructural)

	// ErrInvalidDomainName indicates a domain claim's name is not a
	// well-formed name.
	ErrInvalidDomainName = newRuleError("ErrInvalidDomainName", CategoryStructural)

	// ErrInvalidDomainValue indicates a domain claim's value is too large.
	ErrInvalidDomainValue = newRuleError("ErrInvalidDomainValue", CategoryStructural)

	// ErrInvalidDomainState indicates a domain claim's state is not one of
	// the known domain states.
	ErrInvalidDomainState = newRuleError("ErrInvalidDomainState", CategoryStructural)

	// ErrInvalidDomainAmount indicates the amount paired with a domain
	// claim is out of the allowed range.
	ErrInvalidDomainAmount = newRuleError("ErrInvalidDomainAmount", CategoryStructural)

	// ErrWrongBlockHeight indicates a block that doesn't directly follow
	// the current head.
	ErrWrongBlockHeight = newRuleError("ErrWrongBlockHeight", CategoryStructural)

	// ErrDoubleSpendInSameBlock indicates a transaction
	// that spends an output that was already spent by another
	// transaction in the same block.
	ErrDoubleSpendInSameBlock = newRuleError("ErrDoubleSpendInSameBlock", CategoryExistence)

	// ErrDomainRecordNotFound indicates a domain input spends a claim for a
	// name that has no record in the ledger.
	ErrDomainRecordNotFound = newRuleError("ErrDomainRecordNotFound", CategoryExistence)

	// ErrDomainUnavailable indicates a domain output targets a name that is
	// currently claimed, either in the ledger or earlier in the same block.
	ErrDomainUnavailable = newRuleError("ErrDomainUnavailable", CategoryLifecycle)

	// ErrDomainNewOrExpired indicates a domain input is used to update or
	// bid on a name that is new or whose claim expired. Such names must be
	// claimed again through a new auction.
	ErrDomainNewOrExpired = newRuleError("ErrDomainNewOrExpired", CategoryLifecycle)

	// ErrDomainExpired indicates an update of a domain whose claim expired.
	ErrDomainExpired = newRuleError("ErrDomainExpired", CategoryLifecycle)

	// ErrDomainNameMismatch indicates a transaction's domain input and
	// domain output refer to different names.
	ErrDomainNameMismatch = newRuleError("ErrDomainNameMismatch", CategoryLifecycle)

	// ErrDomainInputNotInAuction indicates a bid that spends a domain claim
	// not marked as possibly in auction.
	ErrDomainInputNotInAuction = newRuleError("ErrDomainInputNotInAuction", CategoryLifecycle)

	// ErrStaleDomainInput indicates a domain input that isn't the output
	// currently recorded for its name.
	ErrStaleDomainInput = newRuleError("ErrStaleDomainInput", CategoryLifecycle)

	// ErrSpendTooHigh indicates a transaction is attempting to spend more
	// value than the sum of all of its inputs.
	ErrSpendTooHigh = newRuleError("ErrSpendTooHigh", CategoryEconomic)

	// ErrInsufficientRequiredFees indicates a transaction leaves less fee
	// than consensus rules require of it.
	ErrInsufficientRequiredFees = newRuleError("ErrInsufficientRequiredFees", CategoryEconomic)

	// ErrInvalidBidPrice indicates a bid that doesn't raise the previous bid
	// by the required margin.
	ErrInvalidBidPrice = newRuleError("ErrInvalidBidPrice", CategoryEconomic)

	// ErrDomainAmountChanged indicates an update of a domain record that
	// changes the amount locked in it.
	ErrDomainAmountChanged = newRuleError("ErrDomainAmountChanged", CategoryEconomic)

	// ErrInvalidSignature indicates a transaction carries a signature that
	// doesn't verify against the transaction's signature hash.
	ErrInvalidSignature = newRuleError("ErrInvalidSignature", CategoryAuthorization)

	// ErrMissingSignature indicates a claim-by-signature input whose owner
	// didn't sign the transaction.
	ErrMissingSignature = newRuleError("ErrMissingSignature", CategoryAuthorization)
)

// RuleError identifies a rule violation. It is used to indicate that
// processing of a block or transaction failed due to one of the many validation
// rules. The caller can use type assertions to determine if a failure was
// specifically due to a rule violation.
type RuleError struct {
	message  string
	category Category
	inner    error
}

// Error satisfies the error interface and prints human-readable errors.
func (e RuleError) Error() string {
	if e.inner != nil {
		return e.message + ": " + e.inner.Error()
	}
	return e.message
}

// Category returns the category of the violated rule
func (e RuleError) Category() Category {
	return e.category
}

// Unwrap satisfies the errors.Unwrap interface
func (e RuleError) Unwrap() error {
	return e.inner
}

// Cause satisfies the github.com/pkg/errors.Cause interface
func (e RuleError) Cause() error {
	return e.inner
}

func newRuleError(message string, category Category) RuleError {
	return RuleError{message: message, category: category, inner: nil}
}

// IsRuleError returns whether err is, or wraps, a RuleError
func IsRuleError(err error) bool {
	return errors.As(err, &RuleError{})
}

// CategoryOf returns the category of the RuleError wrapped in err. The
// second return value is false if err doesn't wrap a RuleError.
func CategoryOf(err error) (Category, bool) {
	var ruleError RuleError
	if !errors.As(err, &ruleError) {
		return 0, false
	}
	return ruleError.category, true
}

// ErrMissingTxOut indicates a transaction output referenced by an input
// either does not exist or has already been spent.
type ErrMissingTxOut struct {
	MissingOutpoints []*externalapi.DomainOutpoint
}

func (e ErrMissingTxOut) Error() string {
	return fmt.Sprintf("missing the following outpoint: %v", e.MissingOutpoints)
}

// NewErrMissingTxOut Creates a new ErrMissingTxOut error wrapped in a RuleError
func NewErrMissingTxOut(missingOutpoints []*externalapi.DomainOutpoint) error {
	return errors.WithStack(RuleError{
		message:  "ErrMissingTxOut",
		category: CategoryExistence,
		inner:    ErrMissingTxOut{missingOutpoints},
	})
}

// ErrMissingBidRefund indicates a bid that doesn't pay the outbid owner
// back at least Amount through a claim-by-signature output.
type ErrMissingBidRefund struct {
	Owner  externalapi.DomainPublicKey
	Amount uint64
}

func (e ErrMissingBidRefund) Error() string {
	return fmt.Sprintf("bid did not compensate the outgoing bidder %s with at least %d", e.Owner, e.Amount)
}

// NewErrMissingBidRefund Creates a new ErrMissingBidRefund error wrapped in a RuleError
func NewErrMissingBidRefund(owner externalapi.DomainPublicKey, amount uint64) error {
	return errors.WithStack(RuleError{
		message:  "ErrMissingBidRefund",
		category: CategoryEconomic,
		inner:    ErrMissingBidRefund{Owner: owner, Amount: amount},
	})
}

// ErrMissingDomainSignature indicates a domain transaction that lacks a
// signature of an owner who must authorize it.
type ErrMissingDomainSignature struct {
	Name  string
	Owner externalapi.DomainPublicKey
}

func (e ErrMissingDomainSignature) Error() string {
	return fmt.Sprintf("domain %s transaction missing required signature of %s", e.Name, e.Owner)
}

// NewErrMissingDomainSignature Creates a new ErrMissingDomainSignature error wrapped in a RuleError
func NewErrMissingDomainSignature(name string, owner externalapi.DomainPublicKey) error {
	return errors.WithStack(RuleError{
		message:  "ErrMissingDomainSignature",
		category: CategoryAuthorization,
		inner:    ErrMissingDomainSignature{Name: name, Owner: owner},
	})
}

// InvalidTransaction is a struct containing an invalid transaction, and the error explaining why it's invalid.
type InvalidTransaction struct {
	Transaction   *externalapi.DomainTransaction
	TransactionID *externalapi.DomainTransactionID
	Error         error
}

func (invalid InvalidTransaction) String() string {
	return fmt.Sprintf("(%v: %s)", invalid.TransactionID, invalid.Error)
}

// ErrInvalidTransactionsInNewBlock indicates that some transactions in a new block are invalid
type ErrInvalidTransactionsInNewBlock struct {
	InvalidTransactions []InvalidTransaction
}

func (e ErrInvalidTransactionsInNewBlock) Error() string {
	return fmt.Sprint(e.InvalidTransactions)
}

// NewErrInvalidTransactionsInNewBlock Creates a new ErrInvalidTransactionsInNewBlock error wrapped in a RuleError
func NewErrInvalidTransactionsInNewBlock(invalidTransactions []InvalidTransaction) error {
	return errors.WithStack(RuleError{
		message:  "ErrInvalidTransactionsInNewBlock",
		category: CategoryStructural,
		inner:    ErrInvalidTransactionsInNewBlock{invalidTransactions},
	})
}
