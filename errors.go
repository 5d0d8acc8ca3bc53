package assetbook

import "errors"

// Errors fall in distinct families, so a caller can tell bad data apart from
// missing functionality with errors.Is:
//   - malformed input (unparseable dates, quantities, unknown tags) is
//     reported with plain descriptive errors at the point of parsing,
//   - invariant violations contradict the book's state,
//   - domain gaps are well-formed requests for features that do not exist,
//   - arithmetic errors are overflows in the fixed-point pricing math.
var (
	// Domain gaps.
	ErrUnsupported      = errors.New("not supported")
	ErrCurrencyMismatch = errors.New("currency conversion not supported")
	ErrPriceUnavailable = errors.New("price not available in price sheet")

	// Invariant violations.
	ErrDuplicateFund    = errors.New("fund already exists")
	ErrUnknownFund      = errors.New("fund not found")
	ErrAlreadyPurchased = errors.New("asset already has a buy")
	ErrNoPurchase       = errors.New("asset has no buy")

	// Arithmetic.
	ErrOverflow = errors.New("arithmetic overflow")
)
