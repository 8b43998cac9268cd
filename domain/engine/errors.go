package engine

import (
	"errors"
	"fmt"
)

// Kind classifies an engine error so callers can branch on the category
// while the Code stays stable for machine consumption.
type Kind uint8

const (
	KindValidation Kind = iota + 1
	KindAuthorization
	KindState
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthorization:
		return "authorization"
	case KindState:
		return "state"
	case KindNotFound:
		return "not-found"
	default:
		return "unknown"
	}
}

// Stable machine-readable codes. External systems branch on these; renaming
// one is a breaking change.
const (
	CodeTradingPaused    = "trading-paused"
	CodeAddOrderPaused   = "add-order-paused"
	CodePairPaused       = "pair-paused"
	CodePricePrecision   = "price-precision-violation"
	CodeQtyPrecision     = "quantity-precision-violation"
	CodeBelowMinTrade    = "below-min-trade-amount"
	CodeAboveMaxTrade    = "above-max-trade-amount"
	CodeInvalidPrice     = "invalid-price"
	CodeInvalidQty       = "invalid-quantity"
	CodeTypeNotAllowed   = "order-type-not-allowed"
	CodeFOKNotFilled     = "fok-insufficient-liquidity"
	CodePostOnlyCross    = "post-only-would-cross"
	CodeAddBlocked       = "add-order-blocked"
	CodeCancelBlocked    = "cancel-order-blocked"
	CodeReplaceBlocked   = "cancel-replace-blocked"
	CodeCancelAllBlocked = "cancel-all-blocked"
	CodeCrossedBook      = "cannot-resume-while-crossed"
	CodeAuctionNotMatch  = "auction-not-matching"
	CodeAuctionPriceZero = "auction-price-unset"
	CodeAuctionLiveMode  = "auction-price-live-mode"
	CodeAuctionBounds    = "auction-price-out-of-bounds"
	CodeInvalidMode      = "invalid-auction-mode"
	CodeWithdrawBlocked  = "withdrawal-blocked"
	CodeInsufficient     = "insufficient-funds"
	CodeNotOwner         = "not-order-owner"
	CodeNotAdmin         = "not-auction-admin"
	CodeOrderNotFound    = "order-not-found"
	CodePairNotFound     = "pair-not-found"
	CodePairExists       = "pair-exists"
	CodeOrderNotOpen     = "order-not-open"
)

// Error is the single error type the engine returns.
type Error struct {
	Kind Kind
	Code string
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Code)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Code, e.Msg)
}

func errValidation(code, format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Code: code, Msg: fmt.Sprintf(format, args...)}
}

func errAuthorization(code, format string, args ...any) *Error {
	return &Error{Kind: KindAuthorization, Code: code, Msg: fmt.Sprintf(format, args...)}
}

func errState(code, format string, args ...any) *Error {
	return &Error{Kind: KindState, Code: code, Msg: fmt.Sprintf(format, args...)}
}

func errNotFound(code, format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Code: code, Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the Kind of err, or 0 when err is not an engine error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// CodeOf returns the stable code of err, or "" when err is not an engine
// error.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

func IsValidation(err error) bool    { return KindOf(err) == KindValidation }
func IsAuthorization(err error) bool { return KindOf(err) == KindAuthorization }
func IsState(err error) bool         { return KindOf(err) == KindState }
func IsNotFound(err error) bool      { return KindOf(err) == KindNotFound }
