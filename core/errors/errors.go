// Package errors defines the stable, numerically-coded revert taxonomy
// every TokenCore entry point reverts with. The host surfaces the code
// verbatim; Go callers can still use errors.Is against the package-level
// sentinels below.
package errors

import "fmt"

// Code is a stable numeric revert code. Values are part of the contract:
// once assigned, a code is never renumbered or reused for a different
// meaning.
type Code uint32

const (
	// Authority errors.
	CodeInsufficientRights Code = iota + 1
	CodeMissingController
	CodeMissingBlacklister

	// Accounting errors.
	CodeInsufficientBalance
	CodeInsufficientAllowance
	CodeInsufficientMinterAllowance
	CodeArithmeticOverflow
	CodeArithmeticUnderflow

	// Policy errors.
	CodeCannotTargetSelfUser
	CodeInvalidBurnTarget
	CodeInvalidAmount
	CodeMintBurnDisabled
	CodeContractIsPaused
)

var codeNames = map[Code]string{
	CodeInsufficientRights:         "InsufficientRights",
	CodeMissingController:          "MissingController",
	CodeMissingBlacklister:         "MissingBlacklister",
	CodeInsufficientBalance:        "InsufficientBalance",
	CodeInsufficientAllowance:      "InsufficientAllowance",
	CodeInsufficientMinterAllowance: "InsufficientMinterAllowance",
	CodeArithmeticOverflow:         "ArithmeticOverflow",
	CodeArithmeticUnderflow:        "ArithmeticUnderflow",
	CodeCannotTargetSelfUser:       "CannotTargetSelfUser",
	CodeInvalidBurnTarget:          "InvalidBurnTarget",
	CodeInvalidAmount:              "InvalidAmount",
	CodeMintBurnDisabled:           "MintBurnDisabled",
	CodeContractIsPaused:           "ContractIsPaused",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Code(%d)", uint32(c))
}

// CoreError is the concrete error type every reverting TokenCore method
// returns. The numeric Code is what the host-level revert would carry;
// Message is diagnostic only and never parsed by callers.
type CoreError struct {
	Code    Code
	Message string
}

func (e *CoreError) Error() string {
	if e.Message == "" {
		return e.Code.String()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is supports errors.Is(err, ErrInsufficientRights) style comparisons by
// matching on Code alone, ignoring Message.
func (e *CoreError) Is(target error) bool {
	other, ok := target.(*CoreError)
	if !ok {
		return false
	}
	return e.Code == other.Code
}

// New constructs a CoreError for the given code with an explanatory
// message.
func New(code Code, message string) *CoreError {
	return &CoreError{Code: code, Message: message}
}

// Sentinel errors for use with errors.Is. Message is empty; construct a
// richer CoreError with New when context is worth reporting.
var (
	ErrInsufficientRights          = &CoreError{Code: CodeInsufficientRights}
	ErrMissingController           = &CoreError{Code: CodeMissingController}
	ErrMissingBlacklister          = &CoreError{Code: CodeMissingBlacklister}
	ErrInsufficientBalance         = &CoreError{Code: CodeInsufficientBalance}
	ErrInsufficientAllowance       = &CoreError{Code: CodeInsufficientAllowance}
	ErrInsufficientMinterAllowance = &CoreError{Code: CodeInsufficientMinterAllowance}
	ErrArithmeticOverflow          = &CoreError{Code: CodeArithmeticOverflow}
	ErrArithmeticUnderflow         = &CoreError{Code: CodeArithmeticUnderflow}
	ErrCannotTargetSelfUser        = &CoreError{Code: CodeCannotTargetSelfUser}
	ErrInvalidBurnTarget           = &CoreError{Code: CodeInvalidBurnTarget}
	ErrInvalidAmount               = &CoreError{Code: CodeInvalidAmount}
	ErrMintBurnDisabled            = &CoreError{Code: CodeMintBurnDisabled}
	ErrContractIsPaused            = &CoreError{Code: CodeContractIsPaused}
)
