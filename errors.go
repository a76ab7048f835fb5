package servicecontainer

import (
	"errors"
	"fmt"
	"strings"
)

// ── Sentinels ─────────────────────────────────────────────────────────────────

// Sentinel errors for use with errors.Is. Every error produced by this package
// unwraps to exactly one of these; failures raised inside providers are passed
// through untouched and unwrap to whatever the provider returned.
var (
	ErrMissingProvider    = errors.New("missing provider")
	ErrInvalidProvider    = errors.New("invalid provider")
	ErrCircularDependency = errors.New("circular dependency")
	ErrParamOverride      = errors.New("param override")
	ErrMissingParam       = errors.New("missing param")
	ErrWrongType          = errors.New("wrong type")
	ErrDuplicateBinding   = errors.New("duplicate binding")
)

// ── Typed errors ──────────────────────────────────────────────────────────────

// MissingProviderError reports a Get for a name no provider is registered under.
type MissingProviderError struct {
	Name string
}

func (e *MissingProviderError) Error() string {
	return fmt.Sprintf("servicecontainer: missing provider for service %q", e.Name)
}

func (e *MissingProviderError) Unwrap() error { return ErrMissingProvider }

// InvalidProviderError reports a registered value that is not one of the
// accepted provider forms (see Factory and TxFactory).
type InvalidProviderError struct {
	Name string
	Got  any
}

func (e *InvalidProviderError) Error() string {
	return fmt.Sprintf("servicecontainer: invalid provider for service %q: "+
		"must take zero arguments or the active *Transaction, got %T", e.Name, e.Got)
}

func (e *InvalidProviderError) Unwrap() error { return ErrInvalidProvider }

// CircularDependencyError reports a service whose resolution re-entered itself.
// Chain holds the names on the resolution stack, outermost first, ending with
// the name that closed the cycle.
type CircularDependencyError struct {
	Chain []string
}

func (e *CircularDependencyError) Error() string {
	return fmt.Sprintf("servicecontainer: circular dependency: %s",
		strings.Join(e.Chain, " -> "))
}

func (e *CircularDependencyError) Unwrap() error { return ErrCircularDependency }

// ParamOverrideError reports an attempt to set a param key that is already
// present in the transaction lineage.
type ParamOverrideError struct {
	Key string
}

func (e *ParamOverrideError) Error() string {
	return fmt.Sprintf("servicecontainer: cannot override param %q; "+
		"start a fresh transaction to change it", e.Key)
}

func (e *ParamOverrideError) Unwrap() error { return ErrParamOverride }

// MissingParamError reports a read of a param key absent from the transaction.
type MissingParamError struct {
	Key string
}

func (e *MissingParamError) Error() string {
	return fmt.Sprintf("servicecontainer: missing param %q", e.Key)
}

func (e *MissingParamError) Unwrap() error { return ErrMissingParam }

// WrongTypeError reports a Resolve whose service instance does not have the
// requested type. It is distinct from MissingProviderError: the registry lookup
// succeeded, the downstream use of the instance did not.
type WrongTypeError struct {
	Name string
	Want string
	Got  string
}

func (e *WrongTypeError) Error() string {
	return fmt.Sprintf("servicecontainer: resolve %q: got %s, want %s",
		e.Name, e.Got, e.Want)
}

func (e *WrongTypeError) Unwrap() error { return ErrWrongType }

// DuplicateBindingError reports the same service name appearing in more than
// one binding set passed to Merge.
type DuplicateBindingError struct {
	Name string
}

func (e *DuplicateBindingError) Error() string {
	return fmt.Sprintf("servicecontainer: duplicate binding for service %q", e.Name)
}

func (e *DuplicateBindingError) Unwrap() error { return ErrDuplicateBinding }
