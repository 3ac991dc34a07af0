package ecc

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrRange is returned when a field element value is not in
	// [0, modulus).
	ErrRange = ErrorKind("ErrRange")

	// ErrIncompatibleField is returned when arithmetic mixes elements of
	// different fields.
	ErrIncompatibleField = ErrorKind("ErrIncompatibleField")

	// ErrOffCurve is returned when point coordinates do not satisfy
	// y² = x³ + ax + b.
	ErrOffCurve = ErrorKind("ErrOffCurve")

	// ErrCurveMismatch is returned when adding points whose curve
	// coefficients differ.
	ErrCurveMismatch = ErrorKind("ErrCurveMismatch")

	// ErrNegativeScalar is returned when a scalar multiplication is asked
	// for a negative coefficient.
	ErrNegativeScalar = ErrorKind("ErrNegativeScalar")

	// ErrSecretOutOfRange is returned when a private key secret is not in
	// [1, N-1].
	ErrSecretOutOfRange = ErrorKind("ErrSecretOutOfRange")

	// ErrInvalidSEC is returned when a serialized public key is malformed.
	ErrInvalidSEC = ErrorKind("ErrInvalidSEC")

	// ErrInvalidWIF is returned when a wallet import format string does not
	// carry a well-formed private key payload.
	ErrInvalidWIF = ErrorKind("ErrInvalidWIF")

	// ErrSigInvalidDER is returned when a DER signature is malformed.
	ErrSigInvalidDER = ErrorKind("ErrSigInvalidDER")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to field, point, key or signature
// handling.  It has full support for errors.Is and errors.As, so the caller
// can ascertain the specific reason for the error by checking the underlying
// error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
