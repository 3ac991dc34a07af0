package batch

import (
	"errors"
	"math/big"
)

var (
	// ErrSkipped marks records that were never checked because verification
	// stopped early.
	ErrSkipped = errors.New("record skipped")

	// ErrIncompleteRecord is returned for records lacking a hash or a
	// signature component.
	ErrIncompleteRecord = errors.New("record is missing z, r or s")

	// ErrNoPublicKey is returned for records without a public key when the
	// verifier has no default key either.
	ErrNoPublicKey = errors.New("record has no public key")
)

// Record is a single signature to check.
type Record struct {
	Z         *big.Int // Message hash
	R         *big.Int
	S         *big.Int
	PublicKey []byte // SEC encoded public key; may be empty if a default key is set
}

// Result is the outcome of checking one record.
type Result struct {
	Index int   // Position of the record in the input
	Valid bool  // Whether the signature verified
	Err   error // Why the record could not be checked, if it could not
}

// Report summarizes a batch run.  Results are in input order.
type Report struct {
	Total   int
	Valid   int
	Invalid int
	Skipped int
	Results []Result
}

// AllValid reports whether every record was checked and verified.
func (r *Report) AllValid() bool {
	return r.Valid == r.Total
}

// InvalidIndexes returns the input positions of records that were checked
// and did not verify.
func (r *Report) InvalidIndexes() []int {
	var idx []int
	for _, res := range r.Results {
		if !res.Valid && !errors.Is(res.Err, ErrSkipped) {
			idx = append(idx, res.Index)
		}
	}
	return idx
}
