package batch

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	logging "github.com/op/go-logging"

	"github.com/mahdiidarabi/ecc-secp256k1/pkg/ecc"
)

var log = logging.MustGetLogger("batch")

// Config configures a Verifier.
type Config struct {
	// NumWorkers controls parallelization (0 = auto-detect)
	NumWorkers int

	// FailFast stops checking further records once one fails
	FailFast bool
}

// DefaultConfig returns a configuration using every CPU and checking all
// records.
func DefaultConfig() Config {
	return Config{
		NumWorkers: 0, // Auto-detect
		FailFast:   false,
	}
}

// Verifier checks batches of signatures in parallel.
type Verifier struct {
	config     Config
	parser     Parser
	defaultKey []byte
}

// NewVerifier creates a verifier with default settings that reads JSON.
func NewVerifier() *Verifier {
	return &Verifier{
		config: DefaultConfig(),
		parser: &JSONParser{},
	}
}

// WithConfig sets the worker configuration.
func (v *Verifier) WithConfig(config Config) *Verifier {
	v.config = config
	return v
}

// WithParser sets the parser used by VerifyFile.
func (v *Verifier) WithParser(parser Parser) *Verifier {
	v.parser = parser
	return v
}

// WithPublicKey sets a SEC encoded key used for records that carry none.
func (v *Verifier) WithPublicKey(sec []byte) *Verifier {
	v.defaultKey = sec
	return v
}

// VerifyFile parses records from source and verifies them.
func (v *Verifier) VerifyFile(ctx context.Context, source string) (*Report, error) {
	records, err := v.parser.ParseRecords(source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse records: %w", err)
	}
	return v.Verify(ctx, records)
}

// Verify checks every record and returns a report with one result per
// record, in input order.
//
// Records that could not be checked because ctx was cancelled, or because
// FailFast stopped the run, carry ErrSkipped.  Cancellation of ctx is
// returned as an error alongside the partial report; stopping under
// FailFast is not an error.
func (v *Verifier) Verify(ctx context.Context, records []*Record) (*Report, error) {
	var defaultKey *ecc.S256Point
	if len(v.defaultKey) > 0 {
		key, err := ecc.ParseSEC(v.defaultKey)
		if err != nil {
			return nil, fmt.Errorf("failed to parse default public key: %w", err)
		}
		defaultKey = key
	}

	numWorkers := v.config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > len(records) {
		numWorkers = len(records)
	}
	log.Infof("Verifying %d records with %d workers", len(records), numWorkers)

	results := make([]Result, len(records))
	for i := range results {
		results[i] = Result{Index: i, Err: ErrSkipped}
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	workChan := make(chan int, numWorkers*10)

	// Each index is handled by exactly one worker, so writes to results
	// never overlap.
	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v.worker(runCtx, cancel, workChan, records, results, defaultKey)
		}()
	}

	go func() {
		defer close(workChan)
		for i := range records {
			select {
			case <-runCtx.Done():
				return
			case workChan <- i:
			}
		}
	}()

	wg.Wait()

	report := &Report{Total: len(records), Results: results}
	for _, res := range results {
		switch {
		case res.Valid:
			report.Valid++
		case errors.Is(res.Err, ErrSkipped):
			report.Skipped++
		default:
			report.Invalid++
		}
	}
	log.Infof("Verified %d records: %d valid, %d invalid, %d skipped",
		report.Total, report.Valid, report.Invalid, report.Skipped)

	if err := ctx.Err(); err != nil {
		return report, err
	}
	return report, nil
}

// worker checks records from the work channel until it is closed or the
// run is cancelled.
func (v *Verifier) worker(
	ctx context.Context,
	cancel context.CancelFunc,
	workChan <-chan int,
	records []*Record,
	results []Result,
	defaultKey *ecc.S256Point,
) {
	for {
		select {
		case <-ctx.Done():
			return
		case i, ok := <-workChan:
			if !ok {
				return // Channel closed, no more work
			}
			if ctx.Err() != nil {
				return
			}

			res := verifyRecord(records[i], defaultKey)
			res.Index = i
			results[i] = res

			if !res.Valid {
				if res.Err != nil {
					log.Debugf("Record %d could not be checked: %v", i, res.Err)
				} else {
					log.Debugf("Record %d has an invalid signature", i)
				}
				if v.config.FailFast {
					log.Warningf("Stopping at record %d: fail-fast enabled", i)
					cancel()
					return
				}
			}
		}
	}
}

func verifyRecord(rec *Record, defaultKey *ecc.S256Point) Result {
	if rec == nil || rec.Z == nil || rec.R == nil || rec.S == nil {
		return Result{Err: ErrIncompleteRecord}
	}

	key := defaultKey
	if len(rec.PublicKey) > 0 {
		parsed, err := ecc.ParseSEC(rec.PublicKey)
		if err != nil {
			return Result{Err: fmt.Errorf("failed to parse public key: %w", err)}
		}
		key = parsed
	}
	if key == nil {
		return Result{Err: ErrNoPublicKey}
	}

	return Result{Valid: key.Verify(rec.Z, ecc.NewSignature(rec.R, rec.S))}
}
