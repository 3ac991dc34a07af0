package main

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"os"
	"os/signal"
	"strings"

	"github.com/mahdiidarabi/ecc-secp256k1/internal/parser"
	"github.com/mahdiidarabi/ecc-secp256k1/pkg/batch"
	"github.com/mahdiidarabi/ecc-secp256k1/pkg/ecc"
	"github.com/mahdiidarabi/ecc-secp256k1/pkg/hashes"
)

var (
	errInvalidSignature = errors.New("signature is invalid")
	errBatchFailed      = errors.New("batch contains invalid signatures")
)

// KeyOptions selects the private key for commands that need one.
type KeyOptions struct {
	Secret string `short:"k" long:"secret" description:"private key as a decimal or 0x-prefixed hex integer"`
	WIF    string `short:"w" long:"wif" description:"private key in wallet import format"`
}

func (o *KeyOptions) load() (*ecc.PrivateKey, error) {
	switch {
	case o.Secret != "" && o.WIF != "":
		return nil, errors.New("use only one of --secret and --wif")
	case o.WIF != "":
		key, _, err := ecc.ParseWIF(o.WIF)
		return key, err
	case o.Secret != "":
		secret, err := parser.ParseBigInt(o.Secret)
		if err != nil {
			return nil, fmt.Errorf("failed to parse secret: %w", err)
		}
		return ecc.NewPrivateKey(secret)
	default:
		return nil, errors.New("one of --secret or --wif is required")
	}
}

// HashOptions selects the message hash z.
type HashOptions struct {
	Message string `short:"m" long:"message" description:"message to hash with hash256"`
	Z       string `short:"z" long:"z" description:"message hash as a decimal or 0x-prefixed hex integer"`
}

func (o *HashOptions) load() (*big.Int, error) {
	switch {
	case o.Message != "" && o.Z != "":
		return nil, errors.New("use only one of --message and --z")
	case o.Z != "":
		z, err := parser.ParseBigInt(o.Z)
		if err != nil {
			return nil, fmt.Errorf("failed to parse z: %w", err)
		}
		return z, nil
	case o.Message != "":
		return new(big.Int).SetBytes(hashes.Hash256([]byte(o.Message))), nil
	default:
		return nil, errors.New("one of --message or --z is required")
	}
}

type PubKey struct {
	KeyOptions
	Uncompressed bool `short:"u" long:"uncompressed" description:"use the uncompressed SEC format"`
	Testnet      bool `short:"t" long:"testnet" description:"use testnet address and WIF prefixes"`
}

func (x *PubKey) Execute(args []string) error {
	key, err := x.load()
	if err != nil {
		return err
	}
	compressed := !x.Uncompressed
	point := key.PublicPoint()

	fmt.Fprintf(out, "sec:     %x\n", point.SEC(compressed))
	fmt.Fprintf(out, "address: %s\n", point.Address(compressed, x.Testnet))
	fmt.Fprintf(out, "wif:     %s\n", key.WIF(compressed, x.Testnet))
	return nil
}

type Sign struct {
	KeyOptions
	HashOptions
}

func (x *Sign) Execute(args []string) error {
	key, err := x.KeyOptions.load()
	if err != nil {
		return err
	}
	z, err := x.HashOptions.load()
	if err != nil {
		return err
	}
	log.Debugf("Signing z=%064x", z)

	sig := key.Sign(z)
	fmt.Fprintf(out, "r:   %064x\n", sig.R())
	fmt.Fprintf(out, "s:   %064x\n", sig.S())
	fmt.Fprintf(out, "der: %x\n", sig.DER())
	return nil
}

type Verify struct {
	HashOptions
	PubKey string `short:"p" long:"pubkey" required:"true" description:"SEC encoded public key in hex"`
	DER    string `short:"d" long:"der" required:"true" description:"DER encoded signature in hex"`
}

func (x *Verify) Execute(args []string) error {
	sec, err := parser.HexDecode(x.PubKey)
	if err != nil {
		return fmt.Errorf("failed to decode public key: %w", err)
	}
	point, err := ecc.ParseSEC(sec)
	if err != nil {
		return err
	}
	der, err := parser.HexDecode(x.DER)
	if err != nil {
		return fmt.Errorf("failed to decode signature: %w", err)
	}
	sig, err := ecc.ParseDER(der)
	if err != nil {
		return err
	}
	z, err := x.HashOptions.load()
	if err != nil {
		return err
	}

	if !point.Verify(z, sig) {
		fmt.Fprintln(out, "invalid")
		return errInvalidSignature
	}
	fmt.Fprintln(out, "valid")
	return nil
}

type Batch struct {
	File     string `short:"f" long:"file" required:"true" description:"path to a JSON or CSV signature file"`
	Format   string `long:"format" choice:"json" choice:"csv" description:"file format, detected from the extension by default"`
	PubKey   string `short:"p" long:"pubkey" description:"SEC encoded public key in hex for records without one"`
	Workers  int    `short:"n" long:"workers" description:"number of parallel workers (0 = auto-detect based on CPU cores)"`
	FailFast bool   `long:"fail-fast" description:"stop at the first invalid signature"`
}

func (x *Batch) Execute(args []string) error {
	format := x.Format
	if format == "" {
		format = "json"
		if strings.HasSuffix(strings.ToLower(x.File), ".csv") {
			format = "csv"
		}
	}

	verifier := batch.NewVerifier().WithConfig(batch.Config{
		NumWorkers: x.Workers,
		FailFast:   x.FailFast,
	})
	if format == "csv" {
		verifier = verifier.WithParser(&batch.CSVParser{})
	}
	if x.PubKey != "" {
		sec, err := parser.HexDecode(x.PubKey)
		if err != nil {
			return fmt.Errorf("failed to decode public key: %w", err)
		}
		verifier = verifier.WithPublicKey(sec)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Infof("Loading signatures from %s", x.File)
	report, err := verifier.VerifyFile(ctx, x.File)
	if err != nil {
		return err
	}

	for _, res := range report.Results {
		switch {
		case res.Valid:
			continue
		case errors.Is(res.Err, batch.ErrSkipped):
			continue
		case res.Err != nil:
			fmt.Fprintf(out, "record %d: error: %v\n", res.Index, res.Err)
		default:
			fmt.Fprintf(out, "record %d: invalid\n", res.Index)
		}
	}
	fmt.Fprintf(out, "total: %d valid: %d invalid: %d skipped: %d\n",
		report.Total, report.Valid, report.Invalid, report.Skipped)

	if !report.AllValid() {
		return errBatchFailed
	}
	return nil
}
