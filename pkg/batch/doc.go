// Package batch verifies many secp256k1 ECDSA signatures concurrently.
//
// Records are loaded from JSON or CSV files by a Parser, or built in memory,
// and checked by a Verifier that fans them out across a pool of workers.
//
// # Quick Start
//
//	v := batch.NewVerifier().WithConfig(batch.Config{NumWorkers: 4})
//	report, err := v.VerifyFile(ctx, "signatures.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%d/%d valid\n", report.Valid, report.Total)
//
// # Input Formats
//
// A record needs a public key, a message hash and a signature.  The hash is
// taken from the z field, or computed as hash256 of the message field when z
// is absent.  The signature is either the r and s fields or a DER encoding in
// the der field.  Public keys are SEC encoded hex, compressed or not.
//
//	[
//	  {"message": "hello", "r": "0x...", "s": "0x...", "pubkey": "02..."},
//	  {"z": "0x...", "der": "3044...", "pubkey": "04..."}
//	]
//
// CSV files carry the same names in their header row.
package batch
