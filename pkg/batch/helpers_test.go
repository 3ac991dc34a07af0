package batch

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mahdiidarabi/ecc-secp256k1/pkg/ecc"
	"github.com/mahdiidarabi/ecc-secp256k1/pkg/hashes"
)

// testKey returns a fixed signing key.
func testKey(t *testing.T) *ecc.PrivateKey {
	t.Helper()
	key, err := ecc.NewPrivateKey(big.NewInt(0x12345deadbeef))
	require.NoError(t, err)
	return key
}

func messageHash(msg string) *big.Int {
	return new(big.Int).SetBytes(hashes.Hash256([]byte(msg)))
}

// signedRecords returns n records signed by key over "message <i>".
func signedRecords(key *ecc.PrivateKey, n int) []*Record {
	pub := key.PublicPoint().SEC(true)
	records := make([]*Record, n)
	for i := range records {
		z := messageHash(fmt.Sprintf("message %d", i))
		sig := key.Sign(z)
		records[i] = &Record{Z: z, R: sig.R(), S: sig.S(), PublicKey: pub}
	}
	return records
}

// tamper returns a copy of rec whose hash no longer matches its signature.
func tamper(rec *Record) *Record {
	z := new(big.Int).Add(rec.Z, big.NewInt(1))
	return &Record{Z: z, R: rec.R, S: rec.S, PublicKey: rec.PublicKey}
}

// writeJSON writes v to a file in a temporary directory and returns its path.
func writeJSON(t *testing.T, v interface{}) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "signatures.json")
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

// writeCSV writes the rows, header first, to a temporary file.
func writeCSV(t *testing.T, rows [][]string) string {
	t.Helper()
	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(strings.Join(row, ","))
		sb.WriteString("\n")
	}
	path := filepath.Join(t.TempDir(), "signatures.csv")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0o600))
	return path
}

func hexOf(b []byte) string { return hex.EncodeToString(b) }
