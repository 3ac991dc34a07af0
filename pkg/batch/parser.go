package batch

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/mahdiidarabi/ecc-secp256k1/internal/parser"
	"github.com/mahdiidarabi/ecc-secp256k1/pkg/ecc"
	"github.com/mahdiidarabi/ecc-secp256k1/pkg/hashes"
)

// Parser loads signature records from a source.
type Parser interface {
	// ParseRecords parses records from a source and returns them.
	ParseRecords(source string) ([]*Record, error)
}

// Fields names the JSON keys or CSV columns a parser reads.  Empty names
// fall back to the defaults.
type Fields struct {
	Message string // default: "message"
	Z       string // default: "z"
	R       string // default: "r"
	S       string // default: "s"
	DER     string // default: "der"
	PubKey  string // default: "pubkey"
}

func (f Fields) withDefaults() Fields {
	if f.Message == "" {
		f.Message = "message"
	}
	if f.Z == "" {
		f.Z = "z"
	}
	if f.R == "" {
		f.R = "r"
	}
	if f.S == "" {
		f.S = "s"
	}
	if f.DER == "" {
		f.DER = "der"
	}
	if f.PubKey == "" {
		f.PubKey = "pubkey"
	}
	return f
}

// JSONParser parses records from a JSON array of objects.
type JSONParser struct {
	Fields Fields
}

// ParseRecords parses records from a JSON file.
func (p *JSONParser) ParseRecords(jsonFile string) ([]*Record, error) {
	file, err := os.Open(jsonFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	defer file.Close()

	return p.Parse(file)
}

// Parse reads records from r.
func (p *JSONParser) Parse(r io.Reader) ([]*Record, error) {
	decoder := json.NewDecoder(r)
	decoder.UseNumber() // Preserve large numbers as json.Number instead of float64

	var items []map[string]interface{}
	if err := decoder.Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	fields := p.Fields.withDefaults()
	records := make([]*Record, 0, len(items))
	for i, item := range items {
		rec, err := buildRecord(fields, func(name string) (interface{}, bool) {
			v, ok := item[name]
			return v, ok && v != nil
		})
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// CSVParser parses records from a CSV file with a header row.
type CSVParser struct {
	Fields Fields
}

// ParseRecords parses records from a CSV file.
func (p *CSVParser) ParseRecords(csvFile string) ([]*Record, error) {
	file, err := os.Open(csvFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return p.Parse(file)
}

// Parse reads records from r.
func (p *CSVParser) Parse(r io.Reader) ([]*Record, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, col := range header {
		columns[col] = i
	}

	fields := p.Fields.withDefaults()
	records := make([]*Record, 0)
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		rec, err := buildRecord(fields, func(name string) (interface{}, bool) {
			idx, ok := columns[name]
			if !ok || idx >= len(row) || row[idx] == "" {
				return nil, false
			}
			return row[idx], true
		})
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// buildRecord assembles a record from named values, whatever their source.
func buildRecord(fields Fields, get func(name string) (interface{}, bool)) (*Record, error) {
	rec := &Record{}

	// Get z, or hash the message
	if zVal, ok := get(fields.Z); ok {
		z, err := parser.ParseBigInt(zVal)
		if err != nil {
			return nil, fmt.Errorf("failed to parse z: %w", err)
		}
		rec.Z = z
	} else if msgVal, ok := get(fields.Message); ok {
		msg, ok := msgVal.(string)
		if !ok {
			return nil, fmt.Errorf("message field must be a string")
		}
		rec.Z = new(big.Int).SetBytes(hashes.Hash256([]byte(msg)))
	} else {
		return nil, fmt.Errorf("missing message or z field")
	}

	// Get the signature from DER, or from r and s
	if derVal, ok := get(fields.DER); ok {
		derHex, ok := derVal.(string)
		if !ok {
			return nil, fmt.Errorf("der field must be a hex string")
		}
		der, err := parser.HexDecode(derHex)
		if err != nil {
			return nil, fmt.Errorf("failed to decode der: %w", err)
		}
		sig, err := ecc.ParseDER(der)
		if err != nil {
			return nil, fmt.Errorf("failed to parse der: %w", err)
		}
		rec.R, rec.S = sig.R(), sig.S()
	} else {
		rVal, ok := get(fields.R)
		if !ok {
			return nil, fmt.Errorf("missing r field")
		}
		r, err := parser.ParseBigInt(rVal)
		if err != nil {
			return nil, fmt.Errorf("failed to parse r: %w", err)
		}
		rec.R = r

		sVal, ok := get(fields.S)
		if !ok {
			return nil, fmt.Errorf("missing s field")
		}
		s, err := parser.ParseBigInt(sVal)
		if err != nil {
			return nil, fmt.Errorf("failed to parse s: %w", err)
		}
		rec.S = s
	}

	// Public key is optional; the verifier may supply a default
	if pkVal, ok := get(fields.PubKey); ok {
		pkHex, ok := pkVal.(string)
		if !ok {
			return nil, fmt.Errorf("pubkey field must be a hex string")
		}
		pk, err := parser.HexDecode(pkHex)
		if err != nil {
			return nil, fmt.Errorf("failed to decode pubkey: %w", err)
		}
		rec.PublicKey = pk
	}

	return rec, nil
}
