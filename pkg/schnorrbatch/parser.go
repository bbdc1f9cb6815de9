package schnorrbatch

import (
	"encoding/csv"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Batch is a parsed batch file.
type Batch struct {
	Items    []BatchItem
	Payloads []ValueList // One payload per item (joint and independent modes)
	Payload  ValueList   // Shared payload (deposit mode)
}

// BatchParser defines the interface for loading batches from various sources.
type BatchParser interface {
	// ParseBatch parses a batch from a source and returns it.
	ParseBatch(source string) (*Batch, error)
}

// JSONParser parses batches from JSON files.
type JSONParser struct{}

type jsonSignature struct {
	Parity uint8  `json:"parity"`
	PX     string `json:"px"`
	E      string `json:"e"`
	S      string `json:"s"`
}

type jsonBatch struct {
	Signatures []jsonSignature `json:"signatures"`
	Payloads   [][]string      `json:"payloads,omitempty"`
	Payload    []string        `json:"payload,omitempty"`
}

// ParseBatch parses a batch from a JSON file.
//
// Expected format:
//
//	{
//	  "signatures": [{"parity": 27, "px": "0x...", "e": "0x...", "s": "0x..."}],
//	  "payloads":   [["0x...", "0x...", "0x...", "0x...", "0x..."]],
//	  "payload":    ["0x...", "0x...", "0x...", "0x...", "0x..."]
//	}
func (p *JSONParser) ParseBatch(jsonFile string) (*Batch, error) {
	file, err := os.Open(jsonFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	defer file.Close()
	return p.Decode(file)
}

// Decode parses a JSON batch from r.
func (p *JSONParser) Decode(r io.Reader) (*Batch, error) {
	var raw jsonBatch
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	batch := &Batch{Items: make([]BatchItem, 0, len(raw.Signatures))}
	for i, rec := range raw.Signatures {
		item, err := parseItem(strconv.Itoa(int(rec.Parity)), rec.PX, rec.E, rec.S)
		if err != nil {
			return nil, fmt.Errorf("signature %d: %w", i, err)
		}
		batch.Items = append(batch.Items, item)
	}

	for i, values := range raw.Payloads {
		list, err := parseValueList(values)
		if err != nil {
			return nil, fmt.Errorf("payload %d: %w", i, err)
		}
		batch.Payloads = append(batch.Payloads, list)
	}

	if raw.Payload != nil {
		list, err := parseValueList(raw.Payload)
		if err != nil {
			return nil, fmt.Errorf("payload: %w", err)
		}
		batch.Payload = list
	}

	return batch, nil
}

// WriteJSON encodes batch in the format read by JSONParser.
func WriteJSON(w io.Writer, batch *Batch) error {
	raw := jsonBatch{Signatures: make([]jsonSignature, len(batch.Items))}
	for i, item := range batch.Items {
		raw.Signatures[i] = jsonSignature{
			Parity: uint8(item.PublicKey.Parity),
			PX:     encodeField(item.PublicKey.X[:]),
			E:      encodeField(item.Signature.E[:]),
			S:      encodeField(item.Signature.S[:]),
		}
	}
	for _, list := range batch.Payloads {
		raw.Payloads = append(raw.Payloads, encodeValueList(list))
	}
	if batch.Payload != nil {
		raw.Payload = encodeValueList(batch.Payload)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(raw)
}

// CSVParser parses batches from CSV files. Each row is one item followed by
// its own payload values.
type CSVParser struct {
	ParityCol   string // Column name for parity (default: "parity")
	PXCol       string // Column name for px (default: "px")
	ECol        string // Column name for e (default: "e")
	SCol        string // Column name for s (default: "s")
	ValuePrefix string // Prefix of payload columns (default: "value")
}

// ParseBatch parses a batch from a CSV file.
func (p *CSVParser) ParseBatch(csvFile string) (*Batch, error) {
	file, err := os.Open(csvFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	// Read header
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	parityIdx := columnIndex(header, orDefault(p.ParityCol, "parity"))
	pxIdx := columnIndex(header, orDefault(p.PXCol, "px"))
	eIdx := columnIndex(header, orDefault(p.ECol, "e"))
	sIdx := columnIndex(header, orDefault(p.SCol, "s"))
	if parityIdx == -1 || pxIdx == -1 || eIdx == -1 || sIdx == -1 {
		return nil, fmt.Errorf("missing required columns: parity, px, e or s")
	}

	prefix := orDefault(p.ValuePrefix, "value")
	var valueIdx []int
	for i, col := range header {
		if strings.HasPrefix(col, prefix) {
			valueIdx = append(valueIdx, i)
		}
	}

	batch := &Batch{}
	for row := 1; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		item, err := parseItem(record[parityIdx], record[pxIdx], record[eIdx], record[sIdx])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}

		values := make([]string, len(valueIdx))
		for j, idx := range valueIdx {
			values[j] = record[idx]
		}
		list, err := parseValueList(values)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}

		batch.Items = append(batch.Items, item)
		batch.Payloads = append(batch.Payloads, list)
	}

	return batch, nil
}

func parseItem(parity, px, e, s string) (BatchItem, error) {
	var item BatchItem

	parityVal, err := strconv.ParseUint(strings.TrimSpace(parity), 10, 8)
	if err != nil {
		return item, fmt.Errorf("failed to parse parity: %w", err)
	}
	x, err := decodeField(px)
	if err != nil {
		return item, fmt.Errorf("failed to parse px: %w", err)
	}
	pub, err := NewPublicKey(byte(parityVal), x)
	if err != nil {
		return item, err
	}

	eBytes, err := decodeField(e)
	if err != nil {
		return item, fmt.Errorf("failed to parse e: %w", err)
	}
	sBytes, err := decodeField(s)
	if err != nil {
		return item, fmt.Errorf("failed to parse s: %w", err)
	}
	sig, err := NewSignature(eBytes, sBytes)
	if err != nil {
		return item, err
	}

	item.PublicKey = pub
	item.Signature = sig
	return item, nil
}

func parseValueList(values []string) (ValueList, error) {
	raw := make([][]byte, len(values))
	for i, v := range values {
		b, err := decodeField(v)
		if err != nil {
			return nil, fmt.Errorf("failed to parse value %d: %w", i, err)
		}
		raw[i] = b
	}
	return NewValueList(raw)
}

// decodeField decodes a 32-byte hex field, handling the 0x prefix.
func decodeField(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if len(b) != FieldSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrFieldWidth, len(b))
	}
	return b, nil
}

func encodeField(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

func encodeValueList(list ValueList) []string {
	out := make([]string, len(list))
	for i := range list {
		out[i] = encodeField(list[i][:])
	}
	return out
}

func columnIndex(header []string, name string) int {
	for i, col := range header {
		if col == name {
			return i
		}
	}
	return -1
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
