package schnorrbatch

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func hexField(b byte) string {
	return "0x" + strings.Repeat(fmt.Sprintf("%02x", b), FieldSize)
}

func TestJSONParser_ParseBatch(t *testing.T) {
	content := `{
  "signatures": [
    {"parity": 27, "px": "` + hexField(0x01) + `", "e": "` + hexField(0x02) + `", "s": "` + hexField(0x03) + `"},
    {"parity": 28, "px": "` + hexField(0x04) + `", "e": "` + hexField(0x05) + `", "s": "` + hexField(0x06) + `"}
  ],
  "payloads": [["` + hexField(0x07) + `"], ["` + hexField(0x08) + `", "` + hexField(0x09) + `"]],
  "payload": ["` + hexField(0x0a) + `"]
}`
	batch, err := (&JSONParser{}).ParseBatch(writeFile(t, "batch.json", content))
	require.NoError(t, err)

	require.Len(t, batch.Items, 2)
	assert.Equal(t, ParityEven, batch.Items[0].PublicKey.Parity)
	assert.Equal(t, ParityOdd, batch.Items[1].PublicKey.Parity)
	assert.Equal(t, [FieldSize]byte(value(0x04)), batch.Items[1].PublicKey.X)
	assert.Equal(t, [FieldSize]byte(value(0x05)), batch.Items[1].Signature.E)
	assert.Equal(t, [FieldSize]byte(value(0x06)), batch.Items[1].Signature.S)

	require.Len(t, batch.Payloads, 2)
	assert.Equal(t, ValueList{value(0x08), value(0x09)}, batch.Payloads[1])
	assert.Equal(t, ValueList{value(0x0a)}, batch.Payload)
}

func TestJSONParser_WriteJSONRoundTrip(t *testing.T) {
	batch := &Batch{
		Items: []BatchItem{{
			PublicKey: PublicKey{Parity: ParityOdd, X: value(0x31)},
			Signature: Signature{E: value(0x32), S: value(0x33)},
		}},
		Payloads: []ValueList{{value(0x34), value(0x35)}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, batch))
	assert.NotContains(t, buf.String(), `"payload":`)

	decoded, err := (&JSONParser{}).Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, batch, decoded)
}

func TestJSONParser_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"invalid parity", `{"signatures":[{"parity":26,"px":"` + hexField(1) + `","e":"` + hexField(1) + `","s":"` + hexField(1) + `"}]}`, ErrInvalidParity},
		{"short px", `{"signatures":[{"parity":27,"px":"0x0102","e":"` + hexField(1) + `","s":"` + hexField(1) + `"}]}`, ErrFieldWidth},
		{"short value", `{"signatures":[],"payloads":[["0x01"]]}`, ErrFieldWidth},
		{"long deposit value", `{"signatures":[],"payload":["` + hexField(1) + `00"]}`, ErrFieldWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := (&JSONParser{}).ParseBatch(writeFile(t, "batch.json", tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := (&JSONParser{}).ParseBatch(writeFile(t, "bad.json", `{"signatures": [`))
	assert.Error(t, err)

	_, err = (&JSONParser{}).ParseBatch(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestCSVParser_ParseBatch(t *testing.T) {
	content := "parity,px,e,s,value0,value1\n" +
		"27," + hexField(1) + "," + hexField(2) + "," + hexField(3) + "," + hexField(4) + "," + hexField(5) + "\n" +
		"28," + hexField(6) + "," + hexField(7) + "," + hexField(8) + "," + hexField(9) + "," + hexField(10) + "\n"

	batch, err := (&CSVParser{}).ParseBatch(writeFile(t, "batch.csv", content))
	require.NoError(t, err)

	require.Len(t, batch.Items, 2)
	require.Len(t, batch.Payloads, 2)
	assert.Equal(t, ParityOdd, batch.Items[1].PublicKey.Parity)
	assert.Equal(t, ValueList{value(4), value(5)}, batch.Payloads[0])
	assert.Equal(t, ValueList{value(9), value(10)}, batch.Payloads[1])
	assert.Nil(t, batch.Payload)
}

func TestCSVParser_CustomColumns(t *testing.T) {
	content := "sig_s,sig_e,key_x,key_parity,field_a\n" +
		hexField(3) + "," + hexField(2) + "," + hexField(1) + ",27," + hexField(4) + "\n"

	parser := &CSVParser{ParityCol: "key_parity", PXCol: "key_x", ECol: "sig_e", SCol: "sig_s", ValuePrefix: "field_"}
	batch, err := parser.ParseBatch(writeFile(t, "batch.csv", content))
	require.NoError(t, err)

	require.Len(t, batch.Items, 1)
	assert.Equal(t, [FieldSize]byte(value(1)), batch.Items[0].PublicKey.X)
	assert.Equal(t, [FieldSize]byte(value(2)), batch.Items[0].Signature.E)
	assert.Equal(t, [FieldSize]byte(value(3)), batch.Items[0].Signature.S)
	assert.Equal(t, ValueList{value(4)}, batch.Payloads[0])
}

func TestCSVParser_Errors(t *testing.T) {
	_, err := (&CSVParser{}).ParseBatch(writeFile(t, "batch.csv", "parity,px,e\n"))
	assert.Error(t, err)

	content := "parity,px,e,s\n27,0x01," + hexField(2) + "," + hexField(3) + "\n"
	_, err = (&CSVParser{}).ParseBatch(writeFile(t, "batch.csv", content))
	assert.ErrorIs(t, err, ErrFieldWidth)

	content = "parity,px,e,s\nodd," + hexField(1) + "," + hexField(2) + "," + hexField(3) + "\n"
	_, err = (&CSVParser{}).ParseBatch(writeFile(t, "batch.csv", content))
	assert.Error(t, err)
}
