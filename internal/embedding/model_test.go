package embedding

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appendEntry(buf *bytes.Buffer, word string, vec []float32) {
	buf.WriteString(word)
	buf.WriteByte(' ')
	for _, v := range vec {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], math.Float32bits(v))
		buf.Write(b[:])
	}
	buf.WriteByte('\n')
}

func testStream() *bytes.Buffer {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "3 3\n")
	appendEntry(&buf, "cloud", []float32{0.5, 0.5, 0})
	appendEntry(&buf, "nimbus", []float32{0.5, 0.5, 0})
	appendEntry(&buf, "granite", []float32{0, 0, 1})
	return &buf
}

func TestLoadFromReader(t *testing.T) {
	m, err := LoadFromReader(testStream())
	require.NoError(t, err)
	assert.Equal(t, 3, m.Dims())
	assert.Equal(t, 3, m.Len())
	assert.True(t, m.Contains("cloud"))
	assert.False(t, m.Contains("thundercloud"))
}

func TestLoadFromReaderBadHeader(t *testing.T) {
	_, err := LoadFromReader(bytes.NewBufferString("not a header\n"))
	assert.Error(t, err)

	_, err = LoadFromReader(bytes.NewBufferString("0 0\n"))
	assert.Error(t, err)
}

func TestLoadFromReaderTruncatedVector(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("1 3\n")
	appendEntry(&buf, "cloud", []float32{1}) // 4 bytes where 12 are due
	_, err := LoadFromReader(&buf)
	assert.Error(t, err)
}

func TestSimilarity(t *testing.T) {
	m, err := LoadFromReader(testStream())
	require.NoError(t, err)

	assert.InDelta(t, 1.0, m.Similarity("cloud", "cloud"), 1e-6)
	assert.InDelta(t, 1.0, m.Similarity("cloud", "nimbus"), 1e-6)
	assert.InDelta(t, 0.0, m.Similarity("cloud", "granite"), 1e-6)
	assert.Zero(t, m.Similarity("cloud", "unknown"))
	assert.Zero(t, m.Similarity("unknown", "cloud"))
}

func TestReadVector(t *testing.T) {
	var buf bytes.Buffer
	for _, v := range []float32{3, 4} {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], math.Float32bits(v))
		buf.Write(b[:])
	}
	vec, norm := readVector(buf.Bytes(), 2)
	assert.Equal(t, []float32{3, 4}, vec)
	assert.InDelta(t, 5.0, norm, 1e-9)
}

func TestCosine(t *testing.T) {
	x := []float32{1, 0}
	y := []float32{0, 1}
	assert.InDelta(t, 1.0, cosine(x, x, 1, 1), 1e-9)
	assert.InDelta(t, 0.0, cosine(x, y, 1, 1), 1e-9)
	assert.Zero(t, cosine(x, y, 0, 1))
}
