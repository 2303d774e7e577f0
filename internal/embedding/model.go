// Package embedding loads a pre-trained word2vec binary and answers
// token-to-token cosine similarity queries. The model is loaded once at
// startup and is read-only afterward, so concurrent readers need no
// locking.
package embedding

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
)

// Model is an in-memory token -> vector lookup with precomputed norms.
type Model struct {
	dims  int
	vecs  map[string][]float32
	norms map[string]float64
}

// Load reads a word2vec model in the original C binary format:
// a "<count> <dims>\n" header, then per entry the token, a space, and
// dims little-endian float32s.
func Load(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return LoadFromReader(f)
}

// LoadFromReader parses a word2vec binary stream.
func LoadFromReader(r io.Reader) (*Model, error) {
	br := bufio.NewReaderSize(r, 1<<20)

	var count, dims int
	if _, err := fmt.Fscanf(br, "%d %d\n", &count, &dims); err != nil {
		return nil, fmt.Errorf("word2vec header: %w", err)
	}
	if count <= 0 || dims <= 0 {
		return nil, fmt.Errorf("word2vec header: bad dimensions %d x %d", count, dims)
	}

	m := &Model{
		dims:  dims,
		vecs:  make(map[string][]float32, count),
		norms: make(map[string]float64, count),
	}

	raw := make([]byte, dims*4)
	for i := 0; i < count; i++ {
		word, err := readToken(br)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("word2vec entry %d: %w", i, err)
		}
		if _, err := io.ReadFull(br, raw); err != nil {
			return nil, fmt.Errorf("word2vec vector for %q: %w", word, err)
		}
		vec, norm := readVector(raw, dims)
		m.vecs[word] = vec
		m.norms[word] = norm
	}
	return m, nil
}

// readToken reads the next whitespace-terminated token, skipping the
// newline some writers emit between entries.
func readToken(br *bufio.Reader) (string, error) {
	var sb strings.Builder
	for {
		b, err := br.ReadByte()
		if err != nil {
			if err == io.EOF && sb.Len() > 0 {
				return sb.String(), nil
			}
			return "", err
		}
		switch b {
		case ' ':
			if sb.Len() == 0 {
				continue
			}
			return sb.String(), nil
		case '\n', '\r':
			if sb.Len() > 0 {
				return sb.String(), nil
			}
		default:
			sb.WriteByte(b)
		}
	}
}

// readVector decodes dims little-endian float32s, accumulating the L2
// norm on the way so Similarity never recomputes it.
func readVector(raw []byte, dims int) ([]float32, float64) {
	vec := make([]float32, dims)
	var sumSq float64
	for i := range vec {
		v := math.Float32frombits(binary.LittleEndian.Uint32(raw[i*4:]))
		vec[i] = v
		sumSq += float64(v) * float64(v)
	}
	return vec, math.Sqrt(sumSq)
}

// cosine is the dot product of two equal-length vectors over the product
// of their precomputed norms. Zero vectors score 0.
func cosine(a, b []float32, normA, normB float64) float64 {
	if normA == 0 || normB == 0 {
		return 0
	}
	var dot float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
	}
	return dot / (normA * normB)
}

// Dims returns the vector dimensionality.
func (m *Model) Dims() int { return m.dims }

// Len returns the vocabulary size.
func (m *Model) Len() int { return len(m.vecs) }

// Contains reports whether the token is in vocabulary.
func (m *Model) Contains(word string) bool {
	_, ok := m.vecs[word]
	return ok
}

// Similarity returns the cosine similarity of two in-vocabulary tokens
// in [-1,1], or 0 when either token is out of vocabulary.
func (m *Model) Similarity(a, b string) float64 {
	va, ok := m.vecs[a]
	if !ok {
		return 0
	}
	vb, ok := m.vecs[b]
	if !ok {
		return 0
	}
	return clamp(cosine(va, vb, m.norms[a], m.norms[b]), -1, 1)
}

// epsilon guard for float noise: cosine of a vector with itself can land
// a hair outside [-1,1].
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
