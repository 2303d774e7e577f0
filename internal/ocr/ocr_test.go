package ocr

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRunner struct {
	name string
	args []string
	out  []byte
	err  error
}

func (r *recordingRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	r.name = name
	r.args = args
	return r.out, nil, r.err
}

func TestImageTextArgs(t *testing.T) {
	runner := &recordingRunner{out: []byte("Certificate of Internship\n")}
	e := NewEngineWithRunner(Config{TessdataDir: "/opt/tessdata"}, runner, nil)

	txt, err := e.ImageText(context.Background(), "/tmp/scan.png")
	require.NoError(t, err)
	assert.Equal(t, "Certificate of Internship", txt)
	assert.Equal(t, "tesseract", runner.name)
	assert.Equal(t, []string{"/tmp/scan.png", "stdout", "-l", "eng", "--tessdata-dir", "/opt/tessdata"}, runner.args)
}

func TestImageTextStripsBoxNoise(t *testing.T) {
	runner := &recordingRunner{out: []byte("Header\n______\nBody\n---\n")}
	e := NewEngineWithRunner(Config{}, runner, nil)

	txt, err := e.ImageText(context.Background(), "scan.png")
	require.NoError(t, err)
	assert.NotContains(t, txt, "______")
	assert.Contains(t, txt, "Header")
	assert.Contains(t, txt, "Body")
}

func TestImageTextError(t *testing.T) {
	runner := &recordingRunner{err: errors.New("exit status 1")}
	e := NewEngineWithRunner(Config{}, runner, nil)

	_, err := e.ImageText(context.Background(), "scan.png")
	assert.Error(t, err)
}

func TestNewEngineWiresRunnerLogger(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := NewEngine(Config{}, logger)
	r, ok := e.runner.(execRunner)
	require.True(t, ok)
	assert.Same(t, logger, r.logger)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", maxLogOutput))
	long := strings.Repeat("e", maxLogOutput+100)
	got := truncate(long, maxLogOutput)
	assert.Len(t, got, maxLogOutput+len("...(truncated)"))
	assert.True(t, strings.HasSuffix(got, "...(truncated)"))
}

func TestEngineDefaults(t *testing.T) {
	e := newEngine(Config{}, &recordingRunner{}, nil)
	assert.Equal(t, "tesseract", e.cfg.Tesseract)
	assert.Equal(t, "pdftoppm", e.cfg.Pdftoppm)
	assert.Equal(t, "eng", e.cfg.TesseractLang)
	assert.Equal(t, 300, e.cfg.DPI)
}
