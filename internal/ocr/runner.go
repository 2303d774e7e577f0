package ocr

import (
	"bytes"
	"context"
	"log/slog"
	"os/exec"
	"time"
)

// Runner abstracts subprocess execution so tests can stand in for the
// OCR binaries.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

// execRunner shells out for real. Stdout and stderr are captured
// separately; stderr is where tesseract and pdftoppm complain.
type execRunner struct {
	logger *slog.Logger
}

func (r execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	took := time.Since(start).Round(time.Millisecond)

	if err != nil {
		r.logger.Error("subprocess failed",
			"bin", name,
			"args", args,
			"took", took,
			"error", err,
			"stderr", truncate(stderr.String(), maxLogOutput),
		)
		return stdout.Bytes(), stderr.Bytes(), err
	}

	r.logger.Debug("subprocess ok",
		"bin", name,
		"args", args,
		"took", took,
		"stdout_bytes", stdout.Len(),
	)
	return stdout.Bytes(), stderr.Bytes(), nil
}

// maxLogOutput caps how much subprocess stderr lands in a log record.
const maxLogOutput = 4 << 10

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}
