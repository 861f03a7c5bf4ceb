package pipeline

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/vk/sentproc/internal/config"
	"github.com/vk/sentproc/internal/ctxlog"
	"github.com/vk/sentproc/internal/registry"
)

// Request describes a single processing run.
type Request struct {
	// Input is the text file to read.
	Input string
	// Processors is the ordered chain of plugin names.
	Processors []string
	// Output is the file to write. Empty means Input + ".processed".
	Output string
	// Workers above 1 transform lines concurrently; output order is kept.
	Workers int
	// Overwrite allows replacing an existing output file.
	Overwrite bool
}

// RequestFromConfig builds a Request from a normalized configuration.
func RequestFromConfig(cfg *config.Config) Request {
	return Request{
		Input:      cfg.Input,
		Processors: cfg.Processors,
		Output:     cfg.OutputPath(),
		Workers:    cfg.Workers,
		Overwrite:  cfg.AllowOverwrite(),
	}
}

// Result summarises a completed run.
type Result struct {
	RunID      string
	OutputPath string
	Chain      []string
	Lines      int
}

// Run resolves the chain, streams every line of the input through it and
// writes the results, one per line, to the output file. The chain is
// resolved before any file is opened. Both files are closed on every exit
// path. When writing fails mid-stream the partial output is left in place.
func Run(ctx context.Context, reg *registry.Registry, req Request) (*Result, error) {
	runID := uuid.NewString()
	ctx = ctxlog.With(ctx, "run_id", runID)
	logger := ctxlog.FromContext(ctx)

	chain, err := ResolveChain(reg, req.Processors)
	if err != nil {
		return nil, err
	}
	logger.Debug("Processing chain resolved.", "chain", chain.Names())

	outPath := req.Output
	if outPath == "" {
		outPath = req.Input + config.DefaultOutputSuffix
	}

	in, err := openInput(req.Input)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	out, err := createOutput(outPath, req.Overwrite)
	if err != nil {
		return nil, err
	}
	closed := false
	defer func() {
		if !closed {
			out.Close()
		}
	}()

	logger.Info("Processing started.", "input", req.Input, "output", outPath, "workers", req.Workers)
	w := bufio.NewWriter(out)

	var lines int
	if req.Workers > 1 {
		lines, err = processConcurrent(ctx, in, w, outPath, chain, req.Workers)
	} else {
		lines, err = processSequential(ctx, in, w, outPath, chain)
	}
	if err != nil {
		return nil, err
	}

	if err := w.Flush(); err != nil {
		return nil, &IOError{Op: "write output", Path: outPath, Err: err}
	}
	closed = true
	if err := out.Close(); err != nil {
		return nil, &IOError{Op: "close output", Path: outPath, Err: err}
	}

	logger.Info("Processing finished.", "lines", lines, "output", outPath)
	return &Result{
		RunID:      runID,
		OutputPath: outPath,
		Chain:      chain.Names(),
		Lines:      lines,
	}, nil
}

// openInput opens path for reading. Anything but a regular file is rejected
// here, before the output is created.
func openInput(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open input", Path: path, Err: err}
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, &IOError{Op: "stat input", Path: path, Err: err}
	}
	if !info.Mode().IsRegular() {
		f.Close()
		return nil, &IOError{Op: "open input", Path: path, Err: ErrNotRegularFile}
	}
	return f, nil
}

func createOutput(path string, overwrite bool) (*os.File, error) {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrOutputExists)
		}
		return nil, &IOError{Op: "create output", Path: path, Err: err}
	}
	return f, nil
}

// processSequential writes the transformed lines of in to w. A plugin panic
// is reported as a LineError for the line being transformed.
func processSequential(ctx context.Context, in io.Reader, w *bufio.Writer, outPath string, chain *Chain) (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &LineError{Line: n + 1, Err: fmt.Errorf("%w: %v", ErrPluginPanic, r)}
		}
	}()

	for line, readErr := range ProcessStream(in, chain) {
		if readErr != nil {
			return n, readError(n+1, readErr)
		}
		if err := ctx.Err(); err != nil {
			return n, err
		}
		n++
		if err := writeLine(w, outPath, line); err != nil {
			return n, err
		}
	}
	return n, nil
}

// safeProcessLine runs ProcessLine and turns a plugin panic into an error.
func safeProcessLine(line string, chain *Chain) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPluginPanic, r)
		}
	}()
	return ProcessLine(line, chain), nil
}

func writeLine(w *bufio.Writer, path, line string) error {
	if _, err := w.WriteString(line); err != nil {
		return &IOError{Op: "write output", Path: path, Err: err}
	}
	if err := w.WriteByte('\n'); err != nil {
		return &IOError{Op: "write output", Path: path, Err: err}
	}
	return nil
}

func readError(line int, err error) error {
	if errors.Is(err, ErrLineTooLong) {
		return &LineError{Line: line, Err: err}
	}
	return &IOError{Op: "read input", Err: err}
}
