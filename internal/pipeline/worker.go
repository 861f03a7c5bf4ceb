package pipeline

import (
	"bufio"
	"context"
	"io"
	"iter"

	"github.com/vk/sentproc/internal/ctxlog"
	"golang.org/x/sync/errgroup"
)

// linesPerWorker sizes a batch for concurrent processing.
const linesPerWorker = 256

// processConcurrent reads the input in batches, transforms each batch with
// up to workers goroutines and writes the batch in input order before
// reading the next one.
func processConcurrent(ctx context.Context, in io.Reader, w *bufio.Writer, outPath string, chain *Chain, workers int) (int, error) {
	logger := ctxlog.FromContext(ctx)
	batchSize := workers * linesPerWorker

	next, stop := iter.Pull2(readLines(in))
	defer stop()

	total := 0
	batch := make([]string, 0, batchSize)
	for {
		batch = batch[:0]
		var readErr error
		for len(batch) < batchSize {
			line, err, ok := next()
			if !ok {
				break
			}
			if err != nil {
				readErr = readError(total+len(batch)+1, err)
				break
			}
			batch = append(batch, line)
		}

		if len(batch) > 0 {
			results, err := processBatch(ctx, batch, chain, workers, total)
			if err != nil {
				return total, err
			}
			for _, line := range results {
				if err := writeLine(w, outPath, line); err != nil {
					return total, err
				}
			}
			total += len(batch)
			logger.Debug("Batch written.", "lines", len(batch), "total", total)
		}

		if readErr != nil {
			return total, readErr
		}
		if len(batch) < batchSize {
			return total, nil
		}
	}
}

// processBatch transforms batch concurrently. Each goroutine owns one slot
// of the result slice, so the order of the input is kept.
func processBatch(ctx context.Context, batch []string, chain *Chain, workers, offset int) ([]string, error) {
	results := make([]string, len(batch))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, line := range batch {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := safeProcessLine(line, chain)
			if err != nil {
				return &LineError{Line: offset + i + 1, Err: err}
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
