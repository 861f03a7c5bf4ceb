package pipeline

import (
	"bufio"
	"io"
	"iter"
	"strings"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// ProcessStream returns a lazy sequence over the transformed lines of r.
// Each line is read in source order, stripped of its trailing "\n" or
// "\r\n" and passed through ProcessLine. A read error is yielded once and
// ends the sequence. The sequence consumes r and cannot be restarted.
func ProcessStream(r io.Reader, c *Chain) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for line, err := range readLines(r) {
			if err != nil {
				yield("", err)
				return
			}
			if !yield(ProcessLine(line, c), nil) {
				return
			}
		}
	}
}

// readLines yields the lines of r without their line boundary.
func readLines(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		br := bufio.NewReader(r)
		for {
			line, err := readLine(br)
			if err == io.EOF {
				return
			}
			if err != nil {
				yield("", err)
				return
			}
			if !yield(line, nil) {
				return
			}
		}
	}
}

// readLine reads one line, including a final line without a trailing
// newline. It returns io.EOF only when no bytes remain.
func readLine(br *bufio.Reader) (string, error) {
	var sb strings.Builder
	for {
		chunk, err := br.ReadSlice('\n')
		sb.Write(chunk)
		if sb.Len() > maxLineSize {
			return "", ErrLineTooLong
		}
		switch {
		case err == bufio.ErrBufferFull:
			continue
		case err == io.EOF:
			if sb.Len() == 0 {
				return "", io.EOF
			}
			return trimBoundary(sb.String()), nil
		case err != nil:
			return "", err
		}
		return trimBoundary(sb.String()), nil
	}
}

func trimBoundary(line string) string {
	if !strings.HasSuffix(line, "\n") {
		return line
	}
	return strings.TrimSuffix(line[:len(line)-1], "\r")
}
