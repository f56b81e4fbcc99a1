package console

import (
	"bufio"
	"context"
	"io"
)

type line struct {
	text string
	err  error
}

// readLines feeds lines from r into the returned channel until r is exhausted
// or ctx is done. A read error is sent as the last value before the channel closes.
func readLines(ctx context.Context, r io.Reader) <-chan line {
	lines := make(chan line)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- line{text: scanner.Text()}:
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			select {
			case lines <- line{err: err}:
			case <-ctx.Done():
			}
		}
	}()

	return lines
}
