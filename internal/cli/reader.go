package cli

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"

	"github.com/LeoFurone/personal-finance-furone/internal/common"
)

// lineReader reads input lines while respecting context cancellation, so a
// review suspended at a prompt can still be interrupted.
type lineReader struct {
	reader      *bufio.Reader
	readingLock sync.Mutex
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{
		reader: bufio.NewReader(r),
	}
}

// ReadLine reads one trimmed line. When ctx is canceled while blocked on
// input it returns common.ErrReviewCanceled; the pending read keeps running
// in the background until the underlying reader delivers.
func (r *lineReader) ReadLine(ctx context.Context) (string, error) {
	type result struct {
		err   error
		value string
	}
	resultCh := make(chan result, 1)

	go func() {
		r.readingLock.Lock()
		defer r.readingLock.Unlock()

		value, err := r.reader.ReadString('\n')
		resultCh <- result{value: value, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", common.ErrReviewCanceled
	case res := <-resultCh:
		if res.err != nil && res.value == "" {
			return "", res.err
		}
		return strings.TrimSpace(res.value), nil
	}
}
