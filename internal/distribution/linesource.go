package distribution

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/airnav-tools/nasr/pkg/nasr"
)

// lineSource pulls lines one at a time from a reader. Line terminators are
// consumed and stripped: both LF and CRLF endings yield the bare line. The
// byte counter includes the terminators, so progress against the file size
// stays accurate.
type lineSource struct {
	r     *bufio.Reader
	bytes int64
	done  bool
}

var _ nasr.LineSource = (*lineSource)(nil)

// NewLineSource wraps r as a line source. The caller retains ownership of r
// and closes it after the final io.EOF.
func NewLineSource(r io.Reader) nasr.LineSource {
	return &lineSource{r: bufio.NewReader(r)}
}

func (s *lineSource) Next(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.done {
		return "", io.EOF
	}

	line, err := s.r.ReadString('\n')
	s.bytes += int64(len(line))
	if err == io.EOF {
		s.done = true
		if line == "" {
			return "", io.EOF
		}
		// Final line without a terminator.
		return strings.TrimSuffix(line, "\r"), nil
	}
	if err != nil {
		return "", err
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

func (s *lineSource) BytesRead() int64 { return s.bytes }
