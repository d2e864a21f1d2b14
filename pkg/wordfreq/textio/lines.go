package textio

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// EachLine calls fn with every line of r, without its "\n" or "\r\n"
// terminator, until fn returns false or r is exhausted. Lines have no
// length limit. A final line without a terminator is still delivered.
func EachLine(r io.Reader, fn func(line string) bool) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if !fn(line) {
				return nil
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
