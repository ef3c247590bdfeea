// Package report appends benchmark timings to the analysis file.
package report

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Append writes one line: the working-set size followed by each duration in
// nanoseconds, comma separated. The file is created if it does not exist.
func Append(path string, lines int, durations []time.Duration) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open report: %w", err)
	}

	if _, err := f.WriteString(Line(lines, durations)); err != nil {
		f.Close()
		return fmt.Errorf("failed to write report: %w", err)
	}
	return f.Close()
}

// Line formats a report line including the trailing newline.
func Line(lines int, durations []time.Duration) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(lines))
	for _, d := range durations {
		b.WriteByte(',')
		b.WriteString(strconv.FormatInt(d.Nanoseconds(), 10))
	}
	b.WriteByte('\n')
	return b.String()
}
