// Package catcher holds the player record loaded from the ranking CSV and
// used as the element type in benchmark runs.
package catcher

import (
	"bufio"
	"cmp"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ErrMalformedRow is returned for rows that do not have the expected columns.
var ErrMalformedRow = errors.New("malformed row")

const minFields = 4

// Record is one player row: username,user_id,skill,title
type Record struct {
	Username string
	UserID   int
	Skill    int
	Title    string
}

// Hash mixes the username and user id with xxhash.
func (r Record) Hash() int {
	var id [8]byte
	binary.BigEndian.PutUint64(id[:], uint64(r.UserID))

	d := xxhash.New()
	_, _ = d.WriteString(r.Username)
	_, _ = d.Write(id[:])
	return int(d.Sum64())
}

// Equal compares every field.
func (r Record) Equal(other Record) bool {
	return r == other
}

func (r Record) String() string {
	return fmt.Sprintf("Username: %s, User ID: %d, Skill: %d, Title: %s",
		r.Username, r.UserID, r.Skill, r.Title)
}

// Compare orders by skill ascending, then by username descending.
func Compare(a, b Record) int {
	if c := cmp.Compare(a.Skill, b.Skill); c != 0 {
		return c
	}
	return cmp.Compare(b.Username, a.Username)
}

// Parse parses a single data row. Everything after the third comma is the
// title, kept exactly as written.
func Parse(line string) (Record, error) {
	fields := strings.SplitN(strings.TrimRight(line, "\r\n"), ",", minFields)
	if len(fields) < minFields {
		return Record{}, fmt.Errorf("%w: want %d fields, got %d", ErrMalformedRow, minFields, len(fields))
	}

	id, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return Record{}, fmt.Errorf("%w: user id %q", ErrMalformedRow, fields[1])
	}
	skill, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		return Record{}, fmt.Errorf("%w: skill %q", ErrMalformedRow, fields[2])
	}

	return Record{
		Username: fields[0],
		UserID:   id,
		Skill:    skill,
		Title:    fields[3],
	}, nil
}

// Load reads up to n records after the header row. n <= 0 reads every row.
// Blank lines are skipped.
func Load(r io.Reader, n int) ([]Record, error) {
	sc := bufio.NewScanner(r)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("failed to read header: %w", err)
		}
		return nil, nil
	}

	var records []Record
	for line := 1; (n <= 0 || len(records) < n) && sc.Scan(); {
		line++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		rec, err := Parse(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row %d: %w", len(records)+1, err)
	}

	return records, nil
}

// Find scans a data source for the row with the given user id.
func Find(r io.Reader, userID int) (Record, bool, error) {
	records, err := Load(r, 0)
	if err != nil {
		return Record{}, false, err
	}
	for _, rec := range records {
		if rec.UserID == userID {
			return rec, true, nil
		}
	}
	return Record{}, false, nil
}
