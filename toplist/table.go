package toplist

import (
	"bufio"
	"io"
	"strings"
)

// Table maps exact password strings to their rank in a top-passwords list.
// Rank 1 is the most common entry. A Table is built once and never mutated,
// so concurrent lookups need no locking.
type Table struct {
	ranks map[string]int
}

// ParseLines builds a table from a list, one password per line. The rank is
// the 1-based line number in the original file; only the first whitespace
// token of each line counts, blank lines are skipped, and on duplicates the
// earliest occurrence keeps its rank.
func ParseLines(r io.Reader) (*Table, error) {
	ranks := map[string]int{}

	lineNumber := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNumber++

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		password := fields[0]
		if _, seen := ranks[password]; seen {
			continue
		}

		ranks[password] = lineNumber
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return &Table{ranks: ranks}, nil
}

// Lookup returns the rank for an exact password match.
func (t *Table) Lookup(password string) (int, bool) {
	rank, ok := t.ranks[password]
	return rank, ok
}

// Len returns the number of distinct passwords in the table.
func (t *Table) Len() int {
	return len(t.ranks)
}
