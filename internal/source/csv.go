// Package source locates dataset CSV files on disk or over HTTP and reads
// them into raw rows.
package source

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sfomuseum/go-csvdict"

	"github.com/couchcryptid/aquaculture-sites-service/internal/domain"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadRows parses CSV text whose first line is the header. Rows whose cells
// are all blank are skipped. Structural errors wrap domain.ErrParseFailure.
func ReadRows(r io.Reader) ([]domain.RawRow, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	cr, err := csvdict.NewReader(br)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: missing header row", domain.ErrParseFailure)
		}
		return nil, fmt.Errorf("%w: read header: %v", domain.ErrParseFailure, err)
	}

	var rows []domain.RawRow
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", domain.ErrParseFailure, line, err)
		}
		if blankRecord(rec) {
			continue
		}
		rows = append(rows, domain.RawRow(rec))
	}
	return rows, nil
}

func blankRecord(rec map[string]string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
