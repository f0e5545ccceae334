package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// CSVOptions controls how a CSV inventory file is read. Legacy inventory
// exports are frequently windows-1251 encoded and semicolon separated, so
// both are configurable.
type CSVOptions struct {
	Encoding  string // "utf-8" (default) or "windows-1251"
	Delimiter string // single character, default ","
}

// LoadBatchCSV reads a CSV file into a batch of documents. The first row is
// the header; each subsequent row becomes one document with header names as
// keys and cell contents as string values. Empty cells are omitted so that
// optional schema fields stay absent rather than blank.
func LoadBatchCSV(path string, opts CSVOptions) ([]Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv file: %w", err)
	}
	defer file.Close()

	var reader io.Reader = file
	switch opts.Encoding {
	case "", "utf-8":
	case "windows-1251":
		reader = charmap.Windows1251.NewDecoder().Reader(file)
	default:
		return nil, fmt.Errorf("unsupported csv encoding: %s", opts.Encoding)
	}

	csvReader := csv.NewReader(reader)
	if opts.Delimiter != "" {
		csvReader.Comma = rune(opts.Delimiter[0])
	}
	csvReader.LazyQuotes = true
	csvReader.TrimLeadingSpace = true

	header, err := csvReader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csv file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var batch []Document
	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", len(batch)+2, err)
		}

		doc := make(Document, len(header))
		for i, name := range header {
			if i >= len(record) || record[i] == "" {
				continue
			}
			doc[name] = record[i]
		}
		batch = append(batch, doc)
	}

	return batch, nil
}
