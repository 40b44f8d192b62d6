package wordlist

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadFile reads a word list from disk. The format is chosen by extension:
//   - .xlsx: first column of the first sheet
//   - .csv:  first column of every record
//   - anything else: plain text, lines starting with '#' are comments
//
// Every cell or line is split with Parse, so "cat, dog" in a single cell
// yields two words.
func ReadFile(filename string) ([]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return readExcel(filename)
	case ".csv":
		return readCSV(filename)
	default:
		return readText(filename)
	}
}

func readText(filename string) ([]string, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read word file: %w", err)
	}

	var words []string
	for _, line := range strings.Split(string(content), "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		words = append(words, Parse(line)...)
	}
	return words, nil
}

func readCSV(filename string) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open word file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	var words []string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse CSV word file: %w", err)
		}
		if len(record) == 0 {
			continue
		}
		words = append(words, Parse(record[0])...)
	}
	return words, nil
}

func readExcel(filename string) ([]string, error) {
	f, err := excelize.OpenFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel word file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	var words []string
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		words = append(words, Parse(row[0])...)
	}
	return words, nil
}
