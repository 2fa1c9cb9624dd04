package csv

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/oarkflow/errors"
	"github.com/oarkflow/gologger"
	"github.com/oarkflow/pkg/str"
)

// ReadFile opens a daily sheet and converts every record to a map
// keyed by the cleaned header
func ReadFile(fileName string, comma rune) ([]map[string]any, error) {
	file, err := os.OpenFile(fileName, os.O_RDONLY, os.ModePerm)
	if err != nil {
		return nil, errors.New(fmt.Sprintf("File: %s not found or unable to open file", fileName))
	}
	defer file.Close()

	return ToMap(file, comma), nil
}

// GetHeader reads the first line and maps column positions to names
func GetHeader(scanner *bufio.Scanner, comma rune) map[int]string {
	scanner.Scan()
	r := csv.NewReader(strings.NewReader(scanner.Text()))
	r.Comma = comma
	r.TrimLeadingSpace = true
	colHeader, _ := r.Read()
	colPosition := make(map[int]string)
	for key, col := range colHeader {
		colPosition[key] = col
	}
	return colPosition
}

// ToMap converts csv records to maps keyed by header with a small
// worker pool
func ToMap(reader io.Reader, comma rune) []map[string]any {
	scanner := bufio.NewScanner(reader)
	colPosition := GetHeader(scanner, comma)
	for k, v := range colPosition {
		colPosition[k] = clean([]byte(v))
	}
	jobs := make(chan []byte)
	results := make(chan map[string]any)

	wg := new(sync.WaitGroup)
	for w := 1; w <= 2; w++ {
		wg.Add(1)
		go ProcessRecord(jobs, results, wg, colPosition, comma)
	}
	go func() {
		for scanner.Scan() {
			// the scanner reuses its buffer between lines
			line := make([]byte, len(scanner.Bytes()))
			copy(line, scanner.Bytes())
			jobs <- line
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var data []map[string]any
	for v := range results {
		data = append(data, v)
	}

	return data
}

func clean(s []byte) string {
	j := 0
	for _, b := range s {
		if ('a' <= b && b <= 'z') ||
			('A' <= b && b <= 'Z') ||
			('0' <= b && b <= '9') ||
			b == ' ' || b == '_' {
			s[j] = b
			j++
		}
	}
	return strings.TrimSpace(string(s[:j]))
}

// ProcessRecord parses queued lines into maps keyed by column name
func ProcessRecord(jobs <-chan []byte, results chan<- map[string]any, wg *sync.WaitGroup, col map[int]string, comma rune) {
	defer wg.Done()
	for j := range jobs {
		data := make(map[string]any)
		r := csv.NewReader(bytes.NewReader(j))
		r.Comma = comma
		r.TrimLeadingSpace = true
		fields, _ := r.Read()
		for key, dt := range fields {
			data[col[key]] = strings.TrimSpace(dt)
		}
		results <- data
	}
}

// ExportFile writes rows to a csv file in the given column order
func ExportFile(fileName string, columns []string, rows []map[string]any) error {
	writer, err := gologger.New(fileName, 3000)
	if err != nil {
		return errors.NewE(err, "unable to open export file", "")
	}

	writer.WriteString(strings.Join(columns, ","))
	for _, row := range rows {
		var tmp []string
		for _, col := range columns {
			tmp = append(tmp, str.ToString(row[col]))
		}
		writer.WriteString(strings.Join(tmp, ","))
	}
	return nil
}
