package csv

import (
	"bytes"
	"encoding/csv"
	"sync"

	"github.com/oarkflow/pkg/str"
)

// WriteWorker drains queued rows into results
func WriteWorker(data <-chan map[string]any, wg *sync.WaitGroup, results chan<- map[string]any) {
	defer wg.Done()
	for j := range data {
		results <- j
	}
}

// ProcessWrite renders rows to an in-memory csv with the given column
// order. Row order survives only with a single worker.
func ProcessWrite(columns []string, rows []map[string]any, noOfWorkers ...int) *bytes.Buffer {
	workers := 2
	if len(noOfWorkers) > 0 {
		workers = noOfWorkers[0]
	}
	byteBuffer := &bytes.Buffer{}
	writer := csv.NewWriter(byteBuffer)

	jobs := make(chan map[string]any)
	results := make(chan map[string]any)

	wg := new(sync.WaitGroup)
	for w := 1; w <= workers; w++ {
		wg.Add(1)
		go WriteWorker(jobs, wg, results)
	}

	go func() {
		for _, val := range rows {
			jobs <- val
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	writer.Write(columns)
	for v := range results {
		record := make([]string, len(columns))
		for i, col := range columns {
			record[i] = str.ToString(v[col])
		}
		writer.Write(record)
	}
	writer.Flush()
	return byteBuffer
}
