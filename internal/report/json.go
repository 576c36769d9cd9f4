// Copyright 2026 Oliver Steele
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
)

// NDJSONWriter writes report rows as NDJSON (one JSON object per line).
// Each record is encoded and flushed immediately.
type NDJSONWriter struct {
	mu      sync.Mutex
	encoder *json.Encoder
	count   int
}

// NewNDJSONWriter creates a new NDJSON writer that writes to the specified output.
func NewNDJSONWriter(w io.Writer) *NDJSONWriter {
	return &NDJSONWriter{
		encoder: json.NewEncoder(w),
	}
}

// Write writes a single record as one NDJSON line.
func (w *NDJSONWriter) Write(record interface{}) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.encoder.Encode(record); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}

	w.count++
	return nil
}

// Count returns the number of records written.
func (w *NDJSONWriter) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.count
}

// WriteRows writes the sorted row list as NDJSON. This is the --json output
// mode; the table's summary notes are not emitted here.
func WriteRows(w io.Writer, rows []Row) error {
	writer := NewNDJSONWriter(w)
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	return nil
}
