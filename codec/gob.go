// SPDX-License-Identifier: MIT

package codec

import (
	"encoding/gob"
	"fmt"
	"io"
)

// Save encodes rec to w using encoding/gob.
func Save(w io.Writer, rec Record) error {
	if err := gob.NewEncoder(w).Encode(rec); err != nil {
		return fmt.Errorf("codec: encode record: %w", err)
	}
	return nil
}

// Load decodes a Record previously written by Save.
func Load(r io.Reader) (Record, error) {
	var rec Record
	if err := gob.NewDecoder(r).Decode(&rec); err != nil {
		return Record{}, fmt.Errorf("codec: decode record: %w", err)
	}
	// gob omits empty slices, so an empty column decodes with a nil
	// Boundary; restore the empty slice FromDecomposition produces.
	for i := range rec.R {
		if rec.R[i].Boundary == nil {
			rec.R[i].Boundary = []int{}
		}
	}
	for i := range rec.V {
		if rec.V[i].Boundary == nil {
			rec.V[i].Boundary = []int{}
		}
	}
	return rec, nil
}
