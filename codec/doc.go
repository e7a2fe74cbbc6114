// SPDX-License-Identifier: MIT

// Package codec saves and loads a decomposition's R and (optionally)
// V matrices as a self-describing binary record. The wire format is a
// two-field record of sorted-vector columns, encoded with encoding/gob.
package codec
