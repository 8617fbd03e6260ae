// Package dataset reads and writes labelled training samples.
//
// Three encodings are supported:
//
//   - text: repeated whitespace-separated records "label v0 v1 ... v{n-1}"
//     (ReadText, WriteText);
//   - CSV: one record per line, label first (ReadCSV);
//   - MNIST IDX image/label file pairs, plain or gzip-compressed
//     (ReadIDX, LoadIDX); pixels are scaled to [0,1].
//
// Shuffle and Split prepare train/test partitions deterministically from a
// caller-supplied *rand.Rand.
package dataset
