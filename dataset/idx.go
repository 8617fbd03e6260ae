// SPDX-License-Identifier: MIT
// Package: dataset
//
// idx.go: MNIST IDX files: a big-endian header (magic, counts, dimensions)
// followed by raw unsigned bytes.

package dataset

import (
	"bufio"
	"compress/gzip"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// IDX magic numbers for unsigned-byte images (3 dims) and labels (1 dim).
const (
	MagicImages int32 = 2051
	MagicLabels int32 = 2049
)

// maxIDXItems bounds the header counts accepted before allocation.
const maxIDXItems = 1 << 26

// ReadIDX decodes an image stream and a label stream into samples with
// pixels scaled to [0,1]. Streams may be gzip-compressed.
//
// Errors:
//   - ErrMagic, ErrCountMismatch, ErrFormat (bad header or short data).
func ReadIDX(images, labels io.Reader) ([]Sample, error) {
	imgs, rows, cols, err := readImages(images)
	if err != nil {
		return nil, err
	}
	lbls, err := readLabels(labels)
	if err != nil {
		return nil, err
	}
	if len(imgs) != len(lbls) {
		return nil, fmt.Errorf("ReadIDX: %d images, %d labels: %w", len(imgs), len(lbls), ErrCountMismatch)
	}

	out := make([]Sample, len(imgs))
	for i, img := range imgs {
		in := make([]float64, rows*cols)
		for j, px := range img {
			in[j] = float64(px) / 255
		}
		out[i] = Sample{Label: int(lbls[i]), Input: in}
	}

	return out, nil
}

// LoadIDX opens an image file and a label file and calls ReadIDX.
func LoadIDX(imagesPath, labelsPath string) ([]Sample, error) {
	fi, err := os.Open(imagesPath)
	if err != nil {
		return nil, fmt.Errorf("LoadIDX: %w", err)
	}
	defer fi.Close()
	fl, err := os.Open(labelsPath)
	if err != nil {
		return nil, fmt.Errorf("LoadIDX: %w", err)
	}
	defer fl.Close()

	return ReadIDX(fi, fl)
}

// maybeGzip returns a reader that transparently inflates gzip input.
func maybeGzip(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(2)
	if err == nil && head[0] == 0x1f && head[1] == 0x8b {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFormat, err)
		}
		return zr, nil
	}

	return br, nil
}

// readHeader reads the magic number and n big-endian int32 dimensions.
func readHeader(r io.Reader, want int32, n int) ([]int, error) {
	var magic int32
	if err := binary.Read(r, binary.BigEndian, &magic); err != nil {
		return nil, fmt.Errorf("magic: %w: %w", ErrFormat, err)
	}
	if magic != want {
		return nil, fmt.Errorf("magic %d, want %d: %w", magic, want, ErrMagic)
	}
	dims := make([]int, n)
	for i := range dims {
		var d int32
		if err := binary.Read(r, binary.BigEndian, &d); err != nil {
			return nil, fmt.Errorf("dimension %d: %w: %w", i, ErrFormat, err)
		}
		if d < 0 || d > maxIDXItems {
			return nil, fmt.Errorf("dimension %d = %d: %w", i, d, ErrFormat)
		}
		dims[i] = int(d)
	}

	return dims, nil
}

func readImages(r io.Reader) (imgs [][]byte, rows, cols int, err error) {
	if r, err = maybeGzip(r); err != nil {
		return nil, 0, 0, fmt.Errorf("images: %w", err)
	}
	dims, err := readHeader(r, MagicImages, 3)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("images: %w", err)
	}
	count, rows, cols := dims[0], dims[1], dims[2]
	if rows*cols == 0 || count > maxIDXItems*16/(rows*cols) {
		return nil, 0, 0, fmt.Errorf("images: %dx%dx%d: %w", count, rows, cols, ErrFormat)
	}

	imgs = make([][]byte, count)
	for i := range imgs {
		imgs[i] = make([]byte, rows*cols)
		if _, err = io.ReadFull(r, imgs[i]); err != nil {
			return nil, 0, 0, fmt.Errorf("images: image %d: %w: %w", i, ErrFormat, err)
		}
	}

	return imgs, rows, cols, nil
}

func readLabels(r io.Reader) ([]byte, error) {
	r, err := maybeGzip(r)
	if err != nil {
		return nil, fmt.Errorf("labels: %w", err)
	}
	dims, err := readHeader(r, MagicLabels, 1)
	if err != nil {
		return nil, fmt.Errorf("labels: %w", err)
	}
	lbls := make([]byte, dims[0])
	if _, err = io.ReadFull(r, lbls); err != nil {
		return nil, fmt.Errorf("labels: %w: %w", ErrFormat, err)
	}

	return lbls, nil
}

// WriteIDX encodes samples as an uncompressed IDX image/label pair.
// Inputs are clamped to [0,1] and quantised to bytes; every input must have
// rows*cols values and every label must fit in a byte.
func WriteIDX(images, labels io.Writer, samples []Sample, rows, cols int) error {
	for i, s := range samples {
		if len(s.Input) != rows*cols {
			return fmt.Errorf("WriteIDX: sample %d has %d values, want %d: %w", i, len(s.Input), rows*cols, ErrInputSize)
		}
		if s.Label < 0 || s.Label > 255 {
			return fmt.Errorf("WriteIDX: sample %d label %d: %w", i, s.Label, ErrFormat)
		}
	}
	bi, bl := bufio.NewWriter(images), bufio.NewWriter(labels)
	binary.Write(bi, binary.BigEndian, []int32{MagicImages, int32(len(samples)), int32(rows), int32(cols)})
	binary.Write(bl, binary.BigEndian, []int32{MagicLabels, int32(len(samples))})
	for _, s := range samples {
		for _, v := range s.Input {
			v = min(max(v, 0), 1)
			bi.WriteByte(byte(v*255 + 0.5))
		}
		bl.WriteByte(byte(s.Label))
	}
	if err := bi.Flush(); err != nil {
		return fmt.Errorf("WriteIDX: %w", err)
	}
	if err := bl.Flush(); err != nil {
		return fmt.Errorf("WriteIDX: %w", err)
	}

	return nil
}
