// Copyright 2025 Sonic Labs
// This file is part of Leakage, a path explorer for quantitative information flow
//
// Leakage is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Leakage is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Leakage. If not, see <http://www.gnu.org/licenses/>.

package utils

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/gzip"
)

// gzipSuffix marks files that are read and written gzip-compressed.
const gzipSuffix = ".gz"

// IsCompressed reports whether the file name denotes a gzip-compressed file.
func IsCompressed(filename string) bool {
	return strings.HasSuffix(filename, gzipSuffix)
}

// TrimCompression removes the gzip suffix from a file name.
func TrimCompression(filename string) string {
	return strings.TrimSuffix(filename, gzipSuffix)
}

type fileReader struct {
	io.Reader
	closers []io.Closer
}

func (r *fileReader) Close() error {
	var err error
	for _, c := range r.closers {
		err = errors.Join(err, c.Close())
	}
	return err
}

// OpenFile opens a file for reading. Files ending in .gz are decompressed
// transparently.
func OpenFile(filename string) (io.ReadCloser, error) {
	stat, err := os.Stat(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "could not stat file %s", filename)
	}
	if stat.IsDir() {
		return nil, errors.Newf("given path %s is a directory", filename)
	}
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open file %s", filename)
	}
	if !IsCompressed(filename) {
		return &fileReader{Reader: bufio.NewReader(file), closers: []io.Closer{file}}, nil
	}
	gzipReader, err := gzip.NewReader(file)
	if err != nil {
		return nil, errors.Join(errors.Wrapf(err, "could not create gzip reader for file %s", filename), file.Close())
	}
	return &fileReader{Reader: bufio.NewReader(gzipReader), closers: []io.Closer{gzipReader, file}}, nil
}

type fileWriter struct {
	buffer  *bufio.Writer
	closers []io.Closer
}

func (w *fileWriter) Write(p []byte) (int, error) {
	return w.buffer.Write(p)
}

func (w *fileWriter) Close() error {
	err := w.buffer.Flush()
	for _, c := range w.closers {
		err = errors.Join(err, c.Close())
	}
	return err
}

// CreateFile creates or truncates a file for writing. Files ending in .gz
// are compressed.
func CreateFile(filename string) (io.WriteCloser, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "could not create file %s", filename)
	}
	if !IsCompressed(filename) {
		return &fileWriter{buffer: bufio.NewWriter(file), closers: []io.Closer{file}}, nil
	}
	gzipWriter := gzip.NewWriter(file)
	return &fileWriter{buffer: bufio.NewWriter(gzipWriter), closers: []io.Closer{gzipWriter, file}}, nil
}
