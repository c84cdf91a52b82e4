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
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile_PlainRoundTrip(t *testing.T) {
	name := filepath.Join(t.TempDir(), "plain.txt")

	w, err := CreateFile(name)
	require.NoError(t, err)
	_, err = w.Write([]byte("0.5\n0.5\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	raw, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, "0.5\n0.5\n", string(raw))

	r, err := OpenFile(name)
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Equal(t, "0.5\n0.5\n", string(data))
}

func TestFile_CompressedRoundTrip(t *testing.T) {
	name := filepath.Join(t.TempDir(), "data.txt.gz")

	w, err := CreateFile(name)
	require.NoError(t, err)
	_, err = w.Write([]byte("compressed content"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	raw, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.NotEqual(t, "compressed content", string(raw))

	r, err := OpenFile(name)
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Equal(t, "compressed content", string(data))
}

func TestFile_OpenFileFailures(t *testing.T) {
	dir := t.TempDir()

	_, err := OpenFile(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)

	_, err = OpenFile(dir)
	assert.ErrorContains(t, err, "is a directory")

	broken := filepath.Join(dir, "broken.gz")
	require.NoError(t, os.WriteFile(broken, []byte("not gzip"), 0644))
	_, err = OpenFile(broken)
	assert.ErrorContains(t, err, "could not create gzip reader")
}

func TestFile_Compression(t *testing.T) {
	assert.True(t, IsCompressed("model.yaml.gz"))
	assert.False(t, IsCompressed("model.yaml"))
	assert.Equal(t, "model.yaml", TrimCompression("model.yaml.gz"))
}
