/*
 * helpers_test.go, part of chemfiles.
 *
 * Copyright 2024 Raul Mera <rauldotmeraatusachdotcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var allCompressions = []Compression{Default, Gzip, Bzip2, LZMA, Zstd}

var extensions = map[Compression]string{
	Default: ".xyz",
	Gzip:    ".xyz.gz",
	Bzip2:   ".xyz.bz2",
	LZMA:    ".xyz.xz",
	Zstd:    ".xyz.zst",
}

//configs are used to run the same test with the default buffers, and with
//buffers small enough to force dropping text and decoding again on seeks.
var configs = map[string]*Config{
	"default": nil,
	"tiny":    {BufferSize: 7, Window: 5},
}

//sampleText looks like an XYZ trajectory.
func sampleText(frames int) string {
	var b strings.Builder
	for f := 0; f < frames; f++ {
		fmt.Fprintf(&b, "%d\n generated by chemfiles tests, frame %d\n", 3, f)
		for i := 0; i < 3; i++ {
			fmt.Fprintf(&b, "  O  %14.6f  %14.6f  %14.6f\n", float64(f)+0.1*float64(i), 1.5*float64(i), -float64(f*i))
		}
	}
	return b.String()
}

//linesAndOffsets splits text the way ReadLine does, and gives the offset of each line.
func linesAndOffsets(text string) ([]string, []uint64) {
	var lines []string
	var offsets []uint64
	var off uint64
	for len(text) > 0 {
		offsets = append(offsets, off)
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			lines = append(lines, text)
			break
		}
		lines = append(lines, text[:i])
		off += uint64(i + 1)
		text = text[i+1:]
	}
	return lines, offsets
}

func writeFile(t *testing.T, comp Compression, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test"+extensions[comp])
	f, err := Open(path, Write, comp)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Print(text); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func openRead(t *testing.T, path string, comp Compression, cfg *Config) *TextFile {
	t.Helper()
	f, err := OpenConfig(path, Read, comp, cfg)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

//readAll reads f to the end, returning the lines and the position before each of them.
func readAll(t *testing.T, f *TextFile) ([]string, []uint64) {
	t.Helper()
	var lines []string
	var positions []uint64
	for {
		p, err := f.TellPos()
		if err != nil {
			t.Fatal(err)
		}
		l, err := f.ReadLine()
		if err != nil {
			t.Fatal(err)
		}
		if f.Eof() && l == "" {
			break
		}
		lines = append(lines, l)
		positions = append(positions, p)
		if f.Eof() {
			break
		}
	}
	return lines, positions
}

func readBytes(t *testing.T, path string) []byte {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return b
}
