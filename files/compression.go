/*
 * compression.go, part of chemfiles.
 *
 * Copyright 2021 Raul Mera <rauldotmeraatusachdotcl>
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
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Compression is the compression of a file.
type Compression int

const (
	Default Compression = iota //no compression
	Gzip
	Bzip2
	LZMA //xz container
	Zstd
	Auto //guess the compression from the file extension
)

func (C Compression) String() string {
	switch C {
	case Default:
		return "none"
	case Gzip:
		return "gzip"
	case Bzip2:
		return "bzip2"
	case LZMA:
		return "xz"
	case Zstd:
		return "zstd"
	case Auto:
		return "auto"
	}
	return fmt.Sprintf("Compression(%d)", int(C))
}

// FromExtension guesses the compression of a file from its extension:
// .gz is gzip, .bz2 is bzip2, .xz and .lzma are xz, .zst is zstd.
// Any other extension means no compression.
func FromExtension(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return Gzip
	case ".bz2":
		return Bzip2
	case ".xz", ".lzma":
		return LZMA
	case ".zst":
		return Zstd
	}
	return Default
}

// Detect guesses the compression of data from its first bytes. Data that does not start
// with a known magic number is taken as uncompressed.
func Detect(data []byte) Compression {
	for _, c := range []Compression{Gzip, Bzip2, LZMA, Zstd} {
		if bytes.HasPrefix(data, codecs[c].magic) {
			return c
		}
	}
	return Default
}

//codec holds everything the file layer needs to know about a compressed container.
//The decoders and encoders are external libraries, codec only adapts them.
type codec struct {
	comp Compression
	//name is the prefix of the diagnostic messages.
	name string
	//container is the name of the container format, as in "input not in .xz format".
	container string
	magic     []byte
	//appendable is false for formats that can not take more data once finalized.
	appendable bool
	//formatCode and corruptCode are the diagnostic codes the reference C library
	//uses for "not this format" and "corrupted data".
	formatCode  int
	corruptCode int
	newReader   func(io.Reader) (io.ReadCloser, error)
	newWriter   func(w io.Writer, level int) (io.WriteCloser, error)
}

var codecs = map[Compression]*codec{
	Gzip:  gzipCodec,
	Bzip2: bzip2Codec,
	LZMA:  xzCodec,
	Zstd:  zstdCodec,
}

func (C *codec) formatError(path string) *Error {
	msg := fmt.Sprintf("%s: input not in %s format (code: %d)", C.name, C.container, C.formatCode)
	return &Error{message: withPath(msg, path), filename: path, critical: true, kind: ErrFormat, code: C.formatCode, backend: C.comp}
}

func (C *codec) corruptError(path string, cause error) *Error {
	msg := fmt.Sprintf("%s: compressed file is corrupted (code: %d)", C.name, C.corruptCode)
	return &Error{message: withPath(msg, path), filename: path, critical: true, kind: ErrCorrupted, code: C.corruptCode, backend: C.comp, cause: cause}
}

func withPath(msg, path string) string {
	if path == "" {
		return msg
	}
	return fmt.Sprintf("%s, in the file at '%s'", msg, path)
}
