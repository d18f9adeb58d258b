/*
 * xz.go, part of chemfiles.
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
	"io"

	"github.com/ulikunitz/xz"
)

//An xz stream ends with an index and a footer written on close, so
//data appended after it would not be part of the stream.
var xzCodec = &codec{
	comp:        LZMA,
	name:        "lzma",
	container:   ".xz",
	magic:       []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00},
	appendable:  false,
	formatCode:  7, //LZMA_FORMAT_ERROR
	corruptCode: 9, //LZMA_DATA_ERROR
	newReader: func(r io.Reader) (io.ReadCloser, error) {
		xr, err := xz.NewReader(r)
		if err != nil {
			return nil, err
		}
		return io.NopCloser(xr), nil
	},
	newWriter: func(w io.Writer, level int) (io.WriteCloser, error) {
		return xz.NewWriter(w)
	},
}

// XzInflate decompresses a complete xz stream held in memory.
func XzInflate(data []byte) ([]byte, error) {
	return Inflate(LZMA, data)
}
