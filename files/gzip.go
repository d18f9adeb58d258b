/*
 * gzip.go, part of chemfiles.
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

	"github.com/klauspost/compress/gzip"
)

//gzip members can be concatenated, and readers decode all of them,
//so appending to a gzip file is fine.
var gzipCodec = &codec{
	comp:        Gzip,
	name:        "gzip",
	container:   "gzip",
	magic:       []byte{0x1f, 0x8b},
	appendable:  true,
	formatCode:  -3, //Z_DATA_ERROR
	corruptCode: -3,
	newReader: func(r io.Reader) (io.ReadCloser, error) {
		return gzip.NewReader(r)
	},
	newWriter: func(w io.Writer, level int) (io.WriteCloser, error) {
		if level == 0 {
			level = gzip.DefaultCompression
		}
		return gzip.NewWriterLevel(w, level)
	},
}
