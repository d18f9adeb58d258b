/*
 * bzip2.go, part of chemfiles.
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

	"github.com/dsnet/compress/bzip2"
)

var bzip2Codec = &codec{
	comp:        Bzip2,
	name:        "bzip2",
	container:   "bzip2",
	magic:       []byte("BZh"),
	appendable:  false,
	formatCode:  -5, //BZ_DATA_ERROR_MAGIC
	corruptCode: -4, //BZ_DATA_ERROR
	newReader: func(r io.Reader) (io.ReadCloser, error) {
		return bzip2.NewReader(r, nil)
	},
	newWriter: func(w io.Writer, level int) (io.WriteCloser, error) {
		if level == 0 {
			return bzip2.NewWriter(w, nil)
		}
		return bzip2.NewWriter(w, &bzip2.WriterConfig{Level: level})
	},
}
