/*
 * zstd.go, part of chemfiles.
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
	"io"

	"github.com/klauspost/compress/zstd"
)

//Why couldn't *zstd.Decoder implement io.ReadCloser? :-(
type zstdReadCloser struct {
	*zstd.Decoder
}

//Close Closes the object. It can not be used after this call
func (Z zstdReadCloser) Close() error {
	Z.Decoder.Close()
	return nil
}

//zstd frames can be concatenated, so appending is fine.
var zstdCodec = &codec{
	comp:        Zstd,
	name:        "zstd",
	container:   "zstd",
	magic:       []byte{0x28, 0xb5, 0x2f, 0xfd},
	appendable:  true,
	formatCode:  10, //ZSTD_error_prefix_unknown
	corruptCode: 20, //ZSTD_error_corruption_detected
	newReader: func(r io.Reader) (io.ReadCloser, error) {
		d, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, err
		}
		return zstdReadCloser{d}, nil
	},
	newWriter: func(w io.Writer, level int) (io.WriteCloser, error) {
		//without zero frames, an empty file would have no frame at all
		opts := []zstd.EOption{zstd.WithZeroFrames(true)}
		if level != 0 {
			opts = append(opts, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)))
		}
		return zstd.NewWriter(w, opts...)
	},
}
