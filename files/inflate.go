/*
 * inflate.go, part of chemfiles.
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
	"bytes"
	"io"
)

// Inflate decompresses data, a complete compressed stream held in memory. Data that does not
// start with the magic number of comp gives an error matching ErrFormat, data that starts right
// but does not decode gives an error matching ErrCorrupted. With Auto, the compression is
// detected from the magic number, and Default returns a copy of data.
func Inflate(comp Compression, data []byte) ([]byte, error) {
	if comp == Auto {
		comp = Detect(data)
	}
	if comp == Default {
		return append([]byte(nil), data...), nil
	}
	c, ok := codecs[comp]
	if !ok {
		return nil, newError(ErrMode, "", "Inflate", "unknown compression %s", comp)
	}
	if !bytes.HasPrefix(data, c.magic) {
		return nil, errDecorate(c.formatError(""), "Inflate")
	}
	dec, err := c.newReader(bytes.NewReader(data))
	if err != nil {
		return nil, errDecorate(c.corruptError("", err), "Inflate")
	}
	defer dec.Close()
	out, err := io.ReadAll(dec)
	if err != nil {
		return nil, errDecorate(c.corruptError("", err), "Inflate")
	}
	return out, nil
}
