/*
 * plain.go, part of chemfiles.
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
	"os"
)

//plainBackend reads and writes the file as is. Unlike the compressed
//backends, it can seek anywhere.
type plainBackend struct {
	f      *os.File
	path   string
	closed bool
}

func (B *plainBackend) Read(p []byte) (int, error) {
	n, err := B.f.Read(p)
	if err != nil && err != io.EOF {
		return n, ioError(B.path, Default, "Read", err)
	}
	return n, err
}

func (B *plainBackend) Write(p []byte) (int, error) {
	n, err := B.f.Write(p)
	if err != nil {
		return n, ioError(B.path, Default, "Write", err)
	}
	return n, nil
}

func (B *plainBackend) Seek(offset int64, whence int) (int64, error) {
	n, err := B.f.Seek(offset, whence)
	if err != nil {
		return n, ioError(B.path, Default, "Seek", err)
	}
	return n, nil
}

func (B *plainBackend) Close() error {
	if B.closed {
		return nil
	}
	B.closed = true
	if err := B.f.Close(); err != nil {
		return ioError(B.path, Default, "Close", err)
	}
	return nil
}
