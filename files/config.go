/*
 * config.go, part of chemfiles.
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

const (
	defaultBufferSize = 64 * 1024
	defaultWindow     = 1 << 20
)

// Config controls how a file is opened. The zero value of each field means its default.
type Config struct {
	//Level is the compression level used when writing. Its meaning depends on the
	//compression (1-9 for gzip and bzip2, 1-22 for zstd), and it is ignored for xz.
	Level int
	//BufferSize is the size of the chunks read from the decoder, and of the write buffer.
	BufferSize int
	//Window is the number of already read bytes kept in memory, so seeking backward
	//to them does not need to decode the file again.
	Window int
	//WarnOnReplay emits a warning each time a seek has to decode a compressed
	//file again from its beginning.
	WarnOnReplay bool
}

// DefaultConfig returns the configuration used by Open.
func DefaultConfig() Config {
	return Config{BufferSize: defaultBufferSize, Window: defaultWindow}
}

func (C Config) normalized() Config {
	if C.BufferSize <= 0 {
		C.BufferSize = defaultBufferSize
	}
	if C.Window <= 0 {
		C.Window = defaultWindow
	}
	return C
}
