/*
 * open.go, part of chemfiles.
 *
 * Copyright 2012 Raul Mera <rauldotmeraatusachdotcl>
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
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
)

// Open opens the file at path in the given mode, with the default configuration.
// With Auto, the compression is guessed from the file extension (see FromExtension).
func Open(path string, mode Mode, comp Compression) (*TextFile, error) {
	return OpenConfig(path, mode, comp, nil)
}

// OpenConfig is like Open, with a configuration. A nil cfg means DefaultConfig().
//
// It fails if the file can not be opened or created, and if the compression does not allow
// the mode: xz and bzip2 files can not be opened in Append mode. In that case the file is not
// touched.
func OpenConfig(path string, mode Mode, comp Compression, cfg *Config) (*TextFile, error) {
	conf := DefaultConfig()
	if cfg != nil {
		conf = cfg.normalized()
	}
	if !mode.valid() {
		return nil, newError(ErrMode, path, "Open", "invalid mode %s for the file at '%s'", mode, path)
	}
	if comp == Auto {
		comp = FromExtension(path)
	}
	if comp != Default {
		c, ok := codecs[comp]
		if !ok {
			return nil, newError(ErrMode, path, "Open", "unknown compression %s for the file at '%s'", comp, path)
		}
		if mode == Append && !c.appendable {
			err := newError(ErrMode, path, "Open", "appending (open mode '%s') is not supported with %s files", mode.letter(), comp)
			err.backend = comp
			return nil, err
		}
	}
	f, err := os.OpenFile(path, mode.flags(), 0o644)
	if err != nil {
		var pe *fs.PathError
		if errors.As(err, &pe) {
			err = pe.Err
		}
		return nil, &Error{message: fmt.Sprintf("could not open the file at '%s'", path), filename: path, deco: []string{"Open"}, critical: true, kind: ErrOpen, backend: comp, cause: err}
	}
	b, err := newBackend(f, path, mode, comp, conf)
	if err != nil {
		f.Close()
		return nil, errDecorate(err, "Open")
	}
	t := &TextFile{path: path, mode: mode, comp: comp, cfg: conf, backend: b, lines: []uint64{0}}
	if mode != Read {
		t.w = bufio.NewWriterSize(b, conf.BufferSize)
	}
	runtime.SetFinalizer(t, finalizeTextFile)
	return t, nil
}
