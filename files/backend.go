/*
 * backend.go, part of chemfiles.
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
	"bufio"
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
)

// Backend is the byte stream under a TextFile: it reads decompressed bytes, or compresses
// and writes bytes, sequentially. Close finalizes the compressed stream in write mode and
// releases the file.
type Backend interface {
	io.Reader
	io.Writer
	io.Closer
}

//rewinder is implemented by the backends that can only restart from the beginning.
type rewinder interface {
	rewind() error
}

//flusher is implemented by the encoders that can push their pending data to the file.
type flusher interface {
	Flush() error
}

//newBackend wraps the open file f in the backend for comp.
func newBackend(f *os.File, path string, mode Mode, comp Compression, cfg Config) (Backend, error) {
	if comp == Default {
		return &plainBackend{f: f, path: path}, nil
	}
	c := codecs[comp]
	b := &streamBackend{c: c, f: f, path: path}
	if mode == Read {
		b.src = bufio.NewReaderSize(f, cfg.BufferSize)
		return b, nil
	}
	enc, err := c.newWriter(f, cfg.Level)
	if err != nil {
		return nil, &Error{message: "could not create the " + comp.String() + " encoder for '" + path + "'", filename: path, deco: []string{"newBackend"}, critical: true, kind: ErrOpen, backend: comp, cause: err}
	}
	b.enc = enc
	return b, nil
}

//streamBackend adapts a sequential decoder or encoder to Backend.
//It can not seek, but it can start decoding again from the beginning of the file.
type streamBackend struct {
	c      *codec
	f      *os.File
	path   string
	src    *bufio.Reader
	dec    io.ReadCloser
	enc    io.WriteCloser
	done   bool //the decoder reached the end of the data
	closed bool
}

//start checks the magic number and creates the decoder.
//An empty file is read as empty content.
func (B *streamBackend) start() error {
	head, err := B.src.Peek(len(B.c.magic))
	if len(head) == 0 && err == io.EOF {
		B.done = true
		return nil
	}
	if err != nil && err != io.EOF {
		return ioError(B.path, B.c.comp, "start", err)
	}
	if !bytes.Equal(head, B.c.magic) {
		return B.c.formatError(B.path)
	}
	dec, err := B.c.newReader(B.src)
	if err != nil {
		return B.c.corruptError(B.path, err)
	}
	B.dec = dec
	return nil
}

func (B *streamBackend) Read(p []byte) (int, error) {
	if B.src == nil {
		return 0, newError(ErrMode, B.path, "Read", "can not read from the file at '%s': it was opened for writing", B.path)
	}
	if B.dec == nil && !B.done {
		if err := B.start(); err != nil {
			return 0, err
		}
	}
	if B.done {
		return 0, io.EOF
	}
	n, err := B.dec.Read(p)
	if err == io.EOF {
		B.done = true
		return n, io.EOF
	}
	if err != nil {
		var pe *fs.PathError
		if errors.As(err, &pe) {
			return n, ioError(B.path, B.c.comp, "Read", err)
		}
		return n, B.c.corruptError(B.path, err)
	}
	return n, nil
}

func (B *streamBackend) Write(p []byte) (int, error) {
	if B.enc == nil {
		return 0, newError(ErrMode, B.path, "Write", "can not write to the file at '%s': it was opened for reading", B.path)
	}
	n, err := B.enc.Write(p)
	if err != nil {
		return n, ioError(B.path, B.c.comp, "Write", err)
	}
	return n, nil
}

// Flush pushes the data buffered in the encoder to the file, if the encoder supports it.
func (B *streamBackend) Flush() error {
	if fl, ok := B.enc.(flusher); ok {
		if err := fl.Flush(); err != nil {
			return ioError(B.path, B.c.comp, "Flush", err)
		}
	}
	return nil
}

func (B *streamBackend) rewind() error {
	if B.dec != nil {
		B.dec.Close()
		B.dec = nil
	}
	B.done = false
	if _, err := B.f.Seek(0, io.SeekStart); err != nil {
		return ioError(B.path, B.c.comp, "rewind", err)
	}
	B.src.Reset(B.f)
	return nil
}

//Close finalizes the encoder, if any, and closes the file. The file is closed
//even if finalizing fails.
func (B *streamBackend) Close() error {
	if B.closed {
		return nil
	}
	B.closed = true
	var err error
	if B.enc != nil {
		if e := B.enc.Close(); e != nil {
			err = &Error{message: "could not finalize the " + B.c.comp.String() + " stream of '" + B.path + "'", filename: B.path, deco: []string{"Close"}, critical: true, kind: ErrFinalize, backend: B.c.comp, cause: e}
		}
	}
	if B.dec != nil {
		B.dec.Close()
	}
	if e := B.f.Close(); e != nil && err == nil {
		err = ioError(B.path, B.c.comp, "Close", e)
	}
	return err
}

func ioError(path string, comp Compression, caller string, cause error) *Error {
	return &Error{message: "input/output error on '" + path + "'", filename: path, deco: []string{caller}, critical: true, kind: ErrIO, backend: comp, cause: cause}
}
