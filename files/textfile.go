/*
 * textfile.go, part of chemfiles.
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
	"fmt"
	"io"
	"runtime"
	"sort"
	"strings"

	chem "github.com/Liozou/chemfiles"
)

// TextFile is a text file, possibly compressed, read or written line by line. Positions
// (TellPos, SeekPos) are always byte offsets in the uncompressed text, so they are the same
// for a file and for its compressed versions.
//
// A TextFile is not safe for concurrent use.
type TextFile struct {
	path    string
	mode    Mode
	comp    Compression
	cfg     Config
	backend Backend

	//Read side. buf holds decoded text, buf[0] being at offset bufStart of the
	//text, and cur is the cursor in buf.
	buf       []byte
	bufStart  uint64
	cur       int
	exhausted bool   //the backend has no more data
	beyond    uint64 //how far past the end of the text the last seek went
	eof       bool
	err       error //decoding error, kept until the next seek
	//lines holds the offset of every line start up to reach, the largest
	//offset the cursor ever got to. line is the line the cursor is in.
	lines []uint64
	reach uint64
	line  int

	w      *bufio.Writer
	closed bool
}

func finalizeTextFile(F *TextFile) {
	if F.closed {
		return
	}
	chem.Warning("the file at '%s' was not closed", F.path)
	if err := F.Close(); err != nil {
		chem.Warning("%s", err)
	}
}

// Path returns the path the file was opened with.
func (F *TextFile) Path() string { return F.path }

// Mode returns the mode the file was opened in.
func (F *TextFile) Mode() Mode { return F.mode }

// Compression returns the compression of the file. It is never Auto.
func (F *TextFile) Compression() Compression { return F.comp }

func (F *TextFile) errorf(kind error, caller, format string, a ...interface{}) *Error {
	err := newError(kind, F.path, caller, format, a...)
	err.backend = F.comp
	return err
}

func (F *TextFile) check(reading bool, caller string) error {
	if F.closed {
		return F.errorf(ErrClosed, caller, "the file at '%s' is closed", F.path)
	}
	if reading && F.mode != Read {
		return F.errorf(ErrMode, caller, "can not read from the file at '%s': it was opened in %s mode", F.path, F.mode)
	}
	if !reading && F.mode == Read {
		return F.errorf(ErrMode, caller, "can not write to the file at '%s': it was opened in read mode", F.path)
	}
	return nil
}

// ReadLine reads the next line and returns it without its line terminator ("\n" or "\r\n",
// or a lone "\r" ending the last line).
// At the end of the file, it returns an empty string and Eof becomes true. A last line without
// terminator is returned normally, and Eof becomes true right away.
// Once a decoding error happened, ReadLine returns it until the next SeekPos or Rewind.
func (F *TextFile) ReadLine() (string, error) {
	if err := F.check(true, "ReadLine"); err != nil {
		return "", err
	}
	if F.err != nil {
		return "", F.err
	}
	if F.beyond > 0 {
		F.eof = true
		return "", nil
	}
	searched := 0
	for {
		if i := bytes.IndexByte(F.buf[F.cur+searched:], '\n'); i >= 0 {
			end := F.cur + searched + i
			line := string(F.buf[F.cur:end])
			F.advance(end + 1)
			F.line++
			return strings.TrimSuffix(line, "\r"), nil
		}
		searched = len(F.buf) - F.cur
		if F.exhausted {
			line := string(F.buf[F.cur:])
			F.advance(len(F.buf))
			F.eof = true
			return strings.TrimSuffix(line, "\r"), nil
		}
		if err := F.fill(); err != nil {
			F.err = errDecorate(err, "ReadLine")
			return "", F.err
		}
	}
}

// ReadLines reads up to n lines. It returns less lines only if the end of the file is reached.
func (F *TextFile) ReadLines(n int) ([]string, error) {
	lines := make([]string, 0, n)
	for len(lines) < n {
		l, err := F.ReadLine()
		if err != nil {
			return lines, errDecorate(err, "ReadLines")
		}
		if F.eof && l == "" {
			break
		}
		lines = append(lines, l)
		if F.eof {
			break
		}
	}
	return lines, nil
}

// Eof returns true if the last ReadLine reached the end of the file, and no seek happened
// since. It is also true for a closed file.
func (F *TextFile) Eof() bool {
	return F.eof || F.closed
}

// TellPos returns the offset of the cursor in the uncompressed text.
func (F *TextFile) TellPos() (uint64, error) {
	if err := F.check(true, "TellPos"); err != nil {
		return 0, err
	}
	return F.pos() + F.beyond, nil
}

func (F *TextFile) pos() uint64 {
	return F.bufStart + uint64(F.cur)
}

// SeekPos moves the cursor to offset in the uncompressed text. Offsets still in memory are
// reached directly. Going further back restarts reading from the offset in uncompressed files,
// and decodes compressed files again from their start. Seeking past the end of the text is
// not an error: TellPos then returns offset, and the next ReadLine reports the end of file.
func (F *TextFile) SeekPos(offset uint64) error {
	if err := F.check(true, "SeekPos"); err != nil {
		return err
	}
	F.eof = false
	F.beyond = 0
	F.err = nil
	if offset < F.bufStart {
		if err := F.restart(offset); err != nil {
			F.err = errDecorate(err, "SeekPos")
			return F.err
		}
	}
	if err := F.skipTo(offset); err != nil {
		F.err = errDecorate(err, "SeekPos")
		return F.err
	}
	p := F.pos()
	F.line = sort.Search(len(F.lines), func(i int) bool { return F.lines[i] > p }) - 1
	return nil
}

// Rewind goes back to the start of the file.
func (F *TextFile) Rewind() error {
	return errDecorate(F.SeekPos(0), "Rewind")
}

// Line returns the index of the line the cursor is in, starting from 0.
func (F *TextFile) Line() int {
	return F.line
}

// LineOffset returns the offset of the start of line n, if the file was read at least
// up to that line.
func (F *TextFile) LineOffset(n int) (uint64, bool) {
	if n < 0 || n >= len(F.lines) {
		return 0, false
	}
	return F.lines[n], true
}

// SeekLine moves the cursor to the start of line n, counting from 0.
func (F *TextFile) SeekLine(n int) error {
	if err := F.check(true, "SeekLine"); err != nil {
		return err
	}
	if n < 0 {
		return F.errorf(ErrRange, "SeekLine", "invalid line number %d", n)
	}
	if n < len(F.lines) {
		return errDecorate(F.SeekPos(F.lines[n]), "SeekLine")
	}
	//The line is not indexed yet: read on from the last known line.
	last := F.lines[len(F.lines)-1]
	if F.pos() < last || F.beyond > 0 || F.err != nil {
		if err := F.SeekPos(last); err != nil {
			return errDecorate(err, "SeekLine")
		}
	}
	for len(F.lines) <= n {
		if _, err := F.ReadLine(); err != nil {
			return errDecorate(err, "SeekLine")
		}
		if F.eof {
			return F.errorf(ErrRange, "SeekLine", "the file at '%s' has only %d lines, can not go to line %d", F.path, len(F.lines), n)
		}
	}
	return errDecorate(F.SeekPos(F.lines[n]), "SeekLine")
}

//advance moves the cursor to buf[to], indexing the lines it goes over for the first time.
func (F *TextFile) advance(to int) {
	p := F.bufStart + uint64(to)
	if p > F.reach {
		from := int(F.reach - F.bufStart)
		for {
			i := bytes.IndexByte(F.buf[from:to], '\n')
			if i < 0 {
				break
			}
			from += i + 1
			F.lines = append(F.lines, F.bufStart+uint64(from))
		}
		F.reach = p
	}
	F.cur = to
}

//fill reads the next chunk of decoded text into buf. Text more than
//cfg.Window bytes behind the cursor may be dropped to make room.
func (F *TextFile) fill() error {
	if F.exhausted {
		return nil
	}
	if F.cur > 2*F.cfg.Window {
		drop := F.cur - F.cfg.Window
		n := copy(F.buf, F.buf[drop:])
		F.buf = F.buf[:n]
		F.cur -= drop
		F.bufStart += uint64(drop)
	}
	if cap(F.buf)-len(F.buf) < F.cfg.BufferSize {
		grown := make([]byte, len(F.buf), 2*cap(F.buf)+F.cfg.BufferSize)
		copy(grown, F.buf)
		F.buf = grown
	}
	n, err := F.backend.Read(F.buf[len(F.buf) : len(F.buf)+F.cfg.BufferSize])
	F.buf = F.buf[:len(F.buf)+n]
	if err == io.EOF {
		F.exhausted = true
		return nil
	}
	return err
}

//restart drops the buffered text and gets the backend ready to read from
//offset, which must be before bufStart (so, already indexed).
func (F *TextFile) restart(offset uint64) error {
	F.buf = F.buf[:0]
	F.cur = 0
	F.exhausted = false
	if s, ok := F.backend.(io.Seeker); ok {
		if _, err := s.Seek(int64(offset), io.SeekStart); err != nil {
			return err
		}
		F.bufStart = offset
		return nil
	}
	if r, ok := F.backend.(rewinder); ok {
		if F.cfg.WarnOnReplay {
			chem.Warning("going back to offset %d of '%s' needs to decode the file again from its start", offset, F.path)
		}
		if err := r.rewind(); err != nil {
			return err
		}
		F.bufStart = 0
		return nil
	}
	return F.errorf(ErrIO, "restart", "can not go back in the file at '%s'", F.path)
}

//skipTo reads forward until the cursor is at offset, or at the end of the text.
func (F *TextFile) skipTo(offset uint64) error {
	for F.bufStart+uint64(len(F.buf)) < offset && !F.exhausted {
		F.advance(len(F.buf))
		if err := F.fill(); err != nil {
			return err
		}
	}
	end := F.bufStart + uint64(len(F.buf))
	if offset <= end {
		F.advance(int(offset - F.bufStart))
		return nil
	}
	F.advance(len(F.buf))
	F.beyond = offset - end
	return nil
}

// Write writes p to the file, compressing it if needed. It implements io.Writer,
// so fmt.Fprintf can be used on a TextFile.
func (F *TextFile) Write(p []byte) (int, error) {
	if err := F.check(false, "Write"); err != nil {
		return 0, err
	}
	n, err := F.w.Write(p)
	if err != nil {
		return n, errDecorate(err, "Write")
	}
	return n, nil
}

// Print writes its operands, formatted as with fmt.Print.
func (F *TextFile) Print(a ...interface{}) error {
	_, err := fmt.Fprint(F, a...)
	return err
}

// Printf writes its operands, formatted as with fmt.Printf.
func (F *TextFile) Printf(format string, a ...interface{}) error {
	_, err := fmt.Fprintf(F, format, a...)
	return err
}

// Flush pushes the buffered text to the file. Compressed files are only complete
// after Close.
func (F *TextFile) Flush() error {
	if err := F.check(false, "Flush"); err != nil {
		return err
	}
	if err := F.w.Flush(); err != nil {
		return errDecorate(err, "Flush")
	}
	if fl, ok := F.backend.(flusher); ok {
		if err := fl.Flush(); err != nil {
			return errDecorate(err, "Flush")
		}
	}
	return nil
}

// Close flushes and finalizes the file, if it was opened for writing, and closes it.
// A compressed file written to and not closed is truncated. Closing a closed file does nothing.
func (F *TextFile) Close() error {
	if F.closed {
		return nil
	}
	F.closed = true
	runtime.SetFinalizer(F, nil)
	var err error
	if F.w != nil {
		err = F.w.Flush()
	}
	if e := F.backend.Close(); e != nil && err == nil {
		err = e
	}
	F.buf = nil
	if err == nil {
		return nil
	}
	//Whatever fails while closing a written file leaves it incomplete.
	if F.mode != Read && !errors.Is(err, ErrFinalize) {
		fe := F.errorf(ErrFinalize, "Close", "could not finalize the file at '%s'", F.path)
		fe.cause = err
		return fe
	}
	return errDecorate(err, "Close")
}
