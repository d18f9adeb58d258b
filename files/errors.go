/*
 * errors.go, part of chemfiles.
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
	"errors"
	"fmt"

	chem "github.com/Liozou/chemfiles"
)

// Error kinds. Every *Error matches exactly one of them with errors.Is.
var (
	// ErrOpen is returned when a file can not be opened or created.
	ErrOpen = errors.New("could not open file")

	// ErrMode is returned for an operation the file mode does not allow, and for
	// mode and compression combinations that are not supported.
	ErrMode = errors.New("operation not supported in this mode")

	// ErrClosed is returned when using a closed file.
	ErrClosed = errors.New("file is closed")

	// ErrFormat is returned when the data is not in the container format of the
	// selected compression.
	ErrFormat = errors.New("input not in the expected format")

	// ErrCorrupted is returned when the data is in the right container format, but
	// fails to decode or fails an integrity check.
	ErrCorrupted = errors.New("compressed data is corrupted")

	// ErrFinalize is returned when the compressed stream could not be finalized on close.
	// The file is probably truncated.
	ErrFinalize = errors.New("could not finalize compressed file")

	// ErrRange is returned when seeking to a line the file does not have.
	ErrRange = errors.New("position out of range")

	// ErrIO is returned for other failures of the underlying file.
	ErrIO = errors.New("input/output error")
)

//Error is the general structure for file errors. It fullfills chem.FileError.
type Error struct {
	message  string
	filename string //the file that has problems, or empty string if none.
	deco     []string
	critical bool
	kind     error
	code     int //native diagnostic code of the compression library, or 0.
	backend  Compression
	cause    error
}

var _ chem.FileError = (*Error)(nil)

func newError(kind error, path string, caller string, format string, a ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, a...), filename: path, deco: []string{caller}, critical: true, kind: kind}
}

func (err *Error) Error() string {
	if err.cause != nil && err.kind != ErrFormat && err.kind != ErrCorrupted {
		return err.message + ": " + err.cause.Error()
	}
	return err.message
}

//Decorate Adds new information to the error
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file to which the failing operation was associated
func (err *Error) FileName() string { return err.filename }

//Format returns the compression of the file associated to the error
func (err *Error) Format() string { return err.backend.String() }

//Critical returns true if the error is critical, false otherwise
func (err *Error) Critical() bool { return err.critical }

// Code returns the diagnostic code of the compression library, for decoding errors.
// It is zero for other errors.
func (err *Error) Code() int { return err.code }

// Unwrap returns the error kind (ErrOpen, ErrFormat...) and the underlying cause, if any.
func (err *Error) Unwrap() []error {
	if err.cause == nil {
		return []error{err.kind}
	}
	return []error{err.kind, err.cause}
}

//errDecorate decorates err with the caller's name, if err implements chem.Error,
//and returns it.
func errDecorate(err error, caller string) error {
	var e chem.Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}
