/*
 * mode.go, part of chemfiles.
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
	"fmt"
	"os"
)

// Mode is the mode a file is opened in.
type Mode int

const (
	Read Mode = iota
	Write
	Append
)

// ParseMode parses the one-letter modes "r", "w" and "a".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "r":
		return Read, nil
	case "w":
		return Write, nil
	case "a":
		return Append, nil
	}
	return Read, newError(ErrMode, "", "ParseMode", "unknown file mode '%s', expected one of 'r', 'w' or 'a'", s)
}

func (M Mode) String() string {
	switch M {
	case Read:
		return "read"
	case Write:
		return "write"
	case Append:
		return "append"
	}
	return fmt.Sprintf("Mode(%d)", int(M))
}

//letter is the one-letter name of the mode, used in messages.
func (M Mode) letter() string {
	switch M {
	case Read:
		return "r"
	case Write:
		return "w"
	case Append:
		return "a"
	}
	return "?"
}

func (M Mode) flags() int {
	switch M {
	case Write:
		return os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	case Append:
		return os.O_WRONLY | os.O_CREATE | os.O_APPEND
	}
	return os.O_RDONLY
}

func (M Mode) valid() bool {
	return M == Read || M == Write || M == Append
}
