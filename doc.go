/*
 * doc.go, part of chemfiles.
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

/*Package chemfiles is the main package of the chemfiles library. It provides the typed
properties (bool, double, string and 3D vector values) that atoms, residues and frames carry,
and the error interfaces implemented by all the packages of the library.

The file layer lives in the files subpackage: it reads and writes plain, gzip, bzip2, xz and
zstd compressed text files line by line, with byte offsets that are always the offsets in the
uncompressed text, so format readers can tell and seek positions without caring about the
compression.


	**Properties**

	p := chemfiles.NewString("ALA")
	name, err := p.AsString()   // "ALA", nil
	_, err = p.AsDouble()       // *PropertyError: tried to read a double from a string property

	props := chemfiles.NewProperties()
	props.Set("charge", chemfiles.NewDouble(-1))
	if charge, ok := props.Get("charge"); ok {
		...
	}


	**Warnings**

Conditions that do not stop an operation (a property read with the wrong typed getter, a file
that was never closed) are reported through Warning, which goes to the standard logger unless a
callback is set with SetWarningCallback.
*/
package chemfiles
