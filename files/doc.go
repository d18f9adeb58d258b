/*
 * doc.go, part of chemfiles.
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

/*Package files implements the text file layer of chemfiles: plain, gzip, bzip2, xz and zstd
compressed files, read and written line by line, with positions that are the byte offsets of
the uncompressed text.


	**How positions work**

Compressed streams can only be decoded from their start, so a TextFile keeps:

	- the decoded text around the cursor (up to Config.Window bytes behind it),
	- the offset of the start of every line it went over.

Seeking inside the decoded text in memory just moves the cursor. Seeking further back
restarts reading from the offset for plain files, and decodes the file again from its start
for compressed files, dropping the text until the offset is reached. Either way, TellPos
after reading a line from a compressed file gives exactly the same number as for the same
line of the uncompressed file.

Writing goes through a buffer, then the encoder. The compressed stream is only complete
after Close, which writes the stream trailer (the xz index and footer, the gzip CRC...).

Compression is chosen explicitly, or from the file extension with Auto:

	.gz       gzip     (appending adds a gzip member)
	.bz2      bzip2    (no append)
	.xz .lzma xz       (no append)
	.zst      zstd     (appending adds a zstd frame)
	other     none

Decoding errors match ErrFormat when the data is not in the expected container at all,
and ErrCorrupted when the container is right but the data does not decode. Both carry the
diagnostic code of the reference C library (liblzma, zlib, libbzip2, zstd), see Error.Code.
*/
package files
