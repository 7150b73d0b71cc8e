// Copyright (C) 2020 - 2023 iDigitalFlame
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.
//

// Package pipe supplies an anonymous pipe pair for Windows that supports
// overlapped (asynchronous) I/O.
//
// The pipes created by the Windows "CreatePipe" call do not support overlapped
// operations. Instead this package creates a named pipe under a randomly
// generated name in the local pipe namespace and connects both ends itself,
// which from the view of the caller acts exactly like an anonymous pipe pair.
//
// The read and write halves are independent handles and may be used, closed
// or detached separately. Bytes are delivered in write order with standard
// stream semantics, read boundaries are not related to write boundaries.
//
// On non-Windows devices every creation function fails with 'ErrNoWindows'.
//
package pipe
