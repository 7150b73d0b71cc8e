//go:build windows
// +build windows

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

package pipe

import (
	"context"
	"io"

	"github.com/iDigitalFlame/anonpipe/util/bugtrack"
	"github.com/iDigitalFlame/anonpipe/util/xerr"
	"golang.org/x/sys/windows"
)

// conn is a single named pipe end. Both pipe ends perform their I/O the same
// way once connected, only creation and the connect handshake differ, which
// live on the server and client wrapper types.
type conn struct {
	_ [0]func()
	h windows.Handle
}
type server struct {
	conn
}
type client struct {
	conn
}

func (c *conn) fd() uintptr {
	return uintptr(c.h)
}

// detach clears the held handle without releasing it. The caller now owns the
// handle lifetime.
func (c *conn) detach() uintptr {
	h := c.h
	c.h = 0
	return uintptr(h)
}
func (c *conn) close() error {
	if c.h == 0 {
		return nil
	}
	windows.CancelIoEx(c.h, nil)
	windows.DisconnectNamedPipe(c.h)
	err := windows.CloseHandle(c.h)
	c.h = 0
	return err
}
func (c *conn) flush() error {
	if c.h == 0 {
		return ErrClosed
	}
	return windows.FlushFileBuffers(c.h)
}

// shutdown delivers buffered data to the reading end. The handle stays open,
// writes issued afterwards are not rejected.
func (c *conn) shutdown() error {
	return c.flush()
}
func event() (windows.Handle, error) {
	// Manual reset, start signaled.
	return windows.CreateEvent(nil, 1, 1, nil)
}
func (c *conn) read(b []byte) (int, error) {
	if c.h == 0 {
		return 0, ErrClosed
	}
	var (
		n   uint32
		o   = new(windows.Overlapped)
		err error
	)
	if o.HEvent, err = event(); err != nil {
		return 0, xerr.Wrap("could not create event", err)
	}
	return c.finish(windows.ReadFile(c.h, b, &n, o), n, o)
}
func (c *conn) write(b []byte) (int, error) {
	if c.h == 0 {
		return 0, ErrClosed
	}
	var (
		n   uint32
		o   = new(windows.Overlapped)
		err error
	)
	if o.HEvent, err = event(); err != nil {
		return 0, xerr.Wrap("could not create event", err)
	}
	return c.finish(windows.WriteFile(c.h, b, &n, o), n, o)
}

// finish resolves one overlapped Read/WriteFile submission, waiting on the
// event when the OS reports the operation as pending.
func (c *conn) finish(e error, n uint32, o *windows.Overlapped) (int, error) {
	if e == windows.ERROR_IO_PENDING {
		if _, e = windows.WaitForSingleObject(o.HEvent, windows.INFINITE); e == nil {
			e = windows.GetOverlappedResult(c.h, o, &n, false)
		}
	}
	if windows.CloseHandle(o.HEvent); e == windows.ERROR_BROKEN_PIPE {
		return int(n), io.EOF
	}
	return int(n), e
}

// connect waits for the connecting end of the pipe to be observed by the OS.
// A client that already opened the pipe counts as success. The supplied
// Context may cancel the wait, which releases the pending operation.
func (s *server) connect(x context.Context) error {
	if s.h == 0 {
		return ErrClosed
	}
	o := new(windows.Overlapped)
	var err error
	if o.HEvent, err = event(); err != nil {
		return xerr.Wrap("could not create event", err)
	}
	switch err = windows.ConnectNamedPipe(s.h, o); err {
	case windows.ERROR_IO_PENDING:
	case nil, windows.ERROR_PIPE_CONNECTED:
		windows.CloseHandle(o.HEvent)
		return nil
	default:
		windows.CloseHandle(o.HEvent)
		return err
	}
	var w chan struct{}
	if x != nil && x.Done() != nil {
		w = make(chan struct{})
		go func() {
			if bugtrack.Enabled {
				defer bugtrack.Recover("pipe.(*server).connect.func1()")
			}
			select {
			case <-x.Done():
				windows.CancelIoEx(s.h, o)
			case <-w:
			}
		}()
	}
	var n uint32
	if _, err = windows.WaitForSingleObject(o.HEvent, windows.INFINITE); err == nil {
		err = windows.GetOverlappedResult(s.h, o, &n, false)
	}
	if w != nil {
		close(w)
	}
	if windows.CloseHandle(o.HEvent); err == windows.ERROR_OPERATION_ABORTED && x != nil && x.Err() != nil {
		if bugtrack.Enabled {
			bugtrack.Track("pipe.(*server).connect(): Handshake on 0x%X was canceled!", s.h)
		}
		return x.Err()
	}
	if err == windows.ERROR_PIPE_CONNECTED {
		return nil
	}
	return err
}

// newServer creates the listening end of a new pipe pair. The pipe is created
// as the first and only instance for the name, creation fails if the name is
// taken.
func newServer(name string, rejectRemote, write bool) (*server, error) {
	n, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return nil, err
	}
	// 0x1     - PIPE_ACCESS_INBOUND
	// 0x2     - PIPE_ACCESS_OUTBOUND
	// 0x40000 - FILE_FLAG_OVERLAPPED
	// 0x80000 - FILE_FLAG_FIRST_PIPE_INSTANCE
	f := uint32(0xC0001)
	if write {
		f = 0xC0002
	}
	var m uint32
	if rejectRemote {
		// 0x8 - PIPE_REJECT_REMOTE_CLIENTS
		m |= 0x8
	}
	h, err := windows.CreateNamedPipe(n, f, m, 1, 4096, 4096, 0, nil)
	if err != nil {
		return nil, err
	}
	return &server{conn{h: h}}, nil
}

// newClient opens the connecting end of an existing pipe with the direction
// opposite to its listening end. No handshake is needed afterwards, the open
// itself is the connect signal observed by the listener.
func newClient(name string, write bool) (*client, error) {
	n, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return nil, err
	}
	// 0x80000000 - GENERIC_READ
	// 0x40000000 - GENERIC_WRITE
	a := uint32(0x80000000)
	if write {
		a = 0x40000000
	}
	// 0x3        - OPEN_EXISTING
	// 0x40000000 - FILE_FLAG_OVERLAPPED
	h, err := windows.CreateFile(n, a, 0, nil, 0x3, 0x40000000, 0)
	if err != nil {
		return nil, err
	}
	return &client{conn{h: h}}, nil
}

// classify buckets a listener creation error. ERROR_ACCESS_DENIED is how the
// OS reports a name collision with FILE_FLAG_FIRST_PIPE_INSTANCE set, while
// ERROR_INVALID_PARAMETER indicates the local-only client restriction is not
// accepted. Anything else is fatal.
func classify(err error) uint8 {
	switch err {
	case windows.ERROR_ACCESS_DENIED:
		return resultAgain
	case windows.ERROR_INVALID_PARAMETER:
		return resultFree
	}
	return resultFatal
}
