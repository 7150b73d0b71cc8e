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
	"os"

	"github.com/iDigitalFlame/anonpipe/util"
	"github.com/iDigitalFlame/anonpipe/util/bugtrack"
	"github.com/iDigitalFlame/anonpipe/util/xerr"
)

// limit is the max amount of names tried before giving up and returning the
// last creation error.
const limit = 10

// prefix is the location in the local pipe namespace used for generated pipe
// names. The full scheme is "<prefix><pid>.<random>" (both values decimal)
// and is shared with other tooling, so it must stay stable.
const prefix = `\\.\pipe\__tokio_anonymous_pipe0__.`

// ErrClosed is an error returned when attempting to use a Reader or Writer
// after it was closed or after its raw handle was detached.
var ErrClosed = xerr.Sub("pipe is closed", 0x1)

const (
	resultFatal uint8 = iota
	resultAgain
	resultFree
)

// Reader is the receiving half of an anonymous pipe pair.
//
// A Reader holds either the listening or the connecting end of the underlying
// named pipe, which one is decided during creation and does not matter to
// callers. Reader fulfils the 'io.ReadCloser' interface.
type Reader struct {
	_ [0]func()
	s *server
	c *client
}

// Writer is the sending half of an anonymous pipe pair.
//
// A Writer holds either the listening or the connecting end of the underlying
// named pipe, which one is decided during creation and does not matter to
// callers. Writer fulfils the 'io.WriteCloser' interface.
type Writer struct {
	_ [0]func()
	s *server
	c *client
}

// ConnectReader wraps a Reader that has not yet completed its connect
// handshake. Use the 'Connect' or 'ConnectContext' functions to finish the
// handshake and receive the usable Reader.
type ConnectReader struct {
	_ [0]func()
	r *Reader
}

// ConnectWriter wraps a Writer that has not yet completed its connect
// handshake. Use the 'Connect' or 'ConnectContext' functions to finish the
// handshake and receive the usable Writer.
type ConnectWriter struct {
	_ [0]func()
	w *Writer
}

// New creates an anonymous pipe pair and returns the read and write halves.
//
// The connect handshake is performed before this function returns, so both
// halves are immediately usable. This function blocks indefinitely if no
// client connects, use 'NewContext' to specify a cancelation method.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func New() (*Reader, *Writer, error) {
	return NewContext(context.Background())
}

// name generates a candidate pipe name from the current process ID and a
// fresh random value. Never reuse a result across creation attempts.
func name() string {
	return prefix + util.Uitoa(uint64(os.Getpid())) + "." + util.Uitoa(util.Rand.Uint64())
}

// Fd returns the raw handle value of this Reader.
//
// Ownership of the handle is kept by the Reader and it stays valid only until
// the Reader is closed. Returns zero if the Reader was closed or detached.
func (r *Reader) Fd() uintptr {
	switch {
	case r.s != nil:
		return r.s.fd()
	case r.c != nil:
		return r.c.fd()
	}
	return 0
}

// Fd returns the raw handle value of this Writer.
//
// Ownership of the handle is kept by the Writer and it stays valid only until
// the Writer is closed. Returns zero if the Writer was closed or detached.
func (w *Writer) Fd() uintptr {
	switch {
	case w.s != nil:
		return w.s.fd()
	case w.c != nil:
		return w.c.fd()
	}
	return 0
}

// Close releases the resources of this Reader. Any blocked Read calls will be
// unblocked and return errors.
func (r *Reader) Close() error {
	switch {
	case r.s != nil:
		err := r.s.close()
		r.s = nil
		return err
	case r.c != nil:
		err := r.c.close()
		r.c = nil
		return err
	}
	return nil
}

// Close releases the resources of this Writer. Any blocked Write calls will
// be unblocked and return errors.
func (w *Writer) Close() error {
	switch {
	case w.s != nil:
		err := w.s.close()
		w.s = nil
		return err
	case w.c != nil:
		err := w.c.close()
		w.c = nil
		return err
	}
	return nil
}

// Flush forces any buffered data to be delivered to the read side before
// returning.
func (w *Writer) Flush() error {
	switch {
	case w.s != nil:
		return w.s.flush()
	case w.c != nil:
		return w.c.flush()
	}
	return ErrClosed
}

// Detach returns the raw handle of this Reader and releases ownership of it
// to the caller.
//
// The Reader is considered closed afterwards but the handle is NOT released,
// it stays valid until the new owner closes it. Returns zero if the Reader
// was already closed or detached.
func (r *Reader) Detach() uintptr {
	switch {
	case r.s != nil:
		h := r.s.detach()
		r.s = nil
		return h
	case r.c != nil:
		h := r.c.detach()
		r.c = nil
		return h
	}
	return 0
}

// Detach returns the raw handle of this Writer and releases ownership of it
// to the caller.
//
// The Writer is considered closed afterwards but the handle is NOT released,
// it stays valid until the new owner closes it. Returns zero if the Writer
// was already closed or detached.
func (w *Writer) Detach() uintptr {
	switch {
	case w.s != nil:
		h := w.s.detach()
		w.s = nil
		return h
	case w.c != nil:
		h := w.c.detach()
		w.c = nil
		return h
	}
	return 0
}

// Shutdown delivers any buffered data to the read side.
//
// The underlying handle is NOT closed by this call, so a Write issued after
// Shutdown may still succeed.
func (w *Writer) Shutdown() error {
	switch {
	case w.s != nil:
		return w.s.shutdown()
	case w.c != nil:
		return w.c.shutdown()
	}
	return ErrClosed
}

// Read implements the 'io.Reader' interface.
//
// Read blocks until at least one byte is available or the write side is
// closed, in which case 'io.EOF' is returned.
func (r *Reader) Read(b []byte) (int, error) {
	switch {
	case r.s != nil:
		return r.s.read(b)
	case r.c != nil:
		return r.c.read(b)
	}
	return 0, ErrClosed
}

// Write implements the 'io.Writer' interface.
//
// Write blocks until the data is accepted by the pipe.
func (w *Writer) Write(b []byte) (int, error) {
	switch {
	case w.s != nil:
		return w.s.write(b)
	case w.c != nil:
		return w.c.write(b)
	}
	return 0, ErrClosed
}
func (r *Reader) connect(x context.Context) error {
	if r.s == nil {
		panic("not a server")
	}
	return r.s.connect(x)
}
func (w *Writer) connect(x context.Context) error {
	if w.s == nil {
		panic("not a server")
	}
	return w.s.connect(x)
}

// Close releases the wrapped Reader without completing the handshake.
func (c *ConnectReader) Close() error {
	if c.r == nil {
		return nil
	}
	err := c.r.Close()
	c.r = nil
	return err
}

// Close releases the wrapped Writer without completing the handshake.
func (c *ConnectWriter) Close() error {
	if c.w == nil {
		return nil
	}
	err := c.w.Close()
	c.w = nil
	return err
}

// Connect performs the connect handshake and returns the now usable Reader.
//
// The wrapped Reader is consumed, on failure it is released and the handshake
// error is returned. This function blocks indefinitely if no client connects,
// use 'ConnectContext' to specify a cancelation method.
func (c *ConnectReader) Connect() (*Reader, error) {
	return c.ConnectContext(context.Background())
}

// Connect performs the connect handshake and returns the now usable Writer.
//
// The wrapped Writer is consumed, on failure it is released and the handshake
// error is returned. This function blocks indefinitely if no client connects,
// use 'ConnectContext' to specify a cancelation method.
func (c *ConnectWriter) Connect() (*Writer, error) {
	return c.ConnectContext(context.Background())
}

// NewContext creates an anonymous pipe pair and returns the read and write
// halves.
//
// The connect handshake is performed before this function returns, so both
// halves are immediately usable. The provided Context can be used to cancel
// a handshake that would otherwise block forever.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func NewContext(x context.Context) (*Reader, *Writer, error) {
	n, s, err := establish(newServer, classify, false)
	if err != nil {
		return nil, nil, err
	}
	c, err := newClient(n, true)
	if err != nil {
		s.close()
		return nil, nil, err
	}
	if err = s.connect(x); err != nil {
		c.close()
		s.close()
		return nil, nil, err
	}
	return &Reader{s: s}, &Writer{c: c}, nil
}

// NewDeferredReader creates an anonymous pipe pair whose read half still
// needs its connect handshake to be performed.
//
// The returned Writer is immediately usable, while the Reader is wrapped in
// a ConnectReader and must be connected before first use.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func NewDeferredReader() (*ConnectReader, *Writer, error) {
	n, s, err := establish(newServer, classify, false)
	if err != nil {
		return nil, nil, err
	}
	c, err := newClient(n, true)
	if err != nil {
		s.close()
		return nil, nil, err
	}
	return &ConnectReader{r: &Reader{s: s}}, &Writer{c: c}, nil
}

// NewDeferredWriter creates an anonymous pipe pair whose write half still
// needs its connect handshake to be performed.
//
// The returned Reader is immediately usable, while the Writer is wrapped in
// a ConnectWriter and must be connected before first use.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func NewDeferredWriter() (*Reader, *ConnectWriter, error) {
	n, s, err := establish(newServer, classify, true)
	if err != nil {
		return nil, nil, err
	}
	c, err := newClient(n, false)
	if err != nil {
		s.close()
		return nil, nil, err
	}
	return &Reader{c: c}, &ConnectWriter{w: &Writer{s: s}}, nil
}

// ConnectContext performs the connect handshake and returns the now usable
// Reader. The provided Context can be used to cancel a handshake that would
// otherwise block forever.
//
// The wrapped Reader is consumed, on failure it is released and the handshake
// error is returned.
func (c *ConnectReader) ConnectContext(x context.Context) (*Reader, error) {
	if c.r == nil {
		return nil, ErrClosed
	}
	if err := c.r.connect(x); err != nil {
		c.r.Close()
		c.r = nil
		return nil, err
	}
	r := c.r
	c.r = nil
	return r, nil
}

// ConnectContext performs the connect handshake and returns the now usable
// Writer. The provided Context can be used to cancel a handshake that would
// otherwise block forever.
//
// The wrapped Writer is consumed, on failure it is released and the handshake
// error is returned.
func (c *ConnectWriter) ConnectContext(x context.Context) (*Writer, error) {
	if c.w == nil {
		return nil, ErrClosed
	}
	if err := c.w.connect(x); err != nil {
		c.w.Close()
		c.w = nil
		return nil, err
	}
	w := c.w
	c.w = nil
	return w, nil
}

// establish runs the create/retry loop for the listening end of a new pipe
// pair and returns the name that won together with the created endpoint.
//
// Collisions (another pipe already owns the generated name) burn one attempt
// of the budget and draw a new name. An OS that refuses the local-only client
// restriction gets the restriction disabled and the same pass repeated for
// free, once. Every other error is fatal. Once the budget is used up the last
// error is returned unmodified.
func establish(create func(string, bool, bool) (*server, error), sort func(error) uint8, write bool) (string, *server, error) {
	var (
		err    error
		reject = true
	)
	for i := 0; i < limit; i++ {
		var (
			n = name()
			s *server
		)
		if s, err = create(n, reject, write); err == nil {
			return n, s, nil
		}
		switch sort(err) {
		case resultAgain:
			if bugtrack.Enabled {
				bugtrack.Track("pipe.establish(): Name %q is already taken, trying a new name!", n)
			}
		case resultFree:
			if reject {
				if bugtrack.Enabled {
					bugtrack.Track("pipe.establish(): Local-only restriction refused, disabling it!")
				}
				reject = false
				i--
				continue
			}
			return "", nil, err
		default:
			return "", nil, err
		}
	}
	return "", nil, err
}
