package main

import (
	"context"
	"errors"
	"net"

	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/logs"
)

// Server runs one compiled program for every accepted connection. Each
// session gets a fresh VM with the connection as its input and output
// channel, so sessions never share tape state.
type Server struct {
	Program *bfvm.Program
	EOF     bfvm.EOFPolicy
	Logger  logs.Logger
	NewRun  logs.NewRun
}

// Serve accepts sessions until the listener closes. A failed session is
// logged and dropped, never retried.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return err
		}
		go func() {
			if err := s.serveConn(ctx, conn); err != nil {
				s.Logger.Error("session failed",
					"error", err,
				)
			}
		}()
	}
}

func (s *Server) serveConn(ctx context.Context, conn net.Conn) error {
	defer conn.Close()

	ctx, _ = s.NewRun(ctx, "")
	s.Logger.InfoContext(ctx, "session",
		"remote", conn.RemoteAddr().String(),
	)

	vm := bfvm.NewVM(s.Program)
	vm.Input = conn
	vm.Output = conn
	vm.EOF = s.EOF

	if err := vm.Run(); err != nil {
		return logs.WrapRun(ctx, err)
	}

	s.Logger.InfoContext(ctx, "session done")
	return nil
}
