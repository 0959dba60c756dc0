package server

import (
	"bufio"
	"context"
	"errors"
	"log"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Kolyrub/polygon-alg/pkg/protocol"
	"github.com/Kolyrub/polygon-alg/pkg/validation"
)

// TCPServer serves the text clip protocol. Each connection carries one
// request and one response, then is closed by the server.
type TCPServer struct {
	addr        string
	readTimeout time.Duration
	maxVertices int

	wg sync.WaitGroup
}

// NewTCP creates a TCP server for addr. A zero readTimeout disables the read
// deadline; a zero maxVertices disables the vertex bound.
func NewTCP(addr string, readTimeout time.Duration, maxVertices int) *TCPServer {
	return &TCPServer{
		addr:        addr,
		readTimeout: readTimeout,
		maxVertices: maxVertices,
	}
}

// ListenAndServe binds the server's address and serves until ctx is done.
func (s *TCPServer) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then waits for
// in-flight connections to finish.
func (s *TCPServer) Serve(ctx context.Context, ln net.Listener) error {
	log.Printf("Clip server listening on %s", ln.Addr())

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			ln.Close()
		case <-stop:
		}
	}()

	defer s.wg.Wait()
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				log.Printf("accept: %v", err)
				continue
			}
			return err
		}
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.handle(conn)
		}()
	}
}

func (s *TCPServer) handle(conn net.Conn) {
	defer conn.Close()
	id := uuid.New().String()
	log.Printf("[%s] client connected from %s", id, conn.RemoteAddr())

	defer func() {
		if r := recover(); r != nil {
			log.Printf("[%s] panic: %v", id, r)
			protocol.WriteResponse(conn, protocol.Error())
		}
	}()

	if s.readTimeout > 0 {
		conn.SetReadDeadline(time.Now().Add(s.readTimeout))
	}

	var resp protocol.Response
	req, err := protocol.ReadRequest(bufio.NewReader(conn), s.maxVertices)
	if err != nil {
		log.Printf("[%s] bad request: %v", id, err)
		resp = protocol.Error()
	} else {
		for _, problem := range validation.ValidateRequest(req).Problems() {
			log.Printf("[%s] %s", id, problem)
		}
		resp = Clip(req)
	}

	if s.readTimeout > 0 {
		conn.SetWriteDeadline(time.Now().Add(s.readTimeout))
	}
	if err := protocol.WriteResponse(conn, resp); err != nil {
		log.Printf("[%s] %v", id, err)
		return
	}
	log.Printf("[%s] %s (%d vertices)", id, resp.Status, len(resp.Vertices))
}
