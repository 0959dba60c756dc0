package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/Kolyrub/polygon-alg/pkg/protocol"
	"github.com/Kolyrub/polygon-alg/pkg/validation"
)

// HTTPServer exposes the clipper as a JSON API and a websocket stream.
type HTTPServer struct {
	addr        string
	maxVertices int
	router      *mux.Router
}

// NewHTTP creates an HTTP server for addr.
func NewHTTP(addr string, maxVertices int) *HTTPServer {
	s := &HTTPServer{
		addr:        addr,
		maxVertices: maxVertices,
		router:      mux.NewRouter(),
	}
	s.router.HandleFunc("/api/clip", s.handleClip).Methods(http.MethodPost)
	s.router.HandleFunc("/api/validate", s.handleValidate).Methods(http.MethodPost)
	s.router.HandleFunc("/api/ws", s.handleStream).Methods(http.MethodGet)
	s.router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	return s
}

// ServeHTTP implements http.Handler.
func (s *HTTPServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *HTTPServer) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s}

	errc := make(chan error, 1)
	go func() {
		log.Printf("HTTP API listening on http://localhost%s", s.addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *HTTPServer) checkSize(req protocol.Request) error {
	if s.maxVertices <= 0 {
		return nil
	}
	if len(req.Subject) > s.maxVertices || len(req.Cutter) > s.maxVertices {
		return fmt.Errorf("%w: limit is %d", protocol.ErrTooManyVertices, s.maxVertices)
	}
	return nil
}

func (s *HTTPServer) decode(r *http.Request) (protocol.Request, error) {
	var req protocol.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, fmt.Errorf("decoding request: %w", err)
	}
	return req, s.checkSize(req)
}

func (s *HTTPServer) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>polyclip</title></head>
<body style="font-family:system-ui">
<h1>polyclip</h1>
<p>POST {"subject":[{"x":0,"y":0},...],"cutter":[...]} to <code>/api/clip</code>.</p>
</body></html>`)
}

func (s *HTTPServer) handleClip(w http.ResponseWriter, r *http.Request) {
	req, err := s.decode(r)
	if err != nil {
		log.Printf("clip: %v", err)
		writeJSON(w, http.StatusBadRequest, protocol.Error())
		return
	}
	writeJSON(w, http.StatusOK, Clip(req))
}

func (s *HTTPServer) handleValidate(w http.ResponseWriter, r *http.Request) {
	req, err := s.decode(r)
	if err != nil {
		log.Printf("validate: %v", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, validation.ValidateRequest(req))
}

// handleStream answers every JSON request read from the websocket with a
// JSON response until the client closes the connection.
func (s *HTTPServer) handleStream(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		log.Println(err)
		return
	}
	defer c.Close(websocket.StatusInternalError, "")

	ctx := r.Context()
	for {
		var req protocol.Request
		err := wsjson.Read(ctx, c, &req)
		if websocket.CloseStatus(err) == websocket.StatusNormalClosure ||
			websocket.CloseStatus(err) == websocket.StatusGoingAway {
			return
		}
		if err != nil {
			log.Printf("stream: %v", err)
			c.Close(websocket.StatusUnsupportedData, "bad request")
			return
		}

		resp := protocol.Error()
		if err := s.checkSize(req); err != nil {
			log.Printf("stream: %v", err)
		} else {
			resp = Clip(req)
		}
		if err := wsjson.Write(ctx, c, resp); err != nil {
			log.Printf("stream: %v", err)
			return
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
