package config

import (
	"time"

	"github.com/Kolyrub/polygon-alg/pkg/geo"
	"github.com/Kolyrub/polygon-alg/pkg/protocol"
)

// Config is the top-level polyclip configuration.
type Config struct {
	Server ServerDef `yaml:"server" json:"server"`
	Client ClientDef `yaml:"client" json:"client"`
	Replay ReplayDef `yaml:"replay" json:"replay"`
}

// ServerDef configures the TCP and HTTP listeners.
type ServerDef struct {
	TCPAddr     string        `yaml:"tcp_addr" json:"tcp_addr"`
	HTTPAddr    string        `yaml:"http_addr" json:"http_addr"`
	ReadTimeout time.Duration `yaml:"read_timeout" json:"read_timeout"`
	MaxVertices int           `yaml:"max_vertices" json:"max_vertices"`
}

// ClientDef configures connections made by the client and replay commands.
type ClientDef struct {
	Addr    string        `yaml:"addr" json:"addr"`
	Timeout time.Duration `yaml:"timeout" json:"timeout"`
}

// ReplayDef is the fixed request pair replayed by the replay command.
type ReplayDef struct {
	// Rate is in requests per second; zero means unpaced.
	Rate float64 `yaml:"rate" json:"rate"`
	// Count is the number of requests; zero means until interrupted.
	Count   int         `yaml:"count" json:"count"`
	Subject []geo.Point `yaml:"subject" json:"subject"`
	Cutter  []geo.Point `yaml:"cutter" json:"cutter"`
}

// Request returns the replayed polygons as a clip request.
func (r ReplayDef) Request() protocol.Request {
	return protocol.Request{Subject: r.Subject, Cutter: r.Cutter}
}
