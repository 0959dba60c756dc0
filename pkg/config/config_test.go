package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Kolyrub/polygon-alg/pkg/geo"
)

func TestLoadProject(t *testing.T) {
	c, err := LoadProject("../../testdata")
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}

	if c.Server.TCPAddr != "127.0.0.1:9090" {
		t.Errorf("tcp_addr = %q, want %q", c.Server.TCPAddr, "127.0.0.1:9090")
	}
	if c.Server.ReadTimeout != 2*time.Second {
		t.Errorf("read_timeout = %v, want 2s", c.Server.ReadTimeout)
	}
	if c.Server.MaxVertices != 64 {
		t.Errorf("max_vertices = %d, want 64", c.Server.MaxVertices)
	}
	// Keys absent from the file keep their defaults.
	if c.Server.HTTPAddr != ":3000" {
		t.Errorf("http_addr = %q, want default %q", c.Server.HTTPAddr, ":3000")
	}
	if c.Client.Timeout != 10*time.Second {
		t.Errorf("client.timeout = %v, want default 10s", c.Client.Timeout)
	}

	if c.Replay.Rate != 20 || c.Replay.Count != 5 {
		t.Errorf("replay rate/count = %v/%d, want 20/5", c.Replay.Rate, c.Replay.Count)
	}
	if len(c.Replay.Subject) != 4 || c.Replay.Subject[2] != geo.Pt(2, 2) {
		t.Errorf("unexpected replay subject %v", c.Replay.Subject)
	}
	req := c.Replay.Request()
	if len(req.Cutter) != 4 || req.Cutter[0] != geo.Pt(1, 1) {
		t.Errorf("unexpected replay cutter %v", req.Cutter)
	}
}

func TestLoadProjectWithoutFile(t *testing.T) {
	c, err := LoadProject(t.TempDir())
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}
	if c.Server.TCPAddr != ":8080" {
		t.Errorf("tcp_addr = %q, want default", c.Server.TCPAddr)
	}
	if len(c.Replay.Subject) != 3 || len(c.Replay.Cutter) != 3 {
		t.Errorf("default replay pair missing: %v / %v", c.Replay.Subject, c.Replay.Cutter)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load("/nonexistent/polyclip.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"syntax":   "server: [unclosed",
		"timeout":  "server:\n  read_timeout: -1s\n",
		"vertices": "server:\n  max_vertices: -5\n",
		"rate":     "replay:\n  rate: -1\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), FileName)
			if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Errorf("expected error for %q", body)
			}
		})
	}
}
