package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"

	"github.com/Kolyrub/polygon-alg/internal/client"
	"github.com/Kolyrub/polygon-alg/internal/server"
	"github.com/Kolyrub/polygon-alg/pkg/config"
	"github.com/Kolyrub/polygon-alg/pkg/geo"
	"github.com/Kolyrub/polygon-alg/pkg/protocol"
	"github.com/Kolyrub/polygon-alg/pkg/render"
	"github.com/Kolyrub/polygon-alg/pkg/validation"
)

const configFileHint = config.FileName

// loadConfig reads the file named by --config, or ./polyclip.yaml when the
// flag is empty. A missing default file yields the built-in defaults.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadProject(".")
}

func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

func runServe(parent context.Context, cfg *config.Config) error {
	if cfg.Server.TCPAddr == "" && cfg.Server.HTTPAddr == "" {
		return errors.New("nothing to serve: both TCP and HTTP addresses are empty")
	}
	ctx, stop := signalContext(parent)
	defer stop()

	var wg sync.WaitGroup
	errc := make(chan error, 2)
	start := func(name string, serve func(context.Context) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := serve(ctx); err != nil {
				errc <- fmt.Errorf("%s server: %w", name, err)
				stop()
			}
		}()
	}

	if cfg.Server.TCPAddr != "" {
		tcp := server.NewTCP(cfg.Server.TCPAddr, cfg.Server.ReadTimeout, cfg.Server.MaxVertices)
		start("tcp", tcp.ListenAndServe)
	}
	if cfg.Server.HTTPAddr != "" {
		start("http", server.NewHTTP(cfg.Server.HTTPAddr, cfg.Server.MaxVertices).ListenAndServe)
	}

	wg.Wait()
	close(errc)
	return <-errc
}

func runClient(parent context.Context, cfg *config.Config, in io.Reader) error {
	ctx, stop := signalContext(parent)
	defer stop()

	req, err := client.Prompt(in, os.Stdout)
	if err != nil {
		return fmt.Errorf("reading polygons: %w", err)
	}
	report := validation.ValidateRequest(req)
	for _, w := range report.Warnings {
		fmt.Println(color.Yellow("warning: " + w.String()))
	}

	resp, err := client.New(cfg.Client.Addr, cfg.Client.Timeout).Clip(ctx, req)
	if err != nil {
		return err
	}
	printResponse(resp)
	return nil
}

func runReplay(parent context.Context, cfg *config.Config) error {
	ctx, stop := signalContext(parent)
	defer stop()

	req := cfg.Replay.Request()
	if report := validation.ValidateRequest(req); !report.Valid {
		printValidationReport(report)
		return errors.New("replay polygons are invalid")
	}

	c := client.New(cfg.Client.Addr, cfg.Client.Timeout)
	counts := map[protocol.Status]int{}
	n, err := client.Replay(ctx, c, req, client.ReplayOptions{Count: cfg.Replay.Count, Rate: cfg.Replay.Rate},
		func(i int, resp protocol.Response) {
			counts[resp.Status]++
			fmt.Printf("#%d %s (%d vertices)\n", i, statusLabel(resp.Status), len(resp.Vertices))
		})
	fmt.Printf("\n%d requests: %d OK, %d FAIL, %d ERROR\n",
		n, counts[protocol.StatusOK], counts[protocol.StatusFail], counts[protocol.StatusError])
	return err
}

func runClip(subjectArg, cutterArg, pngPath string, size int) error {
	req, err := readRequest(subjectArg, cutterArg)
	if err != nil {
		return err
	}

	resp := server.Clip(req)
	printResponse(resp)

	if pngPath != "" {
		scene := render.Scene{Subject: req.Subject, Cutter: req.Cutter, Result: resp.Vertices}
		if err := render.DrawPNG(pngPath, scene, size); err != nil {
			return fmt.Errorf("rendering: %w", err)
		}
		fmt.Printf("Wrote %s\n", pngPath)
	}
	return nil
}

func runValidate(subjectArg, cutterArg string) error {
	req, err := readRequest(subjectArg, cutterArg)
	if err != nil {
		return err
	}
	report := validation.ValidateRequest(req)
	printValidationReport(report)
	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

// readRequest takes both polygons from flags when both are given and prompts
// on stdin otherwise.
func readRequest(subjectArg, cutterArg string) (protocol.Request, error) {
	if subjectArg == "" || cutterArg == "" {
		return client.Prompt(os.Stdin, os.Stdout)
	}
	subject, err := parsePoints(subjectArg)
	if err != nil {
		return protocol.Request{}, fmt.Errorf("subject: %w", err)
	}
	cutter, err := parsePoints(cutterArg)
	if err != nil {
		return protocol.Request{}, fmt.Errorf("cutter: %w", err)
	}
	return protocol.Request{Subject: subject, Cutter: cutter}, nil
}

// parsePoints reads "x1 y1 x2 y2 ..." with commas accepted as separators.
func parsePoints(s string) ([]geo.Point, error) {
	fields := strings.Fields(strings.ReplaceAll(s, ",", " "))
	if len(fields) == 0 {
		return nil, errors.New("no coordinates")
	}
	if len(fields)%2 != 0 {
		return nil, fmt.Errorf("odd number of coordinates (%d)", len(fields))
	}
	pts := make([]geo.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q", fields[i+1])
		}
		pts = append(pts, geo.Pt(x, y))
	}
	return pts, nil
}
