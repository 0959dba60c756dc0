package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var configPath string
	var noColor bool

	rootCmd := &cobra.Command{
		Use:   "polyclip",
		Short: "Convex polygon clipping service and client",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			setColor(!noColor)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default ./"+configFileHint+")")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(serveCmd(&configPath))
	rootCmd.AddCommand(clientCmd(&configPath))
	rootCmd.AddCommand(replayCmd(&configPath))
	rootCmd.AddCommand(clipCmd())
	rootCmd.AddCommand(validateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd(configPath *string) *cobra.Command {
	var tcpAddr, httpAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the text protocol over TCP and the JSON API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("tcp") {
				cfg.Server.TCPAddr = tcpAddr
			}
			if cmd.Flags().Changed("http") {
				cfg.Server.HTTPAddr = httpAddr
			}
			return runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&tcpAddr, "tcp", "", "TCP listen address; empty disables the TCP server")
	cmd.Flags().StringVar(&httpAddr, "http", "", "HTTP listen address; empty disables the HTTP server")
	return cmd
}

func clientCmd(configPath *string) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "client",
		Short: "Enter two polygons and clip them on a running server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Client.Addr = addr
			}
			return runClient(cmd.Context(), cfg, os.Stdin)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "server address")
	return cmd
}

func replayCmd(configPath *string) *cobra.Command {
	var (
		addr  string
		count int
		rate  float64
	)

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Send the configured polygon pair to a server repeatedly",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Client.Addr = addr
			}
			if cmd.Flags().Changed("count") {
				cfg.Replay.Count = count
			}
			if cmd.Flags().Changed("rate") {
				cfg.Replay.Rate = rate
			}
			return runReplay(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "server address")
	cmd.Flags().IntVarP(&count, "count", "n", 0, "number of requests (0 = until interrupted)")
	cmd.Flags().Float64VarP(&rate, "rate", "r", 0, "requests per second (0 = unpaced)")
	return cmd
}

func clipCmd() *cobra.Command {
	var subject, cutter, png string
	var size int

	cmd := &cobra.Command{
		Use:   "clip",
		Short: "Clip two polygons locally without a server",
		Long: "Clip two polygons locally. Polygons are given as whitespace-separated\n" +
			"coordinate lists (\"0 0 2 0 2 2\"); when either flag is missing both\n" +
			"polygons are read interactively from stdin.",
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runClip(subject, cutter, png, size)
		},
	}

	cmd.Flags().StringVarP(&subject, "subject", "s", "", "subject polygon coordinates")
	cmd.Flags().StringVarP(&cutter, "cutter", "p", "", "cutter polygon coordinates")
	cmd.Flags().StringVar(&png, "png", "", "write a rendering of the inputs and result to this PNG file")
	cmd.Flags().IntVar(&size, "size", 512, "PNG width and height in pixels")
	return cmd
}

func validateCmd() *cobra.Command {
	var subject, cutter string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check two polygons for problems without clipping them",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runValidate(subject, cutter)
		},
	}

	cmd.Flags().StringVarP(&subject, "subject", "s", "", "subject polygon coordinates")
	cmd.Flags().StringVarP(&cutter, "cutter", "p", "", "cutter polygon coordinates")
	return cmd
}
