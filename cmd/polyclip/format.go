package main

import (
	"fmt"

	"github.com/logrusorgru/aurora"

	"github.com/Kolyrub/polygon-alg/pkg/geo"
	"github.com/Kolyrub/polygon-alg/pkg/protocol"
	"github.com/Kolyrub/polygon-alg/pkg/validation"
)

var color = aurora.NewAurora(true)

func setColor(enabled bool) {
	color = aurora.NewAurora(enabled)
}

func statusLabel(s protocol.Status) string {
	switch s {
	case protocol.StatusOK:
		return color.Green(string(s)).Bold().String()
	case protocol.StatusFail:
		return color.Yellow(string(s)).Bold().String()
	default:
		return color.Red(string(s)).Bold().String()
	}
}

func printResponse(resp protocol.Response) {
	fmt.Println(statusLabel(resp.Status))
	switch resp.Status {
	case protocol.StatusOK:
		c := geo.Centroid(resp.Vertices)
		fmt.Printf("%d vertices, area %s, centroid (%s, %s)\n", len(resp.Vertices),
			protocol.FormatFloat(geo.Area(resp.Vertices)),
			protocol.FormatFloat(c.X), protocol.FormatFloat(c.Y))
		for _, p := range resp.Vertices {
			fmt.Printf("  %s %s\n", protocol.FormatFloat(p.X), protocol.FormatFloat(p.Y))
		}
	case protocol.StatusFail:
		fmt.Println("The polygons do not intersect.")
	default:
		fmt.Println("The request could not be processed.")
	}
}

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Println(color.Red(fmt.Sprintf("ERRORS (%d):", len(r.Errors))).Bold())
		for _, e := range r.Errors {
			printResult(e)
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Println(color.Yellow(fmt.Sprintf("WARNINGS (%d):", len(r.Warnings))).Bold())
		for _, w := range r.Warnings {
			printResult(w)
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  %s\n", i)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: %s (%s)\n", color.Green("VALID"), r.Summary)
	} else {
		fmt.Printf("Result: %s (%s)\n", color.Red("INVALID"), r.Summary)
	}
}

func printResult(res validation.Result) {
	fmt.Printf("  %s\n", res)
	if res.ActualValue != nil {
		fmt.Printf("    -> %v\n", res.ActualValue)
	}
	if res.Expected != "" {
		fmt.Printf("    expected: %s\n", res.Expected)
	}
	for _, s := range res.Suggestions {
		fmt.Printf("    * %s\n", s)
	}
}
