package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
)

func printTable(title string, headers []string, rows [][]any) {
	if title != "" {
		fmt.Println(title)
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(headers, "\t"))

	seps := make([]string, len(headers))
	for i, h := range headers {
		seps[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(w, strings.Join(seps, "\t"))

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = cellString(v)
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	w.Flush()
}

func cellString(v any) string {
	switch t := v.(type) {
	case float64:
		return fmt.Sprintf("%.2f", t)
	case bool:
		if t {
			return "yes"
		}
		return "no"
	default:
		return fmt.Sprint(v)
	}
}

func printPanel(title string, lines ...string) {
	fmt.Println("== " + title + " ==")
	for _, l := range lines {
		fmt.Println("  " + l)
	}
}

func money(v float64) string { return fmt.Sprintf("$%.2f", v) }
