package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yigit/courseadmin/internal/pkg/apperrors"
	"github.com/yigit/courseadmin/internal/pkg/notify"
)

// toastPrinter shows notifications on the terminal.
type toastPrinter struct {
	mu     sync.Mutex
	w      io.Writer
	errors int
}

func (p *toastPrinter) Notify(n notify.Notification) {
	p.mu.Lock()
	defer p.mu.Unlock()

	mark := "•"
	switch n.Level {
	case notify.LevelSuccess:
		mark = "✓"
	case notify.LevelError:
		mark = "✗"
		p.errors++
	}
	fmt.Fprintf(p.w, "%s %s\n", mark, n.Message)
}

func (p *toastPrinter) failed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.errors > 0
}

func printTable(w io.Writer, headers []string, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// confirm asks a yes/no question unless --yes was given.
func confirm(c *cli.Context, question string) bool {
	if c.Bool("yes") {
		return true
	}
	fmt.Fprintf(c.App.Writer, "%s [y/N]: ", question)
	answer, _ := bufio.NewReader(c.App.Reader).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

func argID(c *cli.Context) (int64, error) {
	raw := c.Args().First()
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewBadRequestError(fmt.Sprintf("expected a record ID, got %q", raw))
	}
	return id, nil
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func optionalMoney(v *float64) string {
	if v == nil {
		return "-"
	}
	return money(*v)
}

func day(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return "-"
	}
	return t.In(loc).Format(time.DateOnly)
}

func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if r := []rune(s); len(r) > n {
		return string(r[:n-1]) + "…"
	}
	return s
}
