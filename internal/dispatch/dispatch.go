// Package dispatch sends one create-analytics request per stream identifier
// and reports each outcome on the console as soon as it is known.
//
// Streams are processed strictly one at a time, in input order. A failure
// for one stream is reported and the loop moves on; nothing is retried and
// no summary is produced.
package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/fpang/va-creator/internal/analytics"
	"github.com/fpang/va-creator/internal/grammar"
	"github.com/fpang/va-creator/internal/vaclient"
)

// Creator creates one analytics configuration. *vaclient.Client satisfies it.
type Creator interface {
	CreateAnalytics(ctx context.Context, t grammar.AnalyticsType, streamID int) error
}

// Outcome is the result of one stream's request. Err is nil on success.
type Outcome struct {
	StreamID int
	Err      error
}

// Options configures a Dispatcher.
type Options struct {
	// Out receives success lines, Err receives failure lines.
	Out io.Writer
	Err io.Writer

	// DryRun prints each request instead of sending it.
	DryRun bool
	// BaseURL is only used to label dry-run output.
	BaseURL string
}

// Dispatcher runs the per-stream request loop.
type Dispatcher struct {
	creator Creator
	opts    Options

	success *color.Color
	failure *color.Color
}

// New creates a Dispatcher that sends requests through creator.
// Each colour is dropped when its own writer is not a terminal.
func New(creator Creator, opts Options) *Dispatcher {
	return &Dispatcher{
		creator: creator,
		opts:    opts,
		success: colorFor(opts.Out, color.FgGreen),
		failure: colorFor(opts.Err, color.FgRed),
	}
}

func colorFor(w io.Writer, attr color.Attribute) *color.Color {
	c := color.New(attr)
	if !isTerminal(w) {
		c.DisableColor()
	}
	return c
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Run makes exactly one attempt per id, in order, and returns the outcomes
// in the same order.
func (d *Dispatcher) Run(ctx context.Context, ids []int, t grammar.AnalyticsType) []Outcome {
	logger := zerolog.Ctx(ctx)
	logger.Info().Int("streams", len(ids)).Str("type", t.String()).Bool("dryRun", d.opts.DryRun).Msg("Dispatching analytics requests")

	outcomes := make([]Outcome, 0, len(ids))
	for _, id := range ids {
		start := time.Now()

		var err error
		if d.opts.DryRun {
			err = d.preview(t, id)
		} else {
			err = d.creator.CreateAnalytics(ctx, t, id)
		}
		d.report(id, err)

		logger.Debug().Int("streamId", id).Dur("duration", time.Since(start)).Bool("ok", err == nil).Msg("Stream processed")
		outcomes = append(outcomes, Outcome{StreamID: id, Err: err})
	}
	return outcomes
}

// report prints the console line for one stream.
func (d *Dispatcher) report(id int, err error) {
	if err == nil {
		if !d.opts.DryRun {
			d.success.Fprintf(d.opts.Out, "Successfully created analytics for stream %d.\n", id)
		}
		return
	}

	var statusErr *vaclient.StatusError
	if errors.As(err, &statusErr) {
		d.failure.Fprintf(d.opts.Err, "Failed to create analytics for stream %d. HTTP status: %d\n", id, statusErr.StatusCode)
		fmt.Fprintf(d.opts.Err, "Response body: %s\n", statusErr.Body)
		return
	}
	d.failure.Fprintf(d.opts.Err, "Failed to create analytics for stream %d: %s\n", id, err.Error())
}

// preview writes the request that would be sent for one stream.
func (d *Dispatcher) preview(t grammar.AnalyticsType, id int) error {
	path, err := analytics.Endpoint(t)
	if err != nil {
		return err
	}
	payload, err := analytics.NewPayload(t, id)
	if err != nil {
		return err
	}
	body, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	fmt.Fprintf(d.opts.Out, "POST %s%s (stream %d)\n%s\n", d.opts.BaseURL, path, id, body)
	return nil
}
