package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/airnav-tools/nasr/internal/assemble"
	"github.com/airnav-tools/nasr/internal/checksum"
	"github.com/airnav-tools/nasr/internal/distribution"
	"github.com/airnav-tools/nasr/pkg/nasr"
)

// Controller runs parse passes. It owns no per-run state and may be reused;
// each Run gets fresh parsers from the caller.
type Controller struct {
	dist     nasr.Distribution
	logger   nasr.Logger
	approver nasr.RowApprover
	progress nasr.Progress
	sums     checksum.Calculator
}

// New creates a controller. All three dependencies are required.
func New(dist nasr.Distribution, logger nasr.Logger, approver nasr.RowApprover) *Controller {
	if dist == nil {
		panic("pipeline: Controller requires a distribution")
	}
	if logger == nil {
		panic("pipeline: Controller requires a logger")
	}
	if approver == nil {
		panic("pipeline: Controller requires a row approver")
	}
	return &Controller{
		dist:     dist,
		logger:   logger,
		approver: approver,
		sums:     checksum.New(),
	}
}

// OnProgress installs a per-row progress callback. Pass nil to disable.
// The callback is invoked from the record type's own goroutine.
func (c *Controller) OnProgress(fn nasr.Progress) {
	c.progress = fn
}

// ParsersFor builds the parser set for the requested record types, in
// request order. Empty means all implemented types.
func ParsersFor(types []nasr.RecordType, dist nasr.Distribution) []assemble.RecordParser {
	if len(types) == 0 {
		types = nasr.AllRecordTypes
	}
	parsers := make([]assemble.RecordParser, 0, len(types))
	for _, rt := range types {
		switch rt {
		case nasr.RecordTypeAirports:
			parsers = append(parsers, assemble.NewAirportParser(dist))
		case nasr.RecordTypeARTCCs:
			parsers = append(parsers, assemble.NewARTCCParser(dist))
		case nasr.RecordTypeFSSes:
			parsers = append(parsers, assemble.NewFSSParser(dist))
		case nasr.RecordTypeWeatherStations:
			parsers = append(parsers, assemble.NewWeatherStationParser())
		}
	}
	return parsers
}

// Run parses every record type concurrently and publishes each type's
// collection into data as its pass finishes. The returned summary always
// covers all requested types; the error joins the per-type failures, so a
// non-nil error still comes with usable partial data.
func (c *Controller) Run(ctx context.Context, data *nasr.Data, parsers []assemble.RecordParser) (*Summary, error) {
	summary := &Summary{
		RunID:   uuid.NewString(),
		Cycle:   data.Cycle,
		Started: time.Now(),
		Types:   make([]TypeSummary, len(parsers)),
	}

	c.logger.Info("parse run %s: %d record types", summary.RunID, len(parsers))

	var wg sync.WaitGroup
	for i, p := range parsers {
		wg.Add(1)
		go func(i int, p assemble.RecordParser) {
			defer wg.Done()
			summary.Types[i] = c.runType(ctx, data, p)
		}(i, p)
	}
	wg.Wait()
	summary.Finished = time.Now()

	var errs []error
	for _, ts := range summary.Types {
		if ts.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", ts.Type, ts.Err))
		}
	}
	return summary, errors.Join(errs...)
}

// runType is one record type's pass: stream every file, then publish.
func (c *Controller) runType(ctx context.Context, data *nasr.Data, p assemble.RecordParser) TypeSummary {
	ts := TypeSummary{Type: p.RecordType()}

	for _, file := range p.Files() {
		ts.Checksums = append(ts.Checksums, c.checksumFile(file))
		if !c.runFile(ctx, p, file, &ts) {
			break
		}
	}

	// Publication is unconditional: records assembled before an abort are
	// still data the caller asked for.
	if err := p.Finish(data); err != nil && ts.Err == nil {
		ts.Err = err
	}
	ts.Records = p.Records()
	ts.Replaced = p.Replaced()

	if ts.Err != nil {
		c.logger.Error("%s: pass stopped after %d rows: %v", ts.Type, ts.Rows, ts.Err)
	} else {
		c.logger.Info("%s: %d records from %d rows (%d skipped, %d replaced)",
			ts.Type, ts.Records, ts.Rows, ts.Skipped, ts.Replaced)
	}
	return ts
}

// runFile streams one file through the parser. It returns false when the
// pass must not continue to the type's next file.
func (c *Controller) runFile(ctx context.Context, p assemble.RecordParser, file string, ts *TypeSummary) bool {
	totalBytes, err := c.dist.Size(file)
	if err != nil {
		totalBytes = 0
	}

	f, err := c.dist.Open(file)
	if err != nil {
		ts.Err = err
		ts.Aborted = true
		return false
	}
	defer f.Close()

	c.logger.Verbose("%s: streaming %s (%d bytes)", p.RecordType(), file, totalBytes)
	p.BeginFile(file)
	src := distribution.NewLineSource(f)

	for {
		line, err := src.Next(ctx)
		if err == io.EOF {
			return true
		}
		if err != nil {
			ts.Err = err
			ts.Aborted = true
			return false
		}
		ts.Rows++

		if perr := p.ParseLine(ctx, line); perr != nil {
			if Classify(perr) == SeverityFatal {
				ts.Err = perr
				ts.Aborted = true
				return false
			}

			rowErr := fmt.Errorf("%s row %d: %w", file, ts.Rows, perr)
			c.logger.Error("%s: %v", p.RecordType(), rowErr)

			cont, aerr := c.approver.ContinueAfter(ctx, rowErr)
			if aerr != nil {
				ts.Err = aerr
				ts.Aborted = true
				return false
			}
			if !cont {
				ts.Err = fmt.Errorf("stopped at %s row %d: %w", file, ts.Rows, nasr.ErrParseAborted)
				ts.Aborted = true
				return false
			}
			ts.Skipped++
		}

		if c.progress != nil {
			c.progress(p.RecordType(), ts.Rows, src.BytesRead(), totalBytes)
		}
	}
}

// checksumFile hashes one input file for the summary. A file that cannot be
// read reports empty checksums; the parse pass surfaces the real error.
func (c *Controller) checksumFile(file string) FileChecksum {
	fc := FileChecksum{File: file}
	f, err := c.dist.Open(file)
	if err != nil {
		return fc
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		return fc
	}
	fc.Raw = c.sums.CalculateRaw(content)
	fc.Normalized = c.sums.CalculateNormalized(content)
	return fc
}
