// Package loader reads comma-delimited course files into a catalog tree.
//
// The file format is one course per line: number, title, then zero or more
// prerequisite course numbers. Malformed lines are reported and skipped;
// only total source inaccessibility aborts a load.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"courseplanner/internal/catalog"
)

// ErrSourceUnavailable is returned when the course data source cannot be
// opened or read. The target tree is left empty in that case, including
// when a read fails partway through; a load never half-populates the tree.
var ErrSourceUnavailable = errors.New("course data source unavailable")

// Kind classifies a per-line diagnostic.
type Kind string

const (
	// KindFormat marks a line with fewer than two fields.
	KindFormat Kind = "format_error"
	// KindMissingField marks a line whose course number or title is empty
	// after trimming.
	KindMissingField Kind = "missing_field"
)

// Diagnostic describes one skipped line. Skipped lines never stop a load.
type Diagnostic struct {
	Line    int
	Kind    Kind
	Raw     string
	Message string
}

// Result summarizes a completed load.
type Result struct {
	// LoadID correlates log entries belonging to one load operation.
	LoadID string
	// Source is the file path, empty when loading from a plain reader.
	Source      string
	LinesRead   int
	Loaded      int
	Skipped     int
	Diagnostics []Diagnostic
	Duration    time.Duration
}

// Loader parses course files and populates a catalog tree.
type Loader struct {
	logger *zap.Logger
}

// New returns a Loader that logs through the given logger.
// A nil logger disables logging.
func New(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{logger: logger}
}

// Load clears the tree, then reads the named file into it. The clear happens
// before the file is opened, so a missing file leaves the tree empty rather
// than holding stale entries from a previous load.
func (l *Loader) Load(path string, tree *catalog.Tree) (*Result, error) {
	tree.Clear()

	f, err := os.Open(path)
	if err != nil {
		l.logger.Warn("course file not readable",
			zap.String("path", path),
			zap.Error(err))
		return nil, fmt.Errorf("%w: open %s: %v", ErrSourceUnavailable, path, err)
	}
	defer f.Close()

	res, err := l.scan(f, tree)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrSourceUnavailable, path, err)
	}
	res.Source = path

	l.logger.Info("course load complete",
		zap.String("load_id", res.LoadID),
		zap.String("path", path),
		zap.Int("loaded", res.Loaded),
		zap.Int("skipped", res.Skipped),
		zap.Duration("duration", res.Duration))
	return res, nil
}

// LoadReader clears the tree, then reads course lines from r into it. A read
// failure reports ErrSourceUnavailable and leaves the tree empty.
func (l *Loader) LoadReader(r io.Reader, tree *catalog.Tree) (*Result, error) {
	tree.Clear()
	res, err := l.scan(r, tree)
	if err != nil {
		return nil, fmt.Errorf("%w: read: %v", ErrSourceUnavailable, err)
	}
	return res, nil
}

func (l *Loader) scan(r io.Reader, tree *catalog.Tree) (*Result, error) {
	start := time.Now()
	res := &Result{LoadID: uuid.NewString()}

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		raw := sc.Text()
		if strings.TrimSpace(raw) == "" {
			continue
		}
		res.LinesRead++

		course, diag := parseLine(raw)
		if diag != nil {
			diag.Line = lineNo
			res.Skipped++
			res.Diagnostics = append(res.Diagnostics, *diag)
			l.logger.Warn("skipping course line",
				zap.String("load_id", res.LoadID),
				zap.Int("line", lineNo),
				zap.String("kind", string(diag.Kind)),
				zap.String("raw", raw))
			continue
		}

		tree.Insert(course)
		res.Loaded++
	}

	if err := sc.Err(); err != nil {
		// A failed read must not leave behind whatever was inserted before
		// the failure.
		tree.Clear()
		l.logger.Warn("course scan failed",
			zap.String("load_id", res.LoadID),
			zap.Int("line", lineNo),
			zap.Error(err))
		return nil, err
	}

	res.Duration = time.Since(start)
	return res, nil
}

// parseLine splits one raw line into a course. A non-nil diagnostic means the
// line must be skipped; its Line field is filled in by the caller.
func parseLine(raw string) (catalog.Course, *Diagnostic) {
	fields := strings.Split(raw, ",")
	if len(fields) < 2 {
		return catalog.Course{}, &Diagnostic{
			Kind:    KindFormat,
			Raw:     raw,
			Message: "fewer than two fields",
		}
	}

	number := strings.ToUpper(strings.TrimSpace(fields[0]))
	title := strings.TrimSpace(fields[1])
	if number == "" || title == "" {
		return catalog.Course{}, &Diagnostic{
			Kind:    KindMissingField,
			Raw:     raw,
			Message: "missing course number or title",
		}
	}

	var prereqs []string
	for _, field := range fields[2:] {
		p := strings.ToUpper(strings.TrimSpace(field))
		if p != "" {
			prereqs = append(prereqs, p)
		}
	}

	return catalog.Course{
		Number:        number,
		Title:         title,
		Prerequisites: prereqs,
	}, nil
}
