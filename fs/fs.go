// Package fs delivers rendered report forms to standard output or a file.
package fs

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/amati"
)

// Interface compliance check.
var _ amati.Sink = (*Sink)(nil)

// Sink writes forms to Stdout when the destination is empty, or to a newly
// created (truncated) file otherwise.
type Sink struct {
	Stdout io.Writer
	// Create opens a destination for writing. Defaults to os.Create.
	Create func(name string) (io.WriteCloser, error)
}

// NewSink creates a Sink writing standard-output forms to stdout.
func NewSink(stdout io.Writer) *Sink {
	return &Sink{Stdout: stdout}
}

// Deliver writes forms in order. Standard output receives each form's text
// followed by a newline; a file receives each form's bytes back to back. The
// file is closed on every path. Errors wrap amati.ErrIO.
func (s *Sink) Deliver(forms []amati.OutputForm, destination string) error {
	if destination == "" {
		return s.deliverStdout(forms)
	}
	return s.deliverFile(forms, destination)
}

func (s *Sink) deliverStdout(forms []amati.OutputForm) error {
	w := s.Stdout
	if w == nil {
		w = os.Stdout
	}
	for _, f := range forms {
		if _, err := fmt.Fprintln(w, f.String()); err != nil {
			return fmt.Errorf("write stdout: %w: %w", err, amati.ErrIO)
		}
	}
	return nil
}

func (s *Sink) deliverFile(forms []amati.OutputForm, path string) (err error) {
	create := s.Create
	if create == nil {
		create = func(name string) (io.WriteCloser, error) { return os.Create(name) }
	}
	f, err := create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w: %w", path, err, amati.ErrIO)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w: %w", path, cerr, amati.ErrIO)
		}
	}()

	w := bufio.NewWriter(f)
	for _, form := range forms {
		if _, err := w.Write(form.Bytes()); err != nil {
			return fmt.Errorf("write %s: %w: %w", path, err, amati.ErrIO)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write %s: %w: %w", path, err, amati.ErrIO)
	}
	return nil
}
