package core

import (
	"bytes"
	"fmt"
	"io"
)

// Composition captures markup written between Begin and End and splices it into
// the shell on Finalize. A Composition belongs to a single request and must not
// be shared.
type Composition struct {
	options   *PageOptions
	fragment  *Fragment
	capture   *bytes.Buffer
	capturing bool
}

func NewComposition() *Composition {
	return &Composition{}
}

func (c *Composition) Begin(opts PageOptions) error {
	if c.capturing || c.options != nil {
		return fmt.Errorf("begin: %w", ErrCompositionOrder)
	}
	c.options = &opts
	c.capture = &bytes.Buffer{}
	c.capturing = true
	return nil
}

// Write appends page markup to the open capture scope.
func (c *Composition) Write(p []byte) (int, error) {
	if !c.capturing {
		return 0, fmt.Errorf("write: %w", ErrCompositionOrder)
	}
	return c.capture.Write(p)
}

func (c *Composition) End() error {
	if !c.capturing {
		return fmt.Errorf("end: %w", ErrCompositionOrder)
	}
	fragment := Fragment(c.capture.String())
	c.fragment = &fragment
	c.capture = nil
	c.capturing = false
	return nil
}

// Finalize writes the composed document. If options or fragment were never
// set nothing is written and ErrMissingComposition is returned.
func (c *Composition) Finalize(w io.Writer) error {
	if err := checkComposition(c.options != nil, c.fragment != nil); err != nil {
		return err
	}

	html, err := renderShell(*c.options, *c.fragment)
	if err != nil {
		return err
	}
	c.fragment = nil

	_, err = io.WriteString(w, html)
	return err
}
