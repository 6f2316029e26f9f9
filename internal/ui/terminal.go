package ui

import (
	"fmt"
	"io"
)

type TerminalDisplay struct {
	w io.Writer
}

func NewTerminalDisplay(w io.Writer) *TerminalDisplay {
	return &TerminalDisplay{w: w}
}

func (d *TerminalDisplay) Show(text string) error {
	_, err := fmt.Fprintln(d.w, text)
	return err
}
