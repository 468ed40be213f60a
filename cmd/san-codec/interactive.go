package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/lgbarn/sanmove-go/san"
)

// quitWords end an interactive session.
var quitWords = map[string]bool{"quit": true, "exit": true, "q": true}

// validateMove is the prompt validator: a move must parse, or be a quit word.
func validateMove(input string) error {
	input = strings.TrimSpace(input)
	if input == "" || quitWords[input] {
		return nil
	}
	_, err := san.Parse(input)
	return err
}

// describeMove writes a field-by-field breakdown of a parsed move.
func describeMove(w io.Writer, m san.Move) {
	row := func(label string, value interface{}) {
		fmt.Fprintf(w, "  %-11s %v\n", label+":", value)
	}

	row("san", m.String())
	switch k := m.Kind.(type) {
	case san.Castle:
		row("castle", k.Side)
	case san.Normal:
		row("piece", m.Piece)
		if !k.From.IsUnspecified() {
			row("from", k.From)
		}
		row("to", k.To)
		row("capture", m.Capture)
	}
	if m.IsPromotion() {
		row("promotion", m.Promotion)
	}
	if m.Check != san.NoCheck {
		row("check", m.Check)
	}
	if m.Annotation != san.NoAnnotation {
		row("annotation", m.Annotation)
	}
}

// runInteractive prompts for moves until the user quits or interrupts.
func runInteractive(w io.Writer) error {
	fmt.Fprintln(w, "Enter a move in SAN or LAN (quit to exit).")
	for {
		prompt := promptui.Prompt{
			Label:    "Move",
			Validate: validateMove,
		}
		input, err := prompt.Run()
		if stderrors.Is(err, promptui.ErrInterrupt) || stderrors.Is(err, promptui.ErrEOF) {
			return nil
		}
		if err != nil {
			return err
		}

		input = strings.TrimSpace(input)
		if quitWords[input] {
			return nil
		}
		if input == "" {
			continue
		}
		m, err := san.Parse(input)
		if err != nil {
			fmt.Fprintf(w, "  %v\n", err)
			continue
		}
		describeMove(w, m)
	}
}
