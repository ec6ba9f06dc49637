package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/viper"
)

// friendlyError is implemented by errors that can render a source snippet.
type friendlyError interface {
	FriendlyErrorMessage() string
}

// fatal prints the error to stderr, with the source snippet and caret when
// available, and returns it so the process exits nonzero.
func fatal(err error) error {
	message := err.Error()
	if friendly, ok := err.(friendlyError); ok {
		message = friendly.FriendlyErrorMessage()
	}
	if viper.GetBool("no-color") {
		color.NoColor = true
	}
	fmt.Fprintln(os.Stderr, color.RedString(message))
	return err
}

func stdinIsTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
