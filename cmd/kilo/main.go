// Command kilo is a modal-free, terminal-resident text editor. Argument
// parsing, the startup banner, and process wiring are deliberately
// trivial; all editing logic lives in the editor, buffer, syntax, key
// and term packages.
package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"

	"github.com/mbrdg/kilo-go/editor"
	"github.com/mbrdg/kilo-go/term"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).
		With().Timestamp().Logger()

	flag.Usage = func() {
		os.Stderr.WriteString("usage: kilo [path]\n")
	}
	flag.Parse()
	filename := flag.Arg(0)

	t := term.New(int(os.Stdin.Fd()))
	if err := t.EnterRaw(); err != nil {
		log.Fatal().Err(err).Msg("enter raw mode")
	}
	defer func() {
		if err := t.LeaveRaw(); err != nil {
			log.Error().Err(err).Msg("restore terminal")
		}
	}()

	ed, err := editor.New(t)
	if err != nil {
		die(t, log, err)
	}

	if filename != "" {
		if err := ed.OpenFile(filename); err != nil {
			die(t, log, err)
		}
	}

	ed.SetStatusMessage("HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find")

	if err := ed.RunLoop(); err != nil {
		die(t, log, err)
	}
}

// die clears the screen so a fatal error never leaves the terminal in a
// corrupted state, restores cooked mode, prints the error, and exits
// non-zero.
func die(t *term.Terminal, log zerolog.Logger, err error) {
	t.ClearScreen()
	_ = t.LeaveRaw()
	log.Error().Err(err).Msg("fatal error")
	os.Exit(1)
}
