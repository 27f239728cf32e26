// Command vtdemo runs a shell inside the vtscreen presentation engine,
// rendering it into the host terminal. It exists to exercise the core
// package against a real PTY and a real interactive program rather than as
// a production terminal emulator in its own right.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/creack/pty"
	"golang.org/x/term"

	"github.com/finchterm/vtscreen"
	"github.com/finchterm/vtscreen/internal/escseq"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("vtdemo: loading config: %v", err)
	}

	if cols, rows, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.Cols, cfg.Rows = cols, rows
	}

	screen := vtscreen.NewHistoryScreen(cfg.Cols, cfg.Rows, cfg.ScrollbackLines, cfg.ScrollbackRatio)

	renderer := newRenderer(screen, os.Stdout)
	defer renderer.close()

	cmd := exec.Command(cfg.Shell)
	cmd.Env = append(os.Environ(), "TERM=xterm-256color", "COLORTERM=truecolor")

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Cols: uint16(cfg.Cols), Rows: uint16(cfg.Rows)})
	if err != nil {
		log.Fatalf("vtdemo: starting pty: %v", err)
	}
	defer ptmx.Close()

	screen.SetWriteHook(func(data string) {
		_, _ = ptmx.WriteString(data)
	})
	screen.SetBellHook(func() {
		fmt.Fprint(os.Stderr, "\a")
	})

	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		log.Fatalf("vtdemo: entering raw mode: %v", err)
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)

	sigwinch := make(chan os.Signal, 1)
	signal.Notify(sigwinch, syscall.SIGWINCH)
	go func() {
		for range sigwinch {
			cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
			if err != nil {
				continue
			}
			screen.Resize(rows, cols)
			_ = pty.Setsize(ptmx, &pty.Winsize{Cols: uint16(cols), Rows: uint16(rows)})
			renderer.requestRender()
		}
	}()

	parser := escseq.NewParser(screen)

	go renderer.loop()

	outputDone := make(chan struct{})
	go func() {
		defer close(outputDone)
		buf := make([]byte, 4096)
		for {
			n, err := ptmx.Read(buf)
			if n > 0 {
				parser.Parse(buf[:n])
				renderer.requestRender()
			}
			if err != nil {
				return
			}
		}
	}()

	go copyInput(ptmx, screen)

	if err := cmd.Wait(); err != nil {
		if _, ok := err.(*exec.ExitError); !ok {
			log.Printf("vtdemo: command wait: %v", err)
		}
	}
	<-outputDone
}

// copyInput forwards raw keystrokes to the pty, intercepting the scrollback
// paging keys (PageUp/PageDown) so they drive the HistoryScreen directly
// instead of reaching the shell.
func copyInput(w io.Writer, screen *vtscreen.HistoryScreen) {
	buf := make([]byte, 4096)
	for {
		n, err := os.Stdin.Read(buf)
		if n > 0 {
			writeFiltered(w, screen, buf[:n])
		}
		if err != nil {
			return
		}
	}
}

const (
	seqPageUp   = "\x1b[5~"
	seqPageDown = "\x1b[6~"
)

func writeFiltered(w io.Writer, screen *vtscreen.HistoryScreen, data []byte) {
	s := string(data)
	for len(s) > 0 {
		switch {
		case len(s) >= len(seqPageUp) && s[:len(seqPageUp)] == seqPageUp:
			screen.PrevPage()
			s = s[len(seqPageUp):]
		case len(s) >= len(seqPageDown) && s[:len(seqPageDown)] == seqPageDown:
			screen.NextPage()
			s = s[len(seqPageDown):]
		default:
			_, _ = w.Write([]byte{s[0]})
			s = s[1:]
		}
	}
}
