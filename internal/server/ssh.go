package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"sync"
	"unicode/utf8"

	"github.com/gliderlabs/ssh"

	"sprite-gen/internal/masks"
	"sprite-gen/internal/render"
	"sprite-gen/internal/sprite"
)

// ErrNoTemplates is returned by Start when the server has nothing to show.
var ErrNoTemplates = errors.New("server: no templates")

// SSHServer serves the interactive sprite preview over SSH.
type SSHServer struct {
	addr      string
	hostKey   string
	templates []*masks.Mask
}

// NewSSHServer creates a new SSH server bound to the given address.
func NewSSHServer(addr string, hostKey string, templates []*masks.Mask) *SSHServer {
	return &SSHServer{
		addr:      addr,
		hostKey:   hostKey,
		templates: templates,
	}
}

// Start begins listening for SSH connections.
func (s *SSHServer) Start() error {
	if len(s.templates) == 0 {
		return ErrNoTemplates
	}

	server := &ssh.Server{
		Addr: s.addr,
		Handler: func(sess ssh.Session) {
			s.handleSession(sess)
		},
	}

	// Set host key
	if err := server.SetOption(ssh.HostKeyFile(s.hostKey)); err != nil {
		return fmt.Errorf("set host key: %w", err)
	}

	log.Printf("SSH server listening on %s", s.addr)
	return server.ListenAndServe()
}

func (s *SSHServer) handleSession(sess ssh.Session) {
	// Require PTY
	ptyReq, winCh, ok := sess.Pty()
	if !ok {
		fmt.Fprintln(sess, "Error: PTY required. Use: ssh -t ...")
		return
	}

	username := sess.User()
	if username == "" {
		username = "Anonymous"
	}
	log.Printf("Viewer connected: %s (%s)", username, sess.RemoteAddr())
	defer log.Printf("Viewer disconnected: %s", username)

	state := NewDrawingState(s.templates, rand.Uint64())

	// Terminal dimensions
	termW := ptyReq.Window.Width
	termH := ptyReq.Window.Height
	var termMu sync.Mutex

	// Create renderer
	engine := render.NewEngine(termW, termH)

	// Setup terminal
	io.WriteString(sess, render.EnableAltScreen())
	io.WriteString(sess, render.HideCursor())
	io.WriteString(sess, render.ClearScreen())
	defer func() {
		io.WriteString(sess, render.ShowCursor())
		io.WriteString(sess, render.DisableAltScreen())
	}()

	inputCh := make(chan Action, 16)
	redrawCh := make(chan struct{}, 1)
	quitCh := make(chan struct{})

	// Goroutine: read input
	go func() {
		buf := make([]byte, 64)
		for {
			n, err := sess.Read(buf)
			if err != nil {
				close(quitCh)
				return
			}
			for _, action := range parseInput(buf[:n]) {
				if action == ActionQuit {
					close(quitCh)
					return
				}
				select {
				case inputCh <- action:
				default:
				}
			}
		}
	}()

	// Goroutine: handle window resizes
	go func() {
		for win := range winCh {
			termMu.Lock()
			termW = win.Width
			termH = win.Height
			termMu.Unlock()
			select {
			case redrawCh <- struct{}{}:
			default:
			}
		}
	}()

	ctx := sess.Context()
	var sprites []*sprite.Sprite
	regenerate := true

	// Main render loop: redraw after input or resize
	for {
		termMu.Lock()
		w, h := termW, termH
		termMu.Unlock()

		if regenerate {
			var err error
			sprites, err = s.generate(ctx, state, w, h)
			if err != nil {
				log.Printf("Generate for %s: %v", username, err)
			}
			regenerate = false
		}

		output := engine.Render(render.Frame{
			Title:   state.Title(),
			Mask:    state.Mask.Grid,
			CursorX: state.CursorX,
			CursorY: state.CursorY,
			Sprites: sprites,
			Clear:   true,
			Status:  state.Status(),
		}, w, h)
		if len(output) > 0 {
			io.WriteString(sess, output)
		}

		select {
		case <-quitCh:
			return
		case <-ctx.Done():
			return
		case action := <-inputCh:
			regenerate = state.Apply(action, rand.Uint64)
		case <-redrawCh:
			// A new size can fit a different number of sprites.
			regenerate = true
		}
	}
}

// generate fills the gallery for the current terminal size.
func (s *SSHServer) generate(ctx context.Context, state *DrawingState, termW, termH int) ([]*sprite.Sprite, error) {
	cells := state.Mask.Cells()
	w, h := sprite.OutputSize(len(cells), state.Mask.Width, state.Options)
	layout := render.NewLayout(termW, termH, state.Mask.Width, state.Mask.Height, w, h)
	return sprite.GenerateBatch(ctx, cells, state.Mask.Width, state.Options, layout.Capacity())
}

// parseInput converts raw bytes into viewer actions.
// Handles arrow key escape sequences, the command letters, digits 1-4,
// Q, and Ctrl-C.
func parseInput(data []byte) []Action {
	var actions []Action
	i := 0
	for i < len(data) {
		// Check for escape sequences (arrow keys)
		if i+2 < len(data) && data[i] == 0x1b && data[i+1] == '[' {
			switch data[i+2] {
			case 'A':
				actions = append(actions, ActionUp)
			case 'B':
				actions = append(actions, ActionDown)
			case 'C':
				actions = append(actions, ActionRight)
			case 'D':
				actions = append(actions, ActionLeft)
			}
			i += 3
			continue
		}

		// Single byte inputs
		r, size := utf8.DecodeRune(data[i:])
		switch r {
		case ' ', 'r', 'R':
			actions = append(actions, ActionReroll)
		case 'x', 'X':
			actions = append(actions, ActionMirrorX)
		case 'y', 'Y':
			actions = append(actions, ActionMirrorY)
		case 'c', 'C':
			actions = append(actions, ActionColored)
		case 'n', 'N':
			actions = append(actions, ActionNextTemplate)
		case 'p', 'P':
			actions = append(actions, ActionPrevTemplate)
		case '+', '=':
			actions = append(actions, ActionMoreVariation)
		case '-', '_':
			actions = append(actions, ActionLessVariation)
		case '1':
			actions = append(actions, ActionToolEmpty)
		case '2':
			actions = append(actions, ActionToolSolid)
		case '3':
			actions = append(actions, ActionToolBody1)
		case '4':
			actions = append(actions, ActionToolBody2)
		case 'q', 'Q':
			actions = append(actions, ActionQuit)
		case 3: // Ctrl-C
			actions = append(actions, ActionQuit)
		}
		i += size
	}
	return actions
}
