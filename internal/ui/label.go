package ui

import (
	"sync"

	"github.com/pkg/errors"
)

type State int

const (
	Loading State = iota
	Displayed
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Displayed:
		return "displayed"
	default:
		return "unknown"
	}
}

const LoadingText = "Loading..."

var (
	ErrAlreadyDisplayed = errors.New("label already displayed")
	ErrLoopStopped      = errors.New("main loop stopped")
)

// Display is a surface that shows a single line of text. Show runs on the
// main loop and must not block on I/O.
type Display interface {
	Show(text string) error
}

type DisplayFunc func(text string) error

func (f DisplayFunc) Show(text string) error {
	return f(text)
}

// Label is the text element of a screen. It moves from Loading to Displayed
// exactly once.
type Label struct {
	mu        sync.Mutex
	display   Display
	state     State
	text      string
	displayed chan struct{}
}

func NewLabel(display Display) *Label {
	return &Label{
		display:   display,
		state:     Loading,
		text:      LoadingText,
		displayed: make(chan struct{}),
	}
}

// Open shows the loading text.
func (l *Label) Open() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state == Displayed {
		return ErrAlreadyDisplayed
	}

	return errors.Wrap(l.display.Show(l.text), "show loading")
}

func (l *Label) SetText(text string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state == Displayed {
		return ErrAlreadyDisplayed
	}

	l.state = Displayed
	l.text = text
	err := l.display.Show(text)
	close(l.displayed)

	return errors.Wrap(err, "show text")
}

func (l *Label) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.state
}

func (l *Label) Text() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.text
}

// Displayed is closed once the label leaves Loading.
func (l *Label) Displayed() <-chan struct{} {
	return l.displayed
}
