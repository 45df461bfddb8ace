package navbar

import (
	"strconv"
	"sync"
)

// autoIDPrefix is the prefix of generated ids, followed by the counter value.
const autoIDPrefix = "w"

// Scope owns the id counter and the stack of open navbars.
//
// A Scope is meant to live as long as one render sequence, e.g. one http
// request. The package level functions use a shared default scope.
type Scope struct {
	mu      sync.Mutex
	counter int
	open    []frame
}

// frame is an open navbar waiting for End.
type frame struct {
	navbar NavBar
	id     string
	items  string
}

var defaultScope = NewScope() //nolint:gochecknoglobals

// NewScope creates an empty scope with the counter at 0.
func NewScope() *Scope {
	return &Scope{}
}

// Default returns the package level scope.
func Default() *Scope {
	return defaultScope
}

// New returns a navbar bound to the default scope.
func New() NavBar {
	return defaultScope.New()
}

// End closes the most recently opened navbar of the default scope.
func End() (string, error) {
	return defaultScope.End()
}

// Counter sets the counter of the default scope.
func Counter(n int) {
	defaultScope.Counter(n)
}

// New returns a navbar with default settings bound to s.
func (s *Scope) New() NavBar {
	return NavBar{
		scope:            s,
		brandLink:        "/",
		loadDefaultTheme: true,
		activateItems:    true,
	}
}

// Counter sets the next auto id number.
func (s *Scope) Counter(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counter = n
}

// Count returns the next auto id number.
func (s *Scope) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.counter
}

// Reset sets the counter back to 0.
func (s *Scope) Reset() {
	s.Counter(0)
}

// Open returns the number of navbars waiting for End.
func (s *Scope) Open() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.open)
}

// End pops the most recently opened navbar and renders its closing markup.
func (s *Scope) End() (string, error) {
	s.mu.Lock()

	if len(s.open) == 0 {
		s.mu.Unlock()
		return "", ErrEndWithoutBegin
	}

	f := s.open[len(s.open)-1]
	s.open = s.open[:len(s.open)-1]
	s.mu.Unlock()

	return f.navbar.renderFooter(f.id, f.items), nil
}

// nextID returns a new auto id and increments the counter.
func (s *Scope) nextID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := autoIDPrefix + strconv.Itoa(s.counter)
	s.counter++

	return id
}

func (s *Scope) push(f frame) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.open = append(s.open, f)
}
