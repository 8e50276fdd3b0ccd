package lesson

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/hello-gl/internal/engine/input"
	"github.com/Faultbox/hello-gl/internal/logger"
)

// ErrUnknownLesson is returned when a lesson name or index is not registered.
var ErrUnknownLesson = errors.New("unknown lesson")

const none = -1

// Manager owns the registered lessons and switches between them.
// A change requested with Change takes effect at the next Update.
type Manager struct {
	env     *Env
	lessons []Lesson
	current int
	next    int
	log     *zap.Logger
}

// NewManager creates a manager over lessons. No lesson is current until the
// first Change is applied.
func NewManager(env *Env, lessons ...Lesson) *Manager {
	return &Manager{
		env:     env,
		lessons: lessons,
		current: none,
		next:    none,
		log:     logger.Named("lesson"),
	}
}

// Names returns the registered lesson names in order.
func (m *Manager) Names() []string {
	names := make([]string, len(m.lessons))
	for i, l := range m.lessons {
		names[i] = l.Name()
	}
	return names
}

// Index returns the position of the named lesson.
func (m *Manager) Index(name string) (int, error) {
	for i, l := range m.lessons {
		if l.Name() == name {
			return i, nil
		}
	}
	return none, fmt.Errorf("%w: %q", ErrUnknownLesson, name)
}

// Current returns the current lesson, or nil.
func (m *Manager) Current() Lesson {
	if m.current == none {
		return nil
	}
	return m.lessons[m.current]
}

// Change schedules a switch to the named lesson.
func (m *Manager) Change(name string) error {
	i, err := m.Index(name)
	if err != nil {
		return err
	}
	m.next = i
	return nil
}

// ChangeIndex schedules a switch to the lesson at position i.
func (m *Manager) ChangeIndex(i int) error {
	if i < 0 || i >= len(m.lessons) {
		return fmt.Errorf("%w: index %d", ErrUnknownLesson, i)
	}
	m.next = i
	return nil
}

// Update applies a pending change and updates the current lesson.
// Switching to the lesson that is already current is a no-op.
func (m *Manager) Update(dt float32) error {
	if m.next != none {
		next := m.next
		m.next = none
		if next != m.current {
			if err := m.switchTo(next); err != nil {
				return err
			}
		}
	}

	if l := m.Current(); l != nil {
		return l.Update(dt)
	}
	return nil
}

func (m *Manager) switchTo(next int) error {
	if l := m.Current(); l != nil {
		m.current = none
		if err := l.Exit(); err != nil {
			return fmt.Errorf("exiting lesson %q: %w", l.Name(), err)
		}
	}

	l := m.lessons[next]
	if err := l.Enter(m.env); err != nil {
		return fmt.Errorf("entering lesson %q: %w", l.Name(), err)
	}
	m.current = next
	m.log.Info("lesson entered", zap.String("lesson", l.Name()), zap.Int("index", next+1))
	return nil
}

// Render renders the current lesson.
func (m *Manager) Render(f *Frame) error {
	if l := m.Current(); l != nil {
		return l.Render(f)
	}
	return nil
}

// HandleEvent forwards an event to the current lesson.
func (m *Manager) HandleEvent(e input.Event) {
	if l := m.Current(); l != nil {
		l.HandleEvent(e)
	}
}

// Reload passes changed shader paths to the current lesson if it can reload.
func (m *Manager) Reload(changed []string) {
	if len(changed) == 0 {
		return
	}
	if r, ok := m.Current().(Reloader); ok {
		r.Reload(changed)
	}
}

// Close exits the current lesson.
func (m *Manager) Close() error {
	l := m.Current()
	if l == nil {
		return nil
	}
	m.current = none
	return l.Exit()
}
