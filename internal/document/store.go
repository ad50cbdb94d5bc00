package document

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jonathan/cv-builder/internal/types"
)

// Listener is notified after every dispatch with the committed document and the action that produced it.
// Listeners run on the dispatching goroutine, in dispatch order, and must not dispatch themselves.
type Listener func(cv types.CvData, action Action)

// Store is the single source of truth for one editing session.
// All mutations go through Dispatch and are applied one at a time by Reduce.
type Store struct {
	dispatchMu sync.Mutex // serializes reduce + notify
	stateMu    sync.RWMutex
	state      types.CvData
	version    uint64

	listenersMu  sync.RWMutex
	listeners    []subscription
	nextListener uint64

	newID  func() string
	logger zerolog.Logger
}

// Option configures a Store
type Option func(*Store)

// WithIDGenerator overrides the generator used for section ids
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithLogger sets the logger used for dispatch tracing
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// NewID returns a fresh random identifier
func NewID() string {
	return uuid.NewString()
}

// NewStore creates a store holding initial
func NewStore(initial types.CvData, opts ...Option) *Store {
	s := &Store{
		state:     initial,
		newID:     NewID,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewSessionStore creates a store holding a freshly seeded document
func NewSessionStore(opts ...Option) *Store {
	s := NewStore(types.CvData{}, opts...)
	s.state = Seed(s.newID)
	return s
}

// Snapshot returns the current document
func (s *Store) Snapshot() types.CvData {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.state
}

// Version returns the number of dispatches applied so far
func (s *Store) Version() uint64 {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.version
}

type subscription struct {
	id uint64
	fn Listener
}

// Subscribe registers a listener and returns a function that removes it
func (s *Store) Subscribe(fn Listener) func() {
	s.listenersMu.Lock()
	id := s.nextListener
	s.nextListener++
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})
	s.listenersMu.Unlock()

	return func() {
		s.listenersMu.Lock()
		defer s.listenersMu.Unlock()
		for i, sub := range s.listeners {
			if sub.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// Dispatch applies an action and returns the committed document.
// Entries carried by the action are copied first so later caller mutation cannot reach the store.
func (s *Store) Dispatch(action Action) types.CvData {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()
	return s.dispatchLocked(action)
}

func (s *Store) dispatchLocked(action Action) types.CvData {
	s.stateMu.RLock()
	current := s.state
	s.stateMu.RUnlock()

	action = s.prepare(current, action)
	next := Reduce(current, action)

	s.stateMu.Lock()
	s.state = next
	s.version++
	version := s.version
	s.stateMu.Unlock()

	s.logger.Debug().
		Str("action", action.Name()).
		Uint64("version", version).
		Int("sections", len(next.Sections)).
		Msg("document updated")

	s.notify(next, action)
	return next
}

// prepare copies caller-owned data and makes sure added sections carry an unused id
func (s *Store) prepare(current types.CvData, action Action) Action {
	switch a := action.(type) {
	case AddSection:
		a.Section.Entries = types.CloneEntries(a.Section.Entries)
		if a.Section.Entries == nil {
			a.Section.Entries = []types.Entry{}
		}
		if a.Section.ID == "" || s.idTaken(current, a.Section.ID) {
			requested := a.Section.ID
			a.Section.ID = s.uniqueID(current)
			if requested != "" {
				s.logger.Warn().
					Str("requested_id", requested).
					Str("assigned_id", a.Section.ID).
					Msg("section id already in use, assigned a new one")
			}
		}
		return a
	case UpdateSectionEntries:
		a.Entries = types.CloneEntries(a.Entries)
		if a.Entries == nil {
			a.Entries = []types.Entry{}
		}
		return a
	default:
		return action
	}
}

func (s *Store) idTaken(cv types.CvData, id string) bool {
	_, idx := cv.SectionByID(id)
	return idx >= 0
}

func (s *Store) uniqueID(cv types.CvData) string {
	for {
		id := s.newID()
		if id != "" && !s.idTaken(cv, id) {
			return id
		}
	}
}

func (s *Store) notify(cv types.CvData, action Action) {
	s.listenersMu.RLock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, sub := range s.listeners {
		listeners = append(listeners, sub.fn)
	}
	s.listenersMu.RUnlock()

	for _, fn := range listeners {
		fn(cv, action)
	}
}

// SetTheme merges theme fields into the current theme
func (s *Store) SetTheme(patch types.ThemePatch) {
	s.Dispatch(SetTheme{Patch: patch})
}

// SetPersonalInfo merges personal-info fields into the current record
func (s *Store) SetPersonalInfo(patch types.PersonalInfoPatch) {
	s.Dispatch(SetPersonalInfo{Patch: patch})
}

// AddSection appends a section and returns the id it was stored under.
// A caller-supplied id is kept when it is not empty and not already in use.
func (s *Store) AddSection(section types.Section) string {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	next := s.dispatchLocked(AddSection{Section: section})
	return next.Sections[len(next.Sections)-1].ID
}

// RemoveSection removes a section. Unknown ids are ignored.
func (s *Store) RemoveSection(id string) {
	s.Dispatch(RemoveSection{ID: id})
}

// UpdateSectionEntries replaces a section's entries and returns the updated section.
// Unknown ids are ignored and report false.
func (s *Store) UpdateSectionEntries(id string, entries []types.Entry) (types.Section, bool) {
	return s.dispatchSection(id, UpdateSectionEntries{ID: id, Entries: entries})
}

// UpdateSection replaces a section's name and type and returns the updated section.
// Unknown ids are ignored and report false.
func (s *Store) UpdateSection(id, name string, sectionType types.SectionType) (types.Section, bool) {
	return s.dispatchSection(id, UpdateSection{ID: id, SectionName: name, Type: sectionType})
}

// dispatchSection applies action and reads section id from the state it committed
func (s *Store) dispatchSection(id string, action Action) (types.Section, bool) {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	section, idx := s.dispatchLocked(action).SectionByID(id)
	return section, idx >= 0
}

// ReorderSections moves the section at src to dst (measured after removal).
// Out-of-range indices are ignored.
func (s *Store) ReorderSections(src, dst int) {
	s.Dispatch(ReorderSections{SourceIndex: src, DestinationIndex: dst})
}
