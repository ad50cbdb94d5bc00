package document

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-builder/internal/types"
)

func TestStore_AddThenRemoveRestoresSeed(t *testing.T) {
	store := NewSessionStore(WithIDGenerator(sequentialIDs("id")))
	original := store.Snapshot()
	require.Equal(t, DefaultSectionNames, sectionNames(original))

	id := store.AddSection(types.Section{ID: "x", Name: "Awards", Type: types.SectionText, Entries: []types.Entry{}})
	assert.Equal(t, "x", id)

	afterAdd := store.Snapshot()
	require.Len(t, afterAdd.Sections, 7)
	assert.Equal(t, "Awards", afterAdd.Sections[6].Name)

	store.RemoveSection("x")
	assert.Equal(t, original, store.Snapshot())
}

func TestStore_AddSectionAssignsUniqueIDs(t *testing.T) {
	store := NewStore(docWithSections("A"), WithIDGenerator(sequentialIDs("gen")))

	generated := store.AddSection(types.Section{Name: "No ID", Type: types.SectionText})
	duplicate := store.AddSection(types.Section{ID: "A", Name: "Clash", Type: types.SectionText})
	kept := store.AddSection(types.Section{ID: "custom", Name: "Custom", Type: types.SectionCustom})

	assert.Equal(t, "gen-1", generated)
	assert.Equal(t, "gen-2", duplicate)
	assert.Equal(t, "custom", kept)

	seen := map[string]bool{}
	for _, s := range store.Snapshot().Sections {
		assert.False(t, seen[s.ID], "duplicate id %s", s.ID)
		seen[s.ID] = true
	}
}

func TestStore_AddSectionSkipsGeneratedCollisions(t *testing.T) {
	ids := []string{"A", "", "fresh"}
	i := 0
	store := NewStore(docWithSections("A"), WithIDGenerator(func() string {
		id := ids[i]
		i++
		return id
	}))

	assert.Equal(t, "fresh", store.AddSection(types.Section{Name: "New"}))
}

func TestStore_DispatchCopiesCallerEntries(t *testing.T) {
	store := NewStore(docWithSections("A"))

	entries := []types.Entry{types.RecordEntry(types.Field{Key: "description", Value: "before"})}
	store.UpdateSectionEntries("A", entries)
	entries[0].Fields[0].Value = "mutated by caller"

	got, _ := store.Snapshot().SectionByID("A")
	assert.Equal(t, "before", got.Entries[0].GetString("description"))
}

func TestStore_SnapshotsStayValidAfterMutation(t *testing.T) {
	store := NewStore(docWithSections("A", "B"))
	before := store.Snapshot()

	store.UpdateSection("A", "Renamed", types.SectionRich)
	store.ReorderSections(0, 1)

	assert.Equal(t, []string{"A", "B"}, sectionNames(before))
	assert.Equal(t, []string{"B", "Renamed"}, sectionNames(store.Snapshot()))
}

func TestStore_UnknownIDsAreSilentNoOps(t *testing.T) {
	store := NewStore(docWithSections("A"))
	before := store.Snapshot()

	store.RemoveSection("missing")
	store.RemoveSection("missing")
	_, ok := store.UpdateSection("missing", "x", types.SectionText)
	assert.False(t, ok)
	_, ok = store.UpdateSectionEntries("missing", []types.Entry{types.TextEntry("x")})
	assert.False(t, ok)
	store.ReorderSections(5, 0)

	assert.Equal(t, before, store.Snapshot())
	assert.Equal(t, uint64(5), store.Version())
}

func TestStore_UpdateReturnsCommittedSection(t *testing.T) {
	store := NewStore(docWithSections("A", "B"))

	section, ok := store.UpdateSection("B", "Bee", types.SectionRich)
	require.True(t, ok)
	assert.Equal(t, "B", section.ID)
	assert.Equal(t, "Bee", section.Name)
	assert.Equal(t, types.SectionRich, section.Type)

	section, ok = store.UpdateSectionEntries("A", []types.Entry{types.TextEntry("one")})
	require.True(t, ok)
	assert.Equal(t, []types.Entry{types.TextEntry("one")}, section.Entries)
}

func TestStore_UpdateRacingRemoveNeverReportsEmptySection(t *testing.T) {
	for round := 0; round < 50; round++ {
		store := NewStore(docWithSections("A"))

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			store.RemoveSection("A")
		}()
		var section types.Section
		var ok bool
		go func() {
			defer wg.Done()
			section, ok = store.UpdateSection("A", "Renamed", types.SectionText)
		}()
		wg.Wait()

		if ok {
			assert.Equal(t, "A", section.ID)
			assert.Equal(t, "Renamed", section.Name)
		} else {
			assert.Equal(t, types.Section{}, section)
		}
		assert.Empty(t, store.Snapshot().Sections)
	}
}

func TestStore_SubscribersSeeEveryDispatchInOrder(t *testing.T) {
	store := NewStore(docWithSections())

	var names []string
	var sizes []int
	unsubscribe := store.Subscribe(func(cv types.CvData, action Action) {
		names = append(names, action.Name())
		sizes = append(sizes, len(cv.Sections))
	})

	store.AddSection(types.Section{ID: "a", Name: "A"})
	store.AddSection(types.Section{ID: "b", Name: "B"})
	store.RemoveSection("a")
	unsubscribe()
	store.RemoveSection("b")

	assert.Equal(t, []string{"ADD_SECTION", "ADD_SECTION", "REMOVE_SECTION"}, names)
	assert.Equal(t, []int{1, 2, 1}, sizes)
	assert.Len(t, store.Snapshot().Sections, 0)
}

func TestStore_ListenersRunInSubscriptionOrder(t *testing.T) {
	store := NewStore(docWithSections())

	var order []int
	var unsubscribes []func()
	for i := 0; i < 8; i++ {
		i := i
		unsubscribes = append(unsubscribes, store.Subscribe(func(types.CvData, Action) {
			order = append(order, i)
		}))
	}
	unsubscribes[3]()

	for n := 0; n < 5; n++ {
		order = order[:0]
		store.RemoveSection("missing")
		assert.Equal(t, []int{0, 1, 2, 4, 5, 6, 7}, order)
	}
}

func TestStore_ConcurrentDispatchesAreLinearized(t *testing.T) {
	store := NewStore(docWithSections())

	var mu sync.Mutex
	var observed []int
	store.Subscribe(func(cv types.CvData, _ Action) {
		mu.Lock()
		observed = append(observed, len(cv.Sections))
		mu.Unlock()
	})

	const workers = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.AddSection(types.Section{Name: "S", Type: types.SectionText})
		}()
	}
	wg.Wait()

	assert.Len(t, store.Snapshot().Sections, workers)
	assert.Equal(t, uint64(workers), store.Version())
	for i, n := range observed {
		assert.Equal(t, i+1, n, "notifications must follow commit order")
	}
}
