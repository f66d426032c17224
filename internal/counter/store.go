// Package counter owns the collection of tasbih counters and their session
// history. Every operation is total: unknown ids and unknown template keys
// degrade to no-ops, and errors are returned only when persistence fails.
package counter

import (
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/tasbihapp/tasbih/internal/constants"
	"github.com/tasbihapp/tasbih/internal/models"
	"github.com/tasbihapp/tasbih/internal/storage"
)

// Update carries the optional fields of a partial counter update. Nil fields
// are left untouched.
type Update struct {
	Name            *string
	TargetCount     *int
	Arabic          *string
	Transliteration *string
}

// Store is the counter aggregate. It loads the collection from the provider,
// mutates it in memory, and writes the whole collection back as one unit per
// operation.
type Store struct {
	provider storage.Provider
	clock    Clock

	// completion observers, notified after a reset archives a session
	// that met its target
	onCompletion []func(at time.Time)
}

func New(provider storage.Provider) *Store {
	return NewWithClock(provider, RealClock{})
}

func NewWithClock(provider storage.Provider, clock Clock) *Store {
	return &Store{
		provider: provider,
		clock:    clock,
	}
}

// OnCompletion registers an observer called whenever a reset archives a
// completed session. The statistics engine subscribes here so the two stores
// stay decoupled.
func (s *Store) OnCompletion(fn func(at time.Time)) {
	s.onCompletion = append(s.onCompletion, fn)
}

// Create allocates a new counter, appends it to the collection, and makes it
// the active one. Names are not required to be unique.
func (s *Store) Create(name string, targetCount int, arabic, transliteration string) (models.Tasbih, error) {
	now := s.clock.Now()
	tasbih := s.newTasbih(name, targetCount, arabic, transliteration, now)

	tasbihs, err := s.provider.GetTasbihs()
	if err != nil {
		return models.Tasbih{}, err
	}
	tasbihs = append(tasbihs, tasbih)
	if err := s.provider.SaveTasbihs(tasbihs); err != nil {
		return models.Tasbih{}, err
	}
	if err := s.provider.SaveActiveTasbihID(tasbih.ID); err != nil {
		return models.Tasbih{}, err
	}
	return tasbih, nil
}

// CreateFromTemplate instantiates every counter of a catalog template.
// Entries get strictly increasing synthetic timestamps so ids and ordering
// stay unique even though they are created in the same instant. An unknown
// key returns an empty slice and mutates nothing.
func (s *Store) CreateFromTemplate(key string) ([]models.Tasbih, error) {
	template, ok := models.DhikrTemplates[key]
	if !ok {
		return []models.Tasbih{}, nil
	}

	tasbihs, err := s.provider.GetTasbihs()
	if err != nil {
		return nil, err
	}

	base := s.clock.Now()
	created := make([]models.Tasbih, 0, len(template.Tasbihs))
	for i, entry := range template.Tasbihs {
		ts := base.Add(time.Duration(i) * time.Millisecond)
		tasbih := s.newTasbih(entry.Name, entry.TargetCount, entry.Arabic, entry.Transliteration, ts)
		tasbihs = append(tasbihs, tasbih)
		created = append(created, tasbih)
	}

	if err := s.provider.SaveTasbihs(tasbihs); err != nil {
		return nil, err
	}
	if err := s.provider.SaveActiveTasbihID(created[0].ID); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Store) newTasbih(name string, targetCount int, arabic, transliteration string, at time.Time) models.Tasbih {
	if targetCount <= 0 {
		targetCount = constants.DefaultTargetCount
	}
	return models.Tasbih{
		ID:              strconv.FormatInt(at.UnixMilli(), 10),
		Name:            name,
		Arabic:          arabic,
		Transliteration: transliteration,
		TargetCount:     targetCount,
		CreatedAt:       at,
		UpdatedAt:       at,
		History:         []models.Session{},
	}
}

// Apply merges the given fields into the matching counter and refreshes its
// update timestamp. Unknown ids are a no-op.
func (s *Store) Apply(id string, update Update) error {
	return s.mutate(id, func(t *models.Tasbih) bool {
		if update.Name != nil {
			t.Name = *update.Name
		}
		if update.TargetCount != nil && *update.TargetCount > 0 {
			t.TargetCount = *update.TargetCount
		}
		if update.Arabic != nil {
			t.Arabic = *update.Arabic
		}
		if update.Transliteration != nil {
			t.Transliteration = *update.Transliteration
		}
		return true
	})
}

// Increment adds one to the live count. There is no upper bound; counting
// past the target is allowed.
func (s *Store) Increment(id string) error {
	return s.mutate(id, func(t *models.Tasbih) bool {
		t.CurrentCount++
		return true
	})
}

// Decrement subtracts one from the live count, never going below zero.
func (s *Store) Decrement(id string) error {
	return s.mutate(id, func(t *models.Tasbih) bool {
		if t.CurrentCount == 0 {
			return false
		}
		t.CurrentCount--
		return true
	})
}

// Reset archives the live count as a session, prepends it to history capped
// at the history limit, and zeroes the counter. Resetting a zero counter
// records nothing. If the archived session met its target, completion
// observers are notified after the write.
func (s *Store) Reset(id string) error {
	now := s.clock.Now()
	completed := false

	err := s.mutate(id, func(t *models.Tasbih) bool {
		if t.CurrentCount == 0 {
			return false
		}
		session := models.Session{
			ID:          uuid.New().String(),
			Count:       t.CurrentCount,
			TargetCount: t.TargetCount,
			CompletedAt: now,
			Completed:   t.CurrentCount >= t.TargetCount,
		}
		t.History = append([]models.Session{session}, t.History...)
		if len(t.History) > constants.HistoryLimit {
			t.History = t.History[:constants.HistoryLimit]
		}
		t.CurrentCount = 0
		completed = session.Completed
		return true
	})
	if err != nil {
		return err
	}

	if completed {
		for _, fn := range s.onCompletion {
			fn(now)
		}
	}
	return nil
}

// ClearHistory empties the session history of the matching counter.
func (s *Store) ClearHistory(id string) error {
	return s.mutate(id, func(t *models.Tasbih) bool {
		t.History = []models.Session{}
		return true
	})
}

// Delete removes the counter. If it was the active one, the active pointer
// falls back to the first remaining counter, or to none.
func (s *Store) Delete(id string) error {
	tasbihs, err := s.provider.GetTasbihs()
	if err != nil {
		return err
	}

	idx := -1
	for i := range tasbihs {
		if tasbihs[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil
	}

	tasbihs = append(tasbihs[:idx], tasbihs[idx+1:]...)
	if err := s.provider.SaveTasbihs(tasbihs); err != nil {
		return err
	}

	activeID, err := s.provider.GetActiveTasbihID()
	if err != nil {
		return err
	}
	if activeID == id {
		next := ""
		if len(tasbihs) > 0 {
			next = tasbihs[0].ID
		}
		return s.provider.SaveActiveTasbihID(next)
	}
	return nil
}

// SetActive sets the active pointer unconditionally. The id is not
// validated; callers are expected to pass a known one.
func (s *Store) SetActive(id string) error {
	return s.provider.SaveActiveTasbihID(id)
}

// List returns all counters ordered by update time descending, most
// recently touched first.
func (s *Store) List() ([]models.Tasbih, error) {
	tasbihs, err := s.provider.GetTasbihs()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(tasbihs, func(i, j int) bool {
		return tasbihs[i].UpdatedAt.After(tasbihs[j].UpdatedAt)
	})
	return tasbihs, nil
}

// Active returns the counter the active pointer refers to, or nil.
func (s *Store) Active() (*models.Tasbih, error) {
	activeID, err := s.provider.GetActiveTasbihID()
	if err != nil {
		return nil, err
	}
	if activeID == "" {
		return nil, nil
	}
	tasbihs, err := s.provider.GetTasbihs()
	if err != nil {
		return nil, err
	}
	for i := range tasbihs {
		if tasbihs[i].ID == activeID {
			return &tasbihs[i], nil
		}
	}
	return nil, nil
}

// mutate applies fn to the matching counter and persists the collection when
// fn reports a change. The update timestamp is refreshed on change.
func (s *Store) mutate(id string, fn func(*models.Tasbih) bool) error {
	tasbihs, err := s.provider.GetTasbihs()
	if err != nil {
		return err
	}
	for i := range tasbihs {
		if tasbihs[i].ID != id {
			continue
		}
		if !fn(&tasbihs[i]) {
			return nil
		}
		tasbihs[i].UpdatedAt = s.clock.Now()
		return s.provider.SaveTasbihs(tasbihs)
	}
	return nil
}
