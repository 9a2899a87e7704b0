package systems

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	cfg "github.com/automoto/xtremepaddle/config"
	"github.com/quasilyte/gdata"
)

// ErrNoSavedState is returned when the store holds no screen stack
var ErrNoSavedState = errors.New("no saved screen stack")

const screensItem = "screens"

// ItemStore is a flat key/blob store. *gdata.Manager implements it.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
	DeleteItem(itemKey string) error
}

// OpenStore opens the on-disk store for the game. When persistence is
// disabled or the platform store cannot be opened, an in-memory store is
// returned so the game still runs.
func OpenStore(appName string) ItemStore {
	if cfg.Debug.SkipPersistence {
		return NewMemoryStore()
	}
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return NewMemoryStore()
	}
	return m
}

// MemoryStore keeps items for the lifetime of the process
type MemoryStore struct {
	items map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string][]byte)}
}

func (m *MemoryStore) LoadItem(itemKey string) ([]byte, error) {
	return m.items[itemKey], nil
}

func (m *MemoryStore) SaveItem(itemKey string, data []byte) error {
	m.items[itemKey] = append([]byte{}, data...)
	return nil
}

func (m *MemoryStore) DeleteItem(itemKey string) error {
	delete(m.items, itemKey)
	return nil
}

// SavedScreen is one persisted screen: its kind and its opaque state
type SavedScreen struct {
	Kind string
	Data []byte
}

func screenItem(i int) string {
	return fmt.Sprintf("screen_%d", i)
}

// SaveScreenStack writes the screens in stack order and clears the blobs of
// any longer stack saved before
func SaveScreenStack(store ItemStore, screens []SavedScreen) error {
	previous, _ := loadScreenKinds(store)

	kinds := make([]string, len(screens))
	for i, s := range screens {
		kinds[i] = s.Kind
		if err := store.SaveItem(screenItem(i), s.Data); err != nil {
			return fmt.Errorf("save screen %d: %w", i, err)
		}
	}
	for i := len(screens); i < len(previous); i++ {
		if err := store.DeleteItem(screenItem(i)); err != nil {
			return fmt.Errorf("clear screen %d: %w", i, err)
		}
	}

	data, err := json.Marshal(kinds)
	if err != nil {
		return fmt.Errorf("serialize screen list: %w", err)
	}
	if err := store.SaveItem(screensItem, data); err != nil {
		return fmt.Errorf("save screen list: %w", err)
	}
	return nil
}

// LoadScreenStack reads back a stack written by SaveScreenStack. Every screen
// must have its blob; a partial stack is an error.
func LoadScreenStack(store ItemStore) ([]SavedScreen, error) {
	kinds, err := loadScreenKinds(store)
	if err != nil {
		return nil, err
	}

	screens := make([]SavedScreen, len(kinds))
	for i, kind := range kinds {
		data, err := store.LoadItem(screenItem(i))
		if err != nil {
			return nil, fmt.Errorf("load screen %d: %w", i, err)
		}
		if len(data) == 0 {
			return nil, fmt.Errorf("screen %d (%s): missing state", i, kind)
		}
		screens[i] = SavedScreen{Kind: kind, Data: data}
	}
	return screens, nil
}

// ClearScreenStack removes every saved screen item
func ClearScreenStack(store ItemStore) error {
	kinds, _ := loadScreenKinds(store)
	for i := range kinds {
		if err := store.DeleteItem(screenItem(i)); err != nil {
			return fmt.Errorf("clear screen %d: %w", i, err)
		}
	}
	return store.DeleteItem(screensItem)
}

func loadScreenKinds(store ItemStore) ([]string, error) {
	data, err := store.LoadItem(screensItem)
	if err != nil {
		return nil, fmt.Errorf("load screen list: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrNoSavedState
	}
	var kinds []string
	if err := json.Unmarshal(data, &kinds); err != nil {
		return nil, fmt.Errorf("parse screen list: %w", err)
	}
	return kinds, nil
}
