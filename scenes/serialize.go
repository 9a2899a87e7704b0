package scenes

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/xtremepaddle/systems"
)

// Kinds of screen that survive a restart
const (
	KindBackground = "background"
	KindMenu       = "menu"
	KindSetup      = "setup"
	KindMatch      = "match"
)

// serializable screens are written to the store when the game shuts down
type serializable interface {
	Screen
	Kind() string
	Serialize() ([]byte, error)
}

var screenFactories = map[string]func(data []byte) (Screen, error){
	KindBackground: func([]byte) (Screen, error) {
		return NewBackgroundScreen(), nil
	},
	KindMenu: func(data []byte) (Screen, error) {
		var st menuState
		if err := json.Unmarshal(data, &st); err != nil {
			return nil, err
		}
		if st.Role != MenuMain && st.Role != MenuAbout {
			return nil, fmt.Errorf("unknown menu role %d", st.Role)
		}
		return NewMenuScreen(st.Role), nil
	},
	KindSetup: func(data []byte) (Screen, error) {
		var st setupState
		if err := json.Unmarshal(data, &st); err != nil {
			return nil, err
		}
		s, err := newSetupScreenFromState(st)
		if err != nil {
			return nil, err
		}
		return s, nil
	},
	KindMatch: func(data []byte) (Screen, error) {
		var st matchState
		if err := json.Unmarshal(data, &st); err != nil {
			return nil, err
		}
		if err := st.validate(); err != nil {
			return nil, err
		}
		return restoreMatchScreen(st), nil
	},
}

func restoreScreen(saved systems.SavedScreen) (Screen, error) {
	build, ok := screenFactories[saved.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScreen, saved.Kind)
	}
	s, err := build(saved.Data)
	if err != nil {
		return nil, fmt.Errorf("restore %s screen: %w", saved.Kind, err)
	}
	return s, nil
}
