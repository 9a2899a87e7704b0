package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the resolv object mirroring an entity's collision rectangle
// inside the match space.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// SyncTo moves and resizes the object onto r and refreshes its space cells
func (o *ObjectData) SyncTo(r Rect) {
	o.X, o.Y, o.W, o.H = r.X, r.Y, r.W, r.H
	o.Update()
}

// Space holds the per-match resolv space (singleton component)
var Space = donburi.NewComponentType[resolv.Space]()
