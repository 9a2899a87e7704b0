package systems

import (
	"github.com/automoto/xtremepaddle/components"
	cfg "github.com/automoto/xtremepaddle/config"
	"github.com/automoto/xtremepaddle/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePowerUps runs the Xtreme mode power-ups: the spawn countdown, the idle
// rotation and the ball sweep. Candidates come from the resolv space and are
// confirmed with the exact rectangle test before their effect applies.
func UpdatePowerUps(e *ecs.ECS) {
	s, ok := getMatchState(e)
	if !ok || !s.match.Xtreme {
		return
	}
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	updateSpawnTimer(e, s.match, space)

	tags.PowerUp.Each(e.World, func(entry *donburi.Entry) {
		components.PowerUp.Get(entry).Update()
	})

	ballEntry, ok := tags.Ball.First(e.World)
	if !ok {
		return
	}
	ballObj := components.Object.Get(ballEntry)
	ballObj.SyncTo(s.ball.Bounds())

	check := ballObj.Check(0, 0, tags.ResolvPowerUp)
	if check == nil {
		return
	}
	for _, obj := range check.ObjectsByTags(tags.ResolvPowerUp) {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		p := components.PowerUp.Get(entry)
		if !p.Collide(s.ball, s.p1, s.left, s.audio, s.match.Rand) {
			continue
		}
		p.Unplace()
		space.Remove(obj)
		s.audio.Notify(cfg.SoundPowerUp)
	}
}

// updateSpawnTimer places a random pool entry each time the countdown runs
// out and re-arms it with a fresh interval.
func updateSpawnTimer(e *ecs.ECS, match *components.MatchData, space *resolv.Space) {
	if match.SpawnTimer <= 0 {
		return
	}
	match.SpawnTimer -= match.Delta
	if match.SpawnTimer >= 0 {
		return
	}

	var pool []*donburi.Entry
	tags.PowerUp.Each(e.World, func(entry *donburi.Entry) {
		pool = append(pool, entry)
	})
	if len(pool) > 0 {
		entry := pool[match.Rand.Intn(len(pool))]
		PlacePowerUp(entry, match, space)
	}

	lo, hi := cfg.PowerUp.RespawnMinSecs, cfg.PowerUp.RespawnMaxSecs
	match.SpawnTimer = float64(lo + match.Rand.Intn(hi-lo))
}

// PlacePowerUp puts a pooled power-up on the field and into the space
func PlacePowerUp(entry *donburi.Entry, match *components.MatchData, space *resolv.Space) {
	p := components.PowerUp.Get(entry)
	wasPlaced := p.Placed
	p.Place(match.Rand, match.SpawnZone)

	obj := components.Object.Get(entry)
	if !wasPlaced {
		space.Add(obj.Object)
	}
	obj.SyncTo(p.Bounds())
}
