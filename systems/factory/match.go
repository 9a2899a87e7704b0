package factory

import (
	"github.com/automoto/xtremepaddle/archetypes"
	"github.com/automoto/xtremepaddle/components"
	cfg "github.com/automoto/xtremepaddle/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMatch spawns the match singleton holding score, audio queue and input
func CreateMatch(ecs *ecs.ECS, data components.MatchData) *donburi.Entry {
	match := archetypes.Match.Spawn(ecs)

	if data.SpawnTimer == 0 {
		data.SpawnTimer = cfg.PowerUp.FirstSpawnDelay.Seconds()
	}
	components.Match.SetValue(match, data)
	components.Audio.SetValue(match, components.AudioData{
		PendingSFX: make([]cfg.SoundID, 0, 8),
	})
	components.Input.SetValue(match, components.InputData{})

	return match
}
