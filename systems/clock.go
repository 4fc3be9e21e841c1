package systems

import (
	"github.com/automoto/doomerang-monster/archetypes"
	"github.com/automoto/doomerang-monster/components"
	"github.com/yohamta/donburi/ecs"
)

// GetClock returns the singleton clock, creating it if needed.
func GetClock(ecs *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		entry = archetypes.Clock.Spawn(ecs)
	}
	return components.Clock.Get(entry)
}
