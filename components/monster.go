package components

import (
	"github.com/automoto/doomerang-monster/config"
	"github.com/yohamta/donburi"
)

// MonsterData holds the immutable tunables of one monster instance.
type MonsterData struct {
	config.MonsterConfig
}

var Monster = donburi.NewComponentType[MonsterData]()
