package tags

import "github.com/yohamta/donburi"

var (
	Monster = donburi.NewTag().SetName("Monster")
	Clock   = donburi.NewTag().SetName("Clock")
)
