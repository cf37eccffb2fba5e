package tags

import "github.com/yohamta/donburi"

var (
	Player  = donburi.NewTag().SetName("Player")
	Bot     = donburi.NewTag().SetName("Bot")
	Fighter = donburi.NewTag().SetName("Fighter")
	Wall    = donburi.NewTag().SetName("Wall")
)

// Resolv tags for arena collision
const (
	ResolvSolid   = "solid"
	ResolvFighter = "fighter"
	ResolvPlayer  = "Player"
	ResolvBot     = "Bot"
)
