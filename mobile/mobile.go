// Package mobile is the ebitenmobile bind target:
//
//	ebitenmobile bind -target android -javapkg com.olivierh59500.campfire -o campfire.aar ./mobile
package mobile

import (
	ebitenmobile "github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/olivierh59500/campfire-go/internal/config"
	"github.com/olivierh59500/campfire-go/internal/scene"
)

func init() {
	s, err := scene.New(config.DefaultConfig())
	if err != nil {
		panic(err)
	}
	ebitenmobile.SetGame(s)
}

// Dummy forces gomobile to export this package.
func Dummy() {}
