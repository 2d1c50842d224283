package internal

import (
	"github.com/WorldSEnder/virtlist/internal/keymap"
)

type Config struct {
	KeyMap            keymap.KeyMap
	ItemCount         int
	HeightPrior       int
	ScrollDelayMillis int
	SavePath          string
	Version           string
}
