// Package gamedata provides embedded display data for the card colors.
package gamedata

import "embed"

//go:embed *.json
var dataFS embed.FS
