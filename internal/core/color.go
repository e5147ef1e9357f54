package core

// Color is the foreground color of a screen cell. Platform renderers map it
// to terminal styles.
type Color uint8

const (
	ColorDefault Color = iota
	ColorShip
	ColorHitbox
	ColorBlock
	ColorBlockEdge
	ColorTitle
	ColorScore
	ColorHint
)
