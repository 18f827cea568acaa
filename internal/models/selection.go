package models

import "time"

// Selection mode constants
const (
	SelectionModeAuto   = "auto"
	SelectionModeManual = "manual"
)

// Selection records an accent color the user settled on for a brand color.
// Selections are persisted so a session can be resumed later.
type Selection struct {
	ID        int
	BrandHex  string
	AccentHex string
	TokenName string // Name of the dataset token, empty for free-form manual picks
	Mode      string // SelectionModeAuto or SelectionModeManual
	CreatedAt time.Time
}
