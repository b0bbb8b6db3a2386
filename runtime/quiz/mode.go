package quiz

import (
	"fmt"
	"strings"
)

// Mode selects what the player is shown and what they answer.
type Mode int

const (
	// ModeAskValue shows bands; the player types the value.
	ModeAskValue Mode = iota
	// ModeGenerateColors shows a value; the player names the bands.
	ModeGenerateColors
)

func (m Mode) String() string {
	switch m {
	case ModeAskValue:
		return "ask"
	case ModeGenerateColors:
		return "generate"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts "ask" or "generate" and the long forms "ask-value" and
// "generate-colors", case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ask", "ask-value", "value":
		return ModeAskValue, nil
	case "generate", "generate-colors", "colors":
		return ModeGenerateColors, nil
	default:
		return 0, fmt.Errorf("unknown quiz mode %q (want ask or generate)", s)
	}
}
