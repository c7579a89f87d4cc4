package reaction

import "fmt"

// ColorToken names a background color. The client maps tokens to RGBA values.
type ColorToken string

const (
	ColorSlate900   ColorToken = "slate-900"
	ColorSlate800   ColorToken = "slate-800"
	ColorRose600    ColorToken = "rose-600"
	ColorEmerald500 ColorToken = "emerald-500"
	ColorOrange500  ColorToken = "orange-500"
)

// IconToken names the icon drawn above the title.
type IconToken string

const (
	IconZap   IconToken = "zap"
	IconTimer IconToken = "timer"
	IconAlert IconToken = "alert"
)

// Prompt is the visual description of a state.
type Prompt struct {
	Background ColorToken
	Icon       IconToken
	Title      string
	Subtitle   string
	// Hint is an optional call to action shown below the subtitle.
	Hint string
}

// FormatMS renders a latency the way every screen shows it.
func FormatMS(ms int64) string {
	return fmt.Sprintf("%d ms", ms)
}

// PromptFor returns the prompt for a state. lastMS is only used by StateResult.
func PromptFor(state GameState, lastMS int64) Prompt {
	switch state {
	case StateWaiting:
		return Prompt{
			Background: ColorRose600,
			Icon:       IconTimer,
			Title:      "Wait for Green...",
			Subtitle:   "Do not click yet!",
		}
	case StateNow:
		return Prompt{
			Background: ColorEmerald500,
			Icon:       IconZap,
			Title:      "CLICK!",
			Subtitle:   "Click now!",
		}
	case StateResult:
		return Prompt{
			Background: ColorSlate800,
			Icon:       IconTimer,
			Title:      FormatMS(lastMS),
			Subtitle:   "Click to try again",
		}
	case StateTooEarly:
		return Prompt{
			Background: ColorOrange500,
			Icon:       IconAlert,
			Title:      "Too Early!",
			Subtitle:   "Wait for the screen to turn green.",
		}
	default:
		return Prompt{
			Background: ColorSlate900,
			Icon:       IconZap,
			Title:      "Reaction Test",
			Subtitle:   "Click anywhere to begin",
			Hint:       "Tap screen to start",
		}
	}
}
