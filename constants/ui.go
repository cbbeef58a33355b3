package constants

// Screen text
const (
	TitleText       = "PARTY ARCADE"
	PreviewPrefix   = "Now Playing: "
	StartHintText   = "Tab: next field  Space: toggle  Enter: start  Esc: quit"
	EndHintText     = "Enter: play again  Esc: quit"
	PausedText      = " PAUSED (Ctrl-P) "
	ErrorNameText   = "Enter 1-8 character name."
	HighlightMarker = '>'
)
