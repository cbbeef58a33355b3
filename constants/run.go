package constants

import "time"

// Round sequencing
const (
	// PreviewDelay is how long the upcoming minigame name is shown before it starts
	PreviewDelay = 1500 * time.Millisecond

	// CountdownStep is the refresh period of the preview countdown
	CountdownStep = 100 * time.Millisecond

	// TransitionDelay is the pause between a round outcome and the next termination check
	TransitionDelay = 500 * time.Millisecond
)

// Player name rules (measured after trim, in runes)
const (
	NameMinLength = 1
	NameMaxLength = 8
)

// Leaderboard
const (
	// LeaderboardSize is the hard cap on persisted entries
	LeaderboardSize = 10

	// LeaderboardKey is the record name holding the serialized board
	LeaderboardKey = "leaderboard"
)

// Trophies
const (
	// ArcadeProThreshold is exceeded (strictly) to earn the Arcade Pro trophy
	ArcadeProThreshold = 7
)
