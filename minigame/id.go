package minigame

// ID identifies one minigame kind
type ID uint8

const (
	Snake ID = iota
	Asteroids
	SpinDodge
	Slalom
	BrickBreaker
	PatternMemory
	MagneticMaze
	LadderClimb
	CodeBreaker
	StopTheCar
	idCount
)

var idNames = [idCount]string{
	Snake:         "Snake",
	Asteroids:     "Asteroid Shooter",
	SpinDodge:     "Spin Dodge",
	Slalom:        "Slalom",
	BrickBreaker:  "Brick Breaker",
	PatternMemory: "Pattern Memory",
	MagneticMaze:  "Magnetic Maze",
	LadderClimb:   "Ladder Climb",
	CodeBreaker:   "Code Breaker",
	StopTheCar:    "Stop The Car",
}

// IDs returns every kind in declaration order
func IDs() []ID {
	ids := make([]ID, idCount)
	for i := range ids {
		ids[i] = ID(i)
	}
	return ids
}

// String returns the display label
func (id ID) String() string {
	if id >= idCount {
		return "Unknown"
	}
	return idNames[id]
}
