package game

type GameState int

const (
	StateStart    GameState = iota // title screen, menu music
	StatePlaying                   // rally in progress
	StateGameOver                  // someone reached the win score
)

func (s GameState) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	}
	return "unknown"
}

// Input is one frame of player intent. The discrete fields are key-down
// edges; Up and Down are held state.
type Input struct {
	Quit       bool
	Confirm    bool
	RestartYes bool
	RestartNo  bool

	Up   bool
	Down bool
}
