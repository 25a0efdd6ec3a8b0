package kifudto

const (
	CodeStartGame  = "start_game_failed"
	CodeBoardState = "board_state_failed"
)

type StartGameRequest struct {
	MaxMoves int `json:"maxMoves"`
}

type StartGameResponse struct {
	Success  bool      `json:"success"`
	GameData *GameData `json:"gameData,omitempty"`
	Error    string    `json:"error,omitempty"`
}

// BoardStateResponse is returned by /api/board_state/{gameId}/{moveIndex}.
// BoardState may contain ◆label◆ spans marking gote pieces.
type BoardStateResponse struct {
	Success        bool            `json:"success"`
	BoardState     string          `json:"boardState,omitempty"`
	CurrentTurn    string          `json:"currentTurn,omitempty"`
	CapturedPieces *CapturedPieces `json:"capturedPieces,omitempty"`
	Error          string          `json:"error,omitempty"`
}
