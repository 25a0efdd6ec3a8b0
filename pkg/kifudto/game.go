package kifudto

// GameData is the game record as produced by /api/start_game.
type GameData struct {
	GameID string     `json:"gameId"`
	Sente  string     `json:"sente"`
	Gote   string     `json:"gote"`
	Moves  []MoveData `json:"moves"`
}

type MoveData struct {
	MoveNumber   int    `json:"moveNumber"`
	MoveUSI      string `json:"moveUsi"`
	MoveNotation string `json:"moveNotation,omitempty"`
	Commentary   string `json:"commentary"`
}
