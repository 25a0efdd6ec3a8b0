package kifuapi

import (
	"github.com/park285/kifu-viewer/internal/domain"
	"github.com/park285/kifu-viewer/pkg/kifudto"
)

func toDomainRecord(g *kifudto.GameData) *domain.GameRecord {
	if g == nil {
		return nil
	}
	moves := make([]domain.Move, 0, len(g.Moves))
	for _, m := range g.Moves {
		moves = append(moves, domain.Move{
			MoveNumber:   m.MoveNumber,
			MoveUSI:      m.MoveUSI,
			MoveNotation: m.MoveNotation,
			Commentary:   m.Commentary,
		})
	}
	return &domain.GameRecord{
		GameID: g.GameID,
		Sente:  g.Sente,
		Gote:   g.Gote,
		Moves:  moves,
	}
}

func toDomainBoard(gameID string, moveIndex int, r *kifudto.BoardStateResponse) *domain.BoardState {
	bs := &domain.BoardState{
		GameID:    gameID,
		MoveIndex: moveIndex,
		Board:     r.BoardState,
		TurnLabel: r.CurrentTurn,
		Turn:      domain.ParseTurn(r.CurrentTurn),
	}
	if r.CapturedPieces != nil {
		bs.Captured = domain.CapturedPieces{
			Sente: toDomainCounts(r.CapturedPieces.Sente),
			Gote:  toDomainCounts(r.CapturedPieces.Gote),
		}
	}
	return bs
}

func toDomainCounts(list kifudto.PieceCounts) []domain.PieceCount {
	if len(list) == 0 {
		return nil
	}
	out := make([]domain.PieceCount, 0, len(list))
	for _, pc := range list {
		out = append(out, domain.PieceCount{Label: pc.Label, Count: pc.Count})
	}
	return out
}
