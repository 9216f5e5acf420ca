package chess

import "strings"

// ParseUCIMove resolves a UCI move string against pos, filling in the
// moved piece, captured piece, and special-move flags by consulting the
// board rather than trusting the string alone. It accepts castling
// expressed either as the king's standard destination square or as
// king-takes-own-rook (the Chess960 convention), matching either against
// the position's legal move set. Grounded on the teacher's ParseMove,
// extended to resolve against a concrete Position instead of returning a
// bare from/to pair.
func ParseUCIMove(pos *Position, s string) (Move, error) {
	orig := s
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "0000" {
		return NullMove, nil
	}
	if len(s) < 4 || len(s) > 5 {
		err := invalidMove("move string %q: expected 4 or 5 characters", orig)
		logInvalidMoveString(orig, err)
		return NullMove, err
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		wrapped := invalidMove("move string %q: bad origin square: %v", orig, err)
		logInvalidMoveString(orig, wrapped)
		return NullMove, wrapped
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		wrapped := invalidMove("move string %q: bad destination square: %v", orig, err)
		logInvalidMoveString(orig, wrapped)
		return NullMove, wrapped
	}

	var wantPromo PieceType
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			wantPromo = PieceTypeQueen
		case 'r':
			wantPromo = PieceTypeRook
		case 'b':
			wantPromo = PieceTypeBishop
		case 'n':
			wantPromo = PieceTypeKnight
		default:
			err := invalidMove("move string %q: bad promotion piece %q", orig, string(s[4]))
			logInvalidMoveString(orig, err)
			return NullMove, err
		}
	}

	moved := pos.pieces[from]
	isKingMove := moved.Type() == PieceTypeKing

	for _, m := range pos.GenerateMoves(LegalMoves) {
		if m.From() != from {
			continue
		}
		if m.IsCastle() {
			kingTo, _ := m.CastleDestinations()
			if isKingMove && (to == kingTo || to == m.To()) {
				return m, nil
			}
			continue
		}
		if m.To() != to {
			continue
		}
		if wantPromo != PieceTypeNone && m.PromotionPieceType() != wantPromo {
			continue
		}
		return m, nil
	}

	err = invalidMove("move string %q: not a legal move in the current position", orig)
	logInvalidMoveString(orig, err)
	return NullMove, err
}
