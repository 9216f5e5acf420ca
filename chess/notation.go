package chess

import "strings"

// NotationStyle selects one of the five move-string formats toNotation can
// render.
type NotationStyle uint8

const (
	SAN NotationStyle = iota
	FAN
	LAN
	RAN
	UCIStyle
)

var figurineLetters = map[PieceType][2]string{
	PieceTypeKnight: {"♘", "♞"},
	PieceTypeBishop: {"♗", "♝"},
	PieceTypeRook:   {"♖", "♜"},
	PieceTypeQueen:  {"♕", "♛"},
	PieceTypeKing:   {"♔", "♚"},
}

func pieceLetterFor(pt PieceType, side Side, figurine bool) string {
	if figurine {
		if pair, ok := figurineLetters[pt]; ok {
			return pair[side]
		}
		return ""
	}
	switch pt {
	case PieceTypeKnight:
		return "N"
	case PieceTypeBishop:
		return "B"
	case PieceTypeRook:
		return "R"
	case PieceTypeQueen:
		return "Q"
	case PieceTypeKing:
		return "K"
	default:
		return ""
	}
}

// ToNotation renders m, played from pos (before the move is applied), in
// the requested style, including the trailing check or mate suffix. It
// returns ErrInvalidMoveNotation for an unrecognized style. Grounded on the
// notation renderers surveyed in the pack (SAN disambiguation shape common
// to malbrecht-chess and hailam-chessplay), restructured as a single
// switch per the "no dynamic dispatch table" preference.
func (pos *Position) ToNotation(m Move, style NotationStyle) (string, error) {
	if m.IsNull() {
		return "(none)", nil
	}

	var body string
	switch style {
	case UCIStyle:
		return m.UCI(), nil
	case SAN:
		body = pos.renderAlgebraic(m, false)
	case FAN:
		body = pos.renderAlgebraic(m, true)
	case LAN:
		body = pos.renderLong(m, false)
	case RAN:
		body = pos.renderLong(m, true)
	default:
		return "", invalidNotation("unrecognized notation style %d", style)
	}

	return body + pos.checkSuffix(m), nil
}

// checkSuffix plays m on a scratch copy of pos, queries whether the
// opponent is in check, and if so whether they have any legal reply, per
// the corrected (post-move) semantics: the suffix must never be computed
// against the pre-move check state.
func (pos *Position) checkSuffix(m Move) string {
	scratch := pos.Clone()
	if ok, _ := scratch.Do(m); !ok {
		return ""
	}
	mover := scratch.sideToMove
	if !scratch.InCheck(mover) {
		return ""
	}
	if !scratch.HasLegalMoves() {
		return "#"
	}
	return "+"
}

func (pos *Position) renderAlgebraic(m Move, figurine bool) string {
	if m.IsCastle() {
		if m.CastleSide() == KingSide {
			return "O-O"
		}
		return "O-O-O"
	}

	moved := m.MovedPiece()
	pt := moved.Type()
	to := m.To()
	if m.IsCastle() {
		to, _ = m.CastleDestinations()
	}

	var sb strings.Builder
	if pt == PieceTypePawn {
		if m.IsEnPassant() {
			sb.WriteString("ep")
			sb.WriteByte(m.From().File().Char())
		} else if m.IsCapture() {
			sb.WriteByte(m.From().File().Char())
			sb.WriteByte('x')
		}
		sb.WriteString(to.String())
		if promo := m.PromotionPiece(); promo != NoPiece {
			sb.WriteByte('=')
			sb.WriteString(pieceLetterFor(promo.Type(), promo.Side(), figurine))
		}
		return sb.String()
	}

	sb.WriteString(pieceLetterFor(pt, moved.Side(), figurine))
	sb.WriteString(pos.disambiguate(m))
	if m.IsCapture() {
		sb.WriteByte('x')
	}
	sb.WriteString(to.String())
	return sb.String()
}

func (pos *Position) renderLong(m Move, reversible bool) string {
	if m.IsCastle() {
		if m.CastleSide() == KingSide {
			return "O-O"
		}
		return "O-O-O"
	}

	moved := m.MovedPiece()
	pt := moved.Type()
	to := m.To()

	var sb strings.Builder
	sb.WriteString(pieceLetterFor(pt, moved.Side(), false))
	sb.WriteString(m.From().String())
	if m.IsEnPassant() {
		sb.WriteString("ep")
		sb.WriteByte(m.From().File().Char())
	} else if m.IsCapture() {
		sb.WriteByte('x')
		if reversible {
			sb.WriteByte(m.CapturedPiece().PieceLetter())
		}
	} else {
		sb.WriteByte('-')
	}
	sb.WriteString(to.String())
	if promo := m.PromotionPiece(); promo != NoPiece {
		sb.WriteByte('=')
		sb.WriteString(pieceLetterFor(promo.Type(), promo.Side(), false))
	}
	return sb.String()
}

// disambiguate implements the minimal-prefix SAN/FAN disambiguation
// algorithm: find every other square of the mover's side and type that
// attacks the same destination, discard those that are pinned off the
// destination's line, and emit the smallest of {nothing, file, rank,
// full square} that distinguishes the mover from the survivors.
func (pos *Position) disambiguate(m Move) string {
	moved := m.MovedPiece()
	pt := moved.Type()
	if pt == PieceTypePawn || pt == PieceTypeKing {
		return ""
	}

	from := m.From()
	to := m.To()
	us := moved.Side()
	occ := pos.Pieces()

	_, _, _, pinLine := pos.computeCheckAndPins(us, occ)

	candidates := pos.PiecesByType(pt, us) &^ SquareMask(from)
	var survivors []Square
	for candidates != 0 {
		s := candidates.ResetLSB()
		if pos.pieces[s].Type() != pt {
			continue
		}
		if Attacks(pt, us, s, occ)&SquareMask(to) == 0 {
			continue
		}
		if pin := pinLine[s]; pin != 0 && pin&SquareMask(to) == 0 {
			continue
		}
		survivors = append(survivors, s)
	}
	if len(survivors) == 0 {
		return ""
	}

	sameFile, sameRank := false, false
	for _, s := range survivors {
		if s.File() == from.File() {
			sameFile = true
		}
		if s.Rank() == from.Rank() {
			sameRank = true
		}
	}

	switch {
	case !sameFile:
		return string(from.File().Char())
	case !sameRank:
		return string(from.Rank().Char())
	default:
		return from.String()
	}
}
