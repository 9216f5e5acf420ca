package chess

import (
	"strconv"
	"strings"
)

// StartPositionFen is the FEN string for the standard initial chess position.
const StartPositionFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func pieceFromChar(ch byte) Piece {
	switch ch {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return NoPiece
	}
}

// ParseFEN parses a FEN string, accepting either standard KQkq castling
// notation or Shredder/X-FEN file-letter notation (A-H for White,
// a-h for Black) for Chess960 positions. Grounded on the teacher's
// ParseFEN, extended with the Shredder branch grounded on
// lgbarn-pgn-extract-go's chess960 castling-rights handling.
func ParseFEN(fen string) (*Position, error) {
	pos, err := parseFEN(fen)
	if err != nil {
		logInvalidFen(fen, err)
	}
	return pos, err
}

func parseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, invalidFen("fen %q: not enough fields", fen)
	}

	pos := NewEmptyPosition()

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, invalidFen("fen %q: expected 8 ranks, got %d", fen, len(ranks))
	}
	for i, rankStr := range ranks {
		if len(rankStr) == 0 {
			return nil, invalidFen("fen %q: empty rank description", fen)
		}
		rankIndex := 7 - i
		file := 0
		for _, ch := range []byte(rankStr) {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			piece := pieceFromChar(ch)
			if piece == NoPiece {
				return nil, invalidFen("fen %q: unrecognized piece character %q", fen, string(ch))
			}
			if file >= 8 {
				return nil, invalidFen("fen %q: too many squares in rank %d", fen, i)
			}
			sq := Square(rankIndex*8 + file)
			pos.addPiece(sq, piece)
			file++
		}
		if file != 8 {
			return nil, invalidFen("fen %q: rank %d does not sum to 8 files", fen, i)
		}
	}

	switch fields[1] {
	case "w":
		pos.sideToMove = White
	case "b":
		pos.sideToMove = Black
	default:
		return nil, invalidFen("fen %q: side to move must be 'w' or 'b'", fen)
	}

	pos.rookStartSquare = [2][2]Square{
		{NewSquare(FileH, Rank1), NewSquare(FileA, Rank1)},
		{NewSquare(FileH, Rank8), NewSquare(FileA, Rank8)},
	}

	if fields[2] != "-" {
		for _, ch := range []byte(fields[2]) {
			switch {
			case ch == 'K':
				rookSq, ok := inferCastlingRook(pos, White, KingSide)
				if !ok {
					return nil, invalidFen("fen %q: no white king-side rook found for castling right %q", fen, string(ch))
				}
				pos.rookStartSquare[White][KingSide] = rookSq
				if rookSq.File() != FileH {
					pos.chess960 = true
				}
				pos.castlingRights |= CastlingWhiteK
			case ch == 'Q':
				rookSq, ok := inferCastlingRook(pos, White, QueenSide)
				if !ok {
					return nil, invalidFen("fen %q: no white queen-side rook found for castling right %q", fen, string(ch))
				}
				pos.rookStartSquare[White][QueenSide] = rookSq
				if rookSq.File() != FileA {
					pos.chess960 = true
				}
				pos.castlingRights |= CastlingWhiteQ
			case ch == 'k':
				rookSq, ok := inferCastlingRook(pos, Black, KingSide)
				if !ok {
					return nil, invalidFen("fen %q: no black king-side rook found for castling right %q", fen, string(ch))
				}
				pos.rookStartSquare[Black][KingSide] = rookSq
				if rookSq.File() != FileH {
					pos.chess960 = true
				}
				pos.castlingRights |= CastlingBlackK
			case ch == 'q':
				rookSq, ok := inferCastlingRook(pos, Black, QueenSide)
				if !ok {
					return nil, invalidFen("fen %q: no black queen-side rook found for castling right %q", fen, string(ch))
				}
				pos.rookStartSquare[Black][QueenSide] = rookSq
				if rookSq.File() != FileA {
					pos.chess960 = true
				}
				pos.castlingRights |= CastlingBlackQ
			case ch >= 'A' && ch <= 'H':
				pos.chess960 = true
				if err := setShredderRook(pos, White, File(ch-'A')); err != nil {
					return nil, invalidFen("fen %q: %v", fen, err)
				}
			case ch >= 'a' && ch <= 'h':
				pos.chess960 = true
				if err := setShredderRook(pos, Black, File(ch-'a')); err != nil {
					return nil, invalidFen("fen %q: %v", fen, err)
				}
			default:
				return nil, invalidFen("fen %q: invalid castling rights character %q", fen, string(ch))
			}
		}
	}

	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return nil, invalidFen("fen %q: invalid en passant square: %v", fen, err)
		}
		pos.enPassantSquare = sq
	}

	if len(fields) > 4 {
		hm, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, invalidFen("fen %q: halfmove clock is not a number", fen)
		}
		pos.halfmoveClock = hm
	}
	if len(fields) > 5 {
		fm, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, invalidFen("fen %q: fullmove number is not a number", fen)
		}
		pos.fullmoveNumber = fm
	}

	pos.zobristKey = pos.ComputeZobrist()
	return pos, nil
}

// inferCastlingRook resolves the rook implied by a plain K/Q/k/q castling
// letter by scanning outward from the king along its own back rank until
// it finds an own rook: a valid Chess960 setup has exactly one rook on
// each side of the king, so the nearest rook in that direction is the
// only candidate. Grounded on lgbarn-pgn-extract-go/chess960.go's
// standard-vs-actual rook-file comparison, extended here to locate the
// actual file rather than just flagging a mismatch against a1/h1.
func inferCastlingRook(pos *Position, side Side, cs CastlingSide) (Square, bool) {
	rank := Rank1
	if side == Black {
		rank = Rank8
	}
	king := pos.kings[side]
	if king == 0 {
		return NoSquare, false
	}
	kingFile := int(king.LSB().File())
	step := 1
	if cs == QueenSide {
		step = -1
	}
	rook := PieceFromType(side, PieceTypeRook)
	for f := kingFile + step; f >= 0 && f <= 7; f += step {
		sq := NewSquare(File(f), rank)
		if pos.pieces[sq] == rook {
			return sq, true
		}
	}
	return NoSquare, false
}

// setShredderRook records a Chess960 castling right expressed as a rook
// file letter, inferring king-side vs queen-side from the rook's file
// relative to that side's king.
func setShredderRook(pos *Position, side Side, rookFile File) error {
	rank := Rank1
	if side == Black {
		rank = Rank8
	}
	king := pos.kings[side]
	if king == 0 {
		return invalidFen("no king placed for side %s before castling rights", side)
	}
	kingSq := king.LSB()
	if rookFile == kingSq.File() {
		return invalidFen("shredder castling file %q equals the king's own file", string(rookFile.Char()))
	}
	rookSq := NewSquare(rookFile, rank)
	cs := KingSide
	if rookFile < kingSq.File() {
		cs = QueenSide
	}
	pos.rookStartSquare[side][cs] = rookSq
	pos.castlingRights |= RightsFor(side, cs)
	return nil
}

func charFromPiece(p Piece) byte { return p.PieceLetter() }

// ToFEN renders the position in standard FEN, using KQkq castling notation.
func (pos *Position) ToFEN() string { return pos.toFEN(false) }

// ToShredderFEN renders the position with Shredder/X-FEN castling notation
// (file letters, uppercase for White, lowercase for Black), the form
// required to describe Chess960 castling rights unambiguously.
func (pos *Position) ToShredderFEN() string { return pos.toFEN(true) }

func (pos *Position) toFEN(shredder bool) string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := Square(rank*8 + file)
			p := pos.pieces[sq]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(charFromPiece(p))
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(pos.sideToMove.String())
	sb.WriteByte(' ')

	if pos.castlingRights == 0 {
		sb.WriteByte('-')
	} else if shredder {
		if pos.castlingRights&CastlingWhiteK != 0 {
			sb.WriteByte(pos.rookStartSquare[White][KingSide].File().Char() - 'a' + 'A')
		}
		if pos.castlingRights&CastlingWhiteQ != 0 {
			sb.WriteByte(pos.rookStartSquare[White][QueenSide].File().Char() - 'a' + 'A')
		}
		if pos.castlingRights&CastlingBlackK != 0 {
			sb.WriteByte(pos.rookStartSquare[Black][KingSide].File().Char())
		}
		if pos.castlingRights&CastlingBlackQ != 0 {
			sb.WriteByte(pos.rookStartSquare[Black][QueenSide].File().Char())
		}
	} else {
		if pos.castlingRights&CastlingWhiteK != 0 {
			sb.WriteByte('K')
		}
		if pos.castlingRights&CastlingWhiteQ != 0 {
			sb.WriteByte('Q')
		}
		if pos.castlingRights&CastlingBlackK != 0 {
			sb.WriteByte('k')
		}
		if pos.castlingRights&CastlingBlackQ != 0 {
			sb.WriteByte('q')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(pos.enPassantSquare.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(pos.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(pos.fullmoveNumber))
	return sb.String()
}
