package chess_test

import (
	"testing"

	"github.com/Oliverans/chess-movegen/chess"
)

func TestAttacksRookCornerEmptyBoard(t *testing.T) {
	a1, _ := chess.ParseSquare("a1")
	got := chess.Attacks(chess.PieceTypeRook, chess.White, a1, 0)
	if want := 14; got.PopCount() != want {
		t.Fatalf("rook on a1, empty board: got %d attacked squares, want %d", got.PopCount(), want)
	}
}

func TestAttacksBishopCornerEmptyBoard(t *testing.T) {
	a1, _ := chess.ParseSquare("a1")
	got := chess.Attacks(chess.PieceTypeBishop, chess.White, a1, 0)
	if want := 7; got.PopCount() != want {
		t.Fatalf("bishop on a1, empty board: got %d attacked squares, want %d", got.PopCount(), want)
	}
}

func TestAttacksQueenCenterEmptyBoard(t *testing.T) {
	d4, _ := chess.ParseSquare("d4")
	got := chess.Attacks(chess.PieceTypeQueen, chess.White, d4, 0)
	if want := 27; got.PopCount() != want {
		t.Fatalf("queen on d4, empty board: got %d attacked squares, want %d", got.PopCount(), want)
	}
}

func TestAttacksKnightCornerVsCenter(t *testing.T) {
	a1, _ := chess.ParseSquare("a1")
	d4, _ := chess.ParseSquare("d4")
	if got := chess.Attacks(chess.PieceTypeKnight, chess.White, a1, 0).PopCount(); got != 2 {
		t.Fatalf("knight on a1: got %d attacked squares, want 2", got)
	}
	if got := chess.Attacks(chess.PieceTypeKnight, chess.White, d4, 0).PopCount(); got != 8 {
		t.Fatalf("knight on d4: got %d attacked squares, want 8", got)
	}
}

func TestAttacksKingCornerVsCenter(t *testing.T) {
	a1, _ := chess.ParseSquare("a1")
	d4, _ := chess.ParseSquare("d4")
	if got := chess.Attacks(chess.PieceTypeKing, chess.White, a1, 0).PopCount(); got != 3 {
		t.Fatalf("king on a1: got %d attacked squares, want 3", got)
	}
	if got := chess.Attacks(chess.PieceTypeKing, chess.White, d4, 0).PopCount(); got != 8 {
		t.Fatalf("king on d4: got %d attacked squares, want 8", got)
	}
}

func TestAttacksRookStopsAtFirstBlocker(t *testing.T) {
	a1, _ := chess.ParseSquare("a1")
	a4, _ := chess.ParseSquare("a4")
	occ := chess.SquareMask(a4)
	got := chess.Attacks(chess.PieceTypeRook, chess.White, a1, occ)
	if !got.Has(a4) {
		t.Fatalf("rook on a1 should attack the blocker on a4")
	}
	a5, _ := chess.ParseSquare("a5")
	if got.Has(a5) {
		t.Fatalf("rook on a1 should not see past the blocker on a4")
	}
}

func TestAttacksPawnSideDependent(t *testing.T) {
	e4, _ := chess.ParseSquare("e4")
	white := chess.Attacks(chess.PieceTypePawn, chess.White, e4, 0)
	black := chess.Attacks(chess.PieceTypePawn, chess.Black, e4, 0)
	d5, _ := chess.ParseSquare("d5")
	f5, _ := chess.ParseSquare("f5")
	d3, _ := chess.ParseSquare("d3")
	f3, _ := chess.ParseSquare("f3")
	if !white.Has(d5) || !white.Has(f5) {
		t.Fatalf("white pawn on e4 should attack d5 and f5")
	}
	if !black.Has(d3) || !black.Has(f3) {
		t.Fatalf("black pawn on e4 should attack d3 and f3")
	}
}

func TestBetweenAndLine(t *testing.T) {
	a1, _ := chess.ParseSquare("a1")
	a8, _ := chess.ParseSquare("a8")
	a4, _ := chess.ParseSquare("a4")
	between := chess.Between(a1, a8)
	if !between.Has(a4) {
		t.Fatalf("a4 should lie between a1 and a8")
	}
	if between.Has(a1) || between.Has(a8) {
		t.Fatalf("Between should exclude the endpoints")
	}
	line := chess.Line(a1, a8)
	h1, _ := chess.ParseSquare("h1")
	if line.Has(h1) {
		t.Fatalf("the a-file line should not include h1")
	}
	if !line.Has(a4) {
		t.Fatalf("the a-file line should include a4")
	}

	e4, _ := chess.ParseSquare("e4")
	f5, _ := chess.ParseSquare("f5")
	if chess.Between(a1, e4) != 0 {
		t.Fatalf("a1 and e4 do not share a rank, file, or diagonal")
	}
	_ = f5
}
