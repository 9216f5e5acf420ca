package chess

import "github.com/rs/zerolog/log"

// logInvalidFen and logInvalidMove record boundary failures -- malformed
// FEN or move strings supplied by a caller -- at debug level. Nothing in
// the generator or renderer hot path logs; both are pure functions of an
// already-valid Position and never fail once the position has parsed.
func logInvalidFen(fen string, err error) {
	log.Debug().Str("fen", fen).Err(err).Msg("rejected fen")
}

func logInvalidMoveString(s string, err error) {
	log.Debug().Str("move", s).Err(err).Msg("rejected move string")
}
