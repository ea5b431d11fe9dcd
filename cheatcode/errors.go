package cheatcode

import "errors"

var (
	ErrEmptyWordList   = errors.New("cheatcode: empty word list")
	ErrUnknownKind     = errors.New("cheatcode: unknown kind")
	ErrUnknownMode     = errors.New("cheatcode: unknown activation mode")
	ErrMissingKind     = errors.New("cheatcode: kind has no definition")
	ErrDuplicateKind   = errors.New("cheatcode: kind defined more than once")
	ErrDuplicatePhrase = errors.New("cheatcode: could not generate a unique phrase")
	ErrNilWordPool     = errors.New("cheatcode: nil word pool")
)
