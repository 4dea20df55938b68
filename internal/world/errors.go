package world

import "errors"

// Fatal generation failures. Path construction never returns a partial path
// alongside any of these.
var (
	ErrPathExhausted    = errors.New("path construction exhausted its attempt budget")
	ErrTemplateNotFound = errors.New("room template not found")
	ErrNoSecondaryDoor  = errors.New("template has no door cell besides the entry")
	ErrNoStartRoom      = errors.New("start rooms have not been created")
	ErrEmptyPool        = errors.New("room template pool is empty")
	ErrStartBlocked     = errors.New("start room does not fit the grid")
)
