package game

import "errors"

var (
	ErrRoomFull       = errors.New("room is full")
	ErrAlreadyPresent = errors.New("entity already in room")
	ErrUnknownRoom    = errors.New("room not found")
	ErrUnknownEntity  = errors.New("entity not found")
)
