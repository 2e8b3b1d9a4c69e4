package apperror

import "errors"

var (
	ErrInvalidConfiguration = errors.New("invalid board configuration")
	ErrOutOfBounds          = errors.New("coordinate out of bounds")
	ErrCorruptSaveData      = errors.New("corrupt save data")

	ErrSaveNotFound         = errors.New("save not found")
	ErrSessionNotFound      = errors.New("game session not found")
	ErrUnknownPreset        = errors.New("unknown preset")
	ErrUnknownStorageDriver = errors.New("unknown storage driver")
)
