package sceneedit

import "errors"

var (
	ErrUnknownThing    = errors.New("sceneedit: unknown thing")
	ErrUnknownAction   = errors.New("sceneedit: unknown action")
	ErrDuplicateUID    = errors.New("sceneedit: duplicate uid")
	ErrPropertyType    = errors.New("sceneedit: property type mismatch")
	ErrNoSceneStore    = errors.New("sceneedit: no scene store")
	ErrNoCreator       = errors.New("sceneedit: registry cannot create things")
	ErrSettingsFormat  = errors.New("sceneedit: unsupported settings format")
	ErrEmptyScript     = errors.New("sceneedit: script has no steps")
	ErrUnknownButton   = errors.New("sceneedit: unknown mouse button")
	ErrUnknownStepKind = errors.New("sceneedit: unknown script action")
)
