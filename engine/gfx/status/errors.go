package status

import "errors"

// Contract violations. Callers are expected to avoid them; they are returned
// as errors so a misbehaving caller can be reported instead of corrupting
// state.
var (
	ErrTooManyLights     = errors.New("status: all light slots are in use")
	ErrLightNotEnabled   = errors.New("status: light slot is not enabled")
	ErrLightSlotRange    = errors.New("status: light slot out of range")
	ErrEnabledLightIndex = errors.New("status: enabled light index out of range")
	ErrTextureUnitRange  = errors.New("status: texture unit out of range")
)
