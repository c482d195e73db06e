package status

import (
	"fmt"
	"math/bits"
)

// NumEnabledLights returns the number of enabled light slots.
func (s *Status) NumEnabledLights() int {
	return bits.OnesCount8(s.lightsEnabled)
}

// IsLightEnabled reports whether slot holds an enabled light. Slots outside
// [0, MaxLights) are never enabled.
func (s *Status) IsLightEnabled(slot uint8) bool {
	return slot < MaxLights && s.lightsEnabled&(1<<slot) != 0
}

// EnableLight stores l in the lowest free slot and returns that slot. The
// slot is needed to disable the light again.
func (s *Status) EnableLight(l LightParameters) (uint8, error) {
	if s.lightsEnabled == 0xff {
		return 0, fmt.Errorf("enable light: %w (max %d)", ErrTooManyLights, MaxLights)
	}
	slot := uint8(bits.TrailingZeros8(^s.lightsEnabled))
	s.lights[slot] = l
	s.lightsEnabled |= 1 << slot
	s.lightsStamp = nextStamp()
	return slot, nil
}

// DisableLight frees slot so a later EnableLight may reuse it.
func (s *Status) DisableLight(slot uint8) error {
	if err := s.checkEnabled(slot); err != nil {
		return fmt.Errorf("disable light: %w", err)
	}
	s.lightsEnabled &^= 1 << slot
	s.lightsStamp = nextStamp()
	return nil
}

// SetLightParameters replaces the parameters of an enabled light in place.
func (s *Status) SetLightParameters(slot uint8, l LightParameters) error {
	if err := s.checkEnabled(slot); err != nil {
		return fmt.Errorf("set light parameters: %w", err)
	}
	s.lights[slot] = l
	s.lightsStamp = nextStamp()
	return nil
}

func (s *Status) checkEnabled(slot uint8) error {
	if slot >= MaxLights {
		return fmt.Errorf("%w: slot %d", ErrLightSlotRange, slot)
	}
	if s.lightsEnabled&(1<<slot) == 0 {
		return fmt.Errorf("%w: slot %d", ErrLightNotEnabled, slot)
	}
	return nil
}

// EnabledLight returns the index'th enabled light, counting enabled slots in
// ascending slot order.
func (s *Status) EnabledLight(index int) (LightParameters, error) {
	if index < 0 || index >= s.NumEnabledLights() {
		return LightParameters{}, fmt.Errorf("%w: %d of %d", ErrEnabledLightIndex, index, s.NumEnabledLights())
	}
	for slot := 0; slot < MaxLights; slot++ {
		if s.lightsEnabled&(1<<slot) == 0 {
			continue
		}
		if index == 0 {
			return s.lights[slot], nil
		}
		index--
	}
	panic("unreachable")
}

// EnabledLights returns all enabled lights in ascending slot order.
func (s *Status) EnabledLights() []LightParameters {
	out := make([]LightParameters, 0, s.NumEnabledLights())
	for slot := 0; slot < MaxLights; slot++ {
		if s.lightsEnabled&(1<<slot) != 0 {
			out = append(out, s.lights[slot])
		}
	}
	return out
}

func (s *Status) LightsChanged(actual *Status) bool {
	if s.lightsStamp == actual.lightsStamp {
		return false
	}
	if s.lightsEnabled != actual.lightsEnabled {
		return true
	}
	for slot := 0; slot < MaxLights; slot++ {
		if s.lightsEnabled&(1<<slot) != 0 && s.lights[slot] != actual.lights[slot] {
			return true
		}
	}
	return false
}

// UpdateLights copies the enabled set, the light records and the stamp.
func (s *Status) UpdateLights(actual *Status) {
	s.lights = actual.lights
	s.lightsEnabled = actual.lightsEnabled
	s.lightsStamp = actual.lightsStamp
}
