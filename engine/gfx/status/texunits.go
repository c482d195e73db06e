package status

import "fmt"

func (s *Status) SetTextureUnitUsage(unit uint8, use TexUnitUsage) error {
	if unit >= MaxTextures {
		return fmt.Errorf("set texture unit usage: %w: unit %d", ErrTextureUnitRange, unit)
	}
	s.texUnits[unit] = use
	s.texUnitsStamp = nextStamp()
	return nil
}

func (s *Status) TextureUnitUsage(unit uint8) (TexUnitUsage, error) {
	if unit >= MaxTextures {
		return 0, fmt.Errorf("texture unit usage: %w: unit %d", ErrTextureUnitRange, unit)
	}
	return s.texUnits[unit], nil
}

func (s *Status) TextureUnitUsages() [MaxTextures]TexUnitUsage { return s.texUnits }

func (s *Status) TextureUnitsChanged(actual *Status) bool {
	if s.texUnitsStamp == actual.texUnitsStamp {
		return false
	}
	return s.texUnits != actual.texUnits
}

func (s *Status) UpdateTextureUnits(actual *Status) {
	s.texUnits = actual.texUnits
	s.texUnitsStamp = actual.texUnitsStamp
}
