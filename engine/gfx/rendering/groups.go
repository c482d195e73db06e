package rendering

import "strings"

// Groups is a set of pipeline state groups.
type Groups uint8

const (
	GroupCamera Groups = 1 << iota
	GroupLights
	GroupMaterial
	GroupModelView
	GroupPointParameters
	GroupProjection
	GroupTextureUnits

	AllGroups = GroupCamera | GroupLights | GroupMaterial | GroupModelView |
		GroupPointParameters | GroupProjection | GroupTextureUnits
)

var groupNames = [...]string{
	"camera",
	"lights",
	"material",
	"modelview",
	"point",
	"projection",
	"texunits",
}

func (g Groups) Has(o Groups) bool { return g&o == o }

// Count returns the number of groups in g.
func (g Groups) Count() int {
	n := 0
	for i := range groupNames {
		if g&(1<<i) != 0 {
			n++
		}
	}
	return n
}

func (g Groups) String() string {
	if g == 0 {
		return "none"
	}
	var sb strings.Builder
	for i, name := range groupNames {
		if g&(1<<i) == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(name)
	}
	return sb.String()
}
