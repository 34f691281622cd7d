package registry

import "github.com/quantmind-br/resourcelist-go/internal/domain"

// Preset list names registered for cartridge projects
const (
	PresetPipelets = "pipelets"
	PresetORM      = "orm"
)

// preset describes one cartridge list on top of the registry defaults
type preset struct {
	name     string
	includes []string
	excludes []string
	ext      string
	fileName string
}

var cartridgePresets = []preset{
	{
		name:     PresetPipelets,
		includes: []string{"**/pipelet/**/*.xml"},
		excludes: []string{"**/*_??_??.xml"},
		ext:      "xml",
		fileName: "resources/" + domain.PlaceholderProject + "/pipeline/pipelets.resource",
	},
	{
		name:     PresetORM,
		includes: []string{"**/**/*.orm"},
		ext:      "orm",
		fileName: "resources/" + domain.PlaceholderProject + "/orm/orm.resource",
	},
}

// ApplyCartridgeDefaults registers the pipelet and ORM lists of a cartridge
// project. Lists already defined under a preset name are left untouched.
func ApplyCartridgeDefaults(reg *Registry) error {
	for _, p := range cartridgePresets {
		if reg.Has(p.name) {
			continue
		}
		cfg, err := reg.Define(p.name)
		if err != nil {
			return err
		}
		cfg.Include(p.includes...).Exclude(p.excludes...)
		cfg.FileExtension = p.ext
		cfg.FileName = p.fileName
	}
	return nil
}
