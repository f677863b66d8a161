package profilestore

import (
	"fmt"

	"github.com/runoshun/netshare/internal/domain"
	"gopkg.in/yaml.v3"
)

// importFile is the YAML document accepted by ParseYAML.
//
//	profiles:
//	  - name: media
//	    unc: '\\nas\media'
//	    letter: M
//	    username: bob
type importFile struct {
	Profiles []domain.Profile `yaml:"profiles"`
}

// ParseYAML decodes a YAML profile list.
// Every profile is validated; the first invalid one aborts the import.
func ParseYAML(data []byte) ([]domain.Profile, error) {
	var f importFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode profiles: %w", err)
	}
	for i, p := range f.Profiles {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("profile %d (%q): %w", i+1, p.Name, err)
		}
	}
	return f.Profiles, nil
}
