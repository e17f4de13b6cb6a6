package scene

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// document is the YAML and JSON scene layout. Sectors are applied in list
// order, each followed by its entities.
type document struct {
	Sectors []sectorDoc `yaml:"sectors" json:"sectors"`
}

type sectorDoc struct {
	RoomRecord `yaml:",inline"`
	Entities   []EntityRecord `yaml:"entities,omitempty" json:"entities,omitempty"`
}

func (d *document) emit(h RecordHandler) {
	for _, s := range d.Sectors {
		h.Room(s.RoomRecord)
		for _, e := range s.Entities {
			h.Entity(e)
		}
	}
}

func decodeYAML(r io.Reader, h RecordHandler) error {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return fmt.Errorf("parsing yaml: %w", err)
	}
	doc.emit(h)
	return nil
}

func decodeJSON(r io.Reader, h RecordHandler) error {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return fmt.Errorf("parsing json: %w", err)
	}
	doc.emit(h)
	return nil
}
