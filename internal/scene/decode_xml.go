package scene

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

func attr(el xml.StartElement, name string) string {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// charsetReader converts documents that declare a non UTF-8 encoding.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, fmt.Errorf("unknown charset %q: %w", label, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported charset %q", label)
	}
	return transform.NewReader(input, enc.NewDecoder()), nil
}

// decodeXML streams start elements to h in document order. Records already
// handed to h stay applied when a later token fails to parse.
func decodeXML(r io.Reader, h RecordHandler) error {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charsetReader
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("parsing xml: %w", err)
		}

		el, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch el.Name.Local {
		case "sector", "room":
			h.Room(RoomRecord{
				Name:        attr(el, "name"),
				Description: attr(el, "description"),
				State:       attr(el, "state"),
				North:       attr(el, "north"),
				South:       attr(el, "south"),
				East:        attr(el, "east"),
				West:        attr(el, "west"),
			})
		case "player", "ally", "enemy":
			h.Entity(EntityRecord{
				Kind:        el.Name.Local,
				Name:        attr(el, "name"),
				Description: attr(el, "description"),
			})
		}
	}
}
