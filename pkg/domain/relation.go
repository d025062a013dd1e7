package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type LocationDates struct {
	Location string   `json:"location"`
	Dates    []string `json:"dates"`
}

// RelationMap keeps the upstream key order of datesLocations, which a Go map
// would lose.
type RelationMap []LocationDates

type Relation struct {
	ID             int         `json:"id"`
	DatesLocations RelationMap `json:"datesLocations"`
}

func (m RelationMap) Locations() []string {
	locations := make([]string, 0, len(m))
	for _, entry := range m {
		locations = append(locations, entry.Location)
	}
	return locations
}

// UnmarshalJSON reads a JSON object in document order. Anything that is not
// an object decodes to an empty map, and a value that is not a string array
// decodes to no dates.
func (m *RelationMap) UnmarshalJSON(data []byte) error {
	*m = RelationMap{}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("datesLocations: %w", err)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("datesLocations: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("datesLocations: unexpected key %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("datesLocations[%s]: %w", key, err)
		}

		var dates []string
		if err := json.Unmarshal(raw, &dates); err != nil {
			dates = nil
		}

		*m = append(*m, LocationDates{Location: key, Dates: dates})
	}

	return nil
}
