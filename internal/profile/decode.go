package profile

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Decode builds a profile from loosely typed input such as a config section
// or a request body. Numbers given as strings are accepted.
func Decode(raw map[string]any) (Profile, error) {
	var p Profile
	if len(raw) == 0 {
		return p, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &p,
	})
	if err != nil {
		return p, fmt.Errorf("creating profile decoder: %w", err)
	}

	if err := decoder.Decode(raw); err != nil {
		return Profile{}, fmt.Errorf("decoding profile: %w", err)
	}

	if err := p.Validate(); err != nil {
		return Profile{}, err
	}

	return p, nil
}
