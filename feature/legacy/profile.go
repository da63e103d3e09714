package legacy

import (
	"fmt"

	"hideout-tracker/feature/progress"

	"github.com/pelletier/go-toml/v2"
)

// ProfileVersion is the profile wire format generation.
const ProfileVersion = 1

// Profile is the portable user-state container shared by the legacy blob,
// the TOML export and the TOML import.
type Profile struct {
	Version   int                `json:"version" toml:"version"`
	UserState progress.UserState `json:"userState" toml:"userState"`
}

// EncodeProfile renders a profile as human-editable TOML.
func EncodeProfile(p Profile) ([]byte, error) {
	data, err := toml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to encode profile: %w", err)
	}
	return data, nil
}

// DecodeProfile parses a TOML profile. The error message is descriptive so
// it can surface as an inline validation error with the offending text left
// editable.
func DecodeProfile(data []byte) (Profile, error) {
	var p Profile
	if err := toml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("invalid profile: %w", err)
	}
	return p, nil
}
