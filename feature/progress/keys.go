package progress

import (
	"fmt"
	"strconv"
	"strings"
)

// UpgradeKey renders the composite identifier of one station level tier.
func UpgradeKey(stationID string, level int) string {
	return fmt.Sprintf("%s-%d", stationID, level)
}

// ParseUpgradeKey splits an upgrade key back into (stationId, level). The
// split is on the last dash so station ids containing dashes still round
// trip.
func ParseUpgradeKey(key string) (string, int, error) {
	idx := strings.LastIndex(key, "-")
	if idx <= 0 || idx == len(key)-1 {
		return "", 0, fmt.Errorf("malformed upgrade key %q", key)
	}

	level, err := strconv.Atoi(key[idx+1:])
	if err != nil || level < 0 {
		return "", 0, fmt.Errorf("malformed upgrade key %q", key)
	}

	return key[:idx], level, nil
}
