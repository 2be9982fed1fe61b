package gdapi

import (
	"fmt"
	"strconv"
	"strings"
)

// decodeLevel parses a getGJLevels21 response. The body is '#'-delimited:
// the first segment is a flat key:value:key:value list describing the level,
// the second describes its author as player_id:username:account_id. Trailing
// segments (page info, hash) are ignored.
//
// The decoder fails closed: any missing segment, missing required key or
// cross-field mismatch is an error, never a partially populated Level.
func decodeLevel(body string) (Level, error) {
	segments := strings.Split(body, "#")
	if len(segments) < 2 {
		return Level{}, fmt.Errorf("want at least 2 segments, got %d", len(segments))
	}

	kv := parsePairs(segments[0])

	name, ok := kv["2"]
	if !ok || name == "" {
		return Level{}, fmt.Errorf("missing level name (key 2)")
	}

	playerRaw, ok := kv["6"]
	if !ok {
		return Level{}, fmt.Errorf("missing level owner (key 6)")
	}
	playerID, err := strconv.ParseInt(playerRaw, 10, 32)
	if err != nil {
		return Level{}, fmt.Errorf("parsing level owner %q: %w", playerRaw, err)
	}

	fields := strings.Split(segments[1], ":")
	if len(fields) < 3 {
		return Level{}, fmt.Errorf("author segment has %d fields, want at least 3", len(fields))
	}

	authorPlayerID, err := strconv.ParseInt(fields[0], 10, 32)
	if err != nil {
		return Level{}, fmt.Errorf("parsing author player id %q: %w", fields[0], err)
	}
	if authorPlayerID != playerID {
		return Level{}, fmt.Errorf("author segment player id %d does not match level owner %d", authorPlayerID, playerID)
	}

	accountID, err := strconv.ParseInt(fields[2], 10, 32)
	if err != nil {
		return Level{}, fmt.Errorf("parsing author account id %q: %w", fields[2], err)
	}

	return Level{
		Name:       name,
		AuthorID:   int32(accountID),
		AuthorName: fields[1],
		Difficulty: decodeDifficulty(kv),
	}, nil
}

// parsePairs splits a segment into colon-delimited tokens and interprets
// them as alternating key/value pairs. A trailing key without a value is
// dropped.
func parsePairs(s string) map[string]string {
	tokens := strings.Split(s, ":")
	pairs := make(map[string]string, len(tokens)/2)
	for i := 0; i+1 < len(tokens); i += 2 {
		pairs[tokens[i]] = tokens[i+1]
	}
	return pairs
}
