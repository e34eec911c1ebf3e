// Package seed loads the roster a raid group starts from.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	raiderr "github.com/KirkDiggler/raidtemplate/internal/errors"
	"github.com/KirkDiggler/raidtemplate/internal/models"
)

//go:embed raid_template.json
var bundled []byte

// Data is the seed file schema
type Data struct {
	RaidName string           `json:"raidName"`
	Players  []*models.Player `json:"players"`
}

// Default parses the bundled seed roster
func Default() (*Data, error) {
	return Parse(bundled)
}

// Load reads a seed file with the bundled schema from disk
func Load(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes and validates seed JSON
func Parse(raw []byte) (*Data, error) {
	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, raiderr.WrapWithCode(err, raiderr.CodeInvalidArgument, "failed to decode seed")
	}
	if err := Validate(data.Players); err != nil {
		return nil, err
	}
	return &data, nil
}

// Validate checks that every player is present and ids are unique
func Validate(players []*models.Player) error {
	seen := make(map[int]struct{}, len(players))
	for i, p := range players {
		if p == nil {
			return raiderr.InvalidArgumentf("player at position %d is empty", i)
		}
		if _, dup := seen[p.ID]; dup {
			return raiderr.InvalidArgumentf("duplicate player id %d", p.ID).
				WithMeta("player_id", p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}
