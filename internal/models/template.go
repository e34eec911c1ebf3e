package models

import "sort"

// SkillSlotCount is the number of skill slots per player: two bars of five
// plus one ultimate each
const SkillSlotCount = 12

const (
	// FrontUltimateSlot is the ultimate of the front bar
	FrontUltimateSlot = 10

	// BackUltimateSlot is the ultimate of the back bar
	BackUltimateSlot = 11
)

// SkillSlot is an optional (category, ability) pick
type SkillSlot struct {
	Category string `json:"category,omitempty"`
	Ability  string `json:"ability,omitempty"`
}

// IsEmpty reports whether nothing is slotted
func (s SkillSlot) IsEmpty() bool {
	return s.Category == "" && s.Ability == ""
}

// PlayerConfig is the per-player part of a raid template
type PlayerConfig struct {
	Player

	// Setup maps an equipment slot name to the chosen set, "" when unassigned
	Setup map[string]string `json:"setup"`

	Skills [SkillSlotCount]SkillSlot `json:"skills"`

	Food   string `json:"food"`
	Potion string `json:"potion"`
}

// Clone returns a deep copy of the configuration
func (c *PlayerConfig) Clone() *PlayerConfig {
	if c == nil {
		return nil
	}
	var setup map[string]string
	if c.Setup != nil {
		setup = make(map[string]string, len(c.Setup))
		for slot, set := range c.Setup {
			setup[slot] = set
		}
	}
	return &PlayerConfig{
		Player: *c.Player.Clone(),
		Setup:  setup,
		Skills: c.Skills,
		Food:   c.Food,
		Potion: c.Potion,
	}
}

// RaidTemplate is the extended configuration of every roster player
type RaidTemplate struct {
	// ID is the roster the template was derived from
	ID string `json:"id"`

	RaidName string `json:"raidName"`

	Players map[int]*PlayerConfig `json:"players"`
}

// Clone returns a deep copy of the template
func (t *RaidTemplate) Clone() *RaidTemplate {
	if t == nil {
		return nil
	}
	players := make(map[int]*PlayerConfig, len(t.Players))
	for id, cfg := range t.Players {
		players[id] = cfg.Clone()
	}
	return &RaidTemplate{
		ID:       t.ID,
		RaidName: t.RaidName,
		Players:  players,
	}
}

// SortedPlayers returns the configurations ordered by player id
func (t *RaidTemplate) SortedPlayers() []*PlayerConfig {
	out := make([]*PlayerConfig, 0, len(t.Players))
	for _, cfg := range t.Players {
		out = append(out, cfg)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

// PlayerIDs returns the player ids in ascending order
func (t *RaidTemplate) PlayerIDs() []int {
	ids := make([]int, 0, len(t.Players))
	for id := range t.Players {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
