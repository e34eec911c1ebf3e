package models

// Roster is the canonical list of players for one raid group
type Roster struct {
	// ID keys the roster in storage
	ID string `json:"id"`

	RaidName string `json:"raidName"`

	// Players keeps the seed order
	Players []*Player `json:"players"`
}

// Clone returns a deep copy of the roster
func (r *Roster) Clone() *Roster {
	if r == nil {
		return nil
	}
	players := make([]*Player, 0, len(r.Players))
	for _, p := range r.Players {
		players = append(players, p.Clone())
	}
	return &Roster{
		ID:       r.ID,
		RaidName: r.RaidName,
		Players:  players,
	}
}

// FindPlayer returns the player with the given id
func (r *Roster) FindPlayer(id int) (*Player, bool) {
	for _, p := range r.Players {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// PlayerIDs returns the player ids in roster order
func (r *Roster) PlayerIDs() []int {
	ids := make([]int, 0, len(r.Players))
	for _, p := range r.Players {
		ids = append(ids, p.ID)
	}
	return ids
}
