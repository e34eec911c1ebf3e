package models

// Role is the raid role a player fills
type Role string

const (
	// RoleTank holds aggro
	RoleTank Role = "Tank"

	// RoleHeal keeps the group alive
	RoleHeal Role = "Heal"

	// RoleDPS deals damage
	RoleDPS Role = "DPS"
)

// Roles returns the closed set of roles in display order
func Roles() []Role {
	return []Role{RoleTank, RoleHeal, RoleDPS}
}

// IsValid reports whether r is one of the known roles
func (r Role) IsValid() bool {
	switch r {
	case RoleTank, RoleHeal, RoleDPS:
		return true
	}
	return false
}

// Bars holds the two skill bars of a player
type Bars struct {
	Front []string `json:"front"`
	Back  []string `json:"back"`
}

// ChampionCategory names one of the three champion point trees
type ChampionCategory string

const (
	ChampionWarrior ChampionCategory = "warrior"
	ChampionMage    ChampionCategory = "mage"
	ChampionSteed   ChampionCategory = "steed"
)

// ChampionCategories returns the champion point trees in display order
func ChampionCategories() []ChampionCategory {
	return []ChampionCategory{ChampionWarrior, ChampionMage, ChampionSteed}
}

// ChampionPoints groups the slotted champion perks by tree
type ChampionPoints struct {
	Warrior []string `json:"warrior"`
	Mage    []string `json:"mage"`
	Steed   []string `json:"steed"`
}

// Category returns the list for a tree, or false when the tree is unknown
func (c *ChampionPoints) Category(category ChampionCategory) ([]string, bool) {
	switch category {
	case ChampionWarrior:
		return c.Warrior, true
	case ChampionMage:
		return c.Mage, true
	case ChampionSteed:
		return c.Steed, true
	}
	return nil, false
}

// Player is one member of the raid roster
type Player struct {
	// ID is unique within a roster and never changes
	ID int `json:"id"`

	Name string `json:"name"`

	// Role is usually one of Roles but is stored as given
	Role Role `json:"role"`

	// Classes are the class skill lines the player runs
	Classes []string `json:"classes"`

	// Sets are the gear set names the player wears
	Sets []string `json:"sets"`

	Bars           Bars           `json:"bars"`
	ChampionPoints ChampionPoints `json:"championPoints"`
}

// Clone returns a deep copy of the player
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}
	return &Player{
		ID:      p.ID,
		Name:    p.Name,
		Role:    p.Role,
		Classes: cloneStrings(p.Classes),
		Sets:    cloneStrings(p.Sets),
		Bars: Bars{
			Front: cloneStrings(p.Bars.Front),
			Back:  cloneStrings(p.Bars.Back),
		},
		ChampionPoints: p.ChampionPoints.clone(),
	}
}

func (c ChampionPoints) clone() ChampionPoints {
	return ChampionPoints{
		Warrior: cloneStrings(c.Warrior),
		Mage:    cloneStrings(c.Mage),
		Steed:   cloneStrings(c.Steed),
	}
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
