// Package catalog holds the static game data the template editor validates against.
package catalog

// Catalog is the read-only game data: equipment slots, gear sets, ability
// categories and the raids a group can plan for
type Catalog struct {
	slots      []string
	sets       []string
	categories []string
	abilities  map[string][]string
	raids      []string
}

// Config builds a custom catalog, mostly for tests
type Config struct {
	EquipmentSlots []string
	Sets           []string

	// Categories lists ability categories in display order; each must have
	// an entry in Abilities
	Categories []string
	Abilities  map[string][]string

	Raids []string
}

// New creates a catalog from cfg, copying every slice
func New(cfg *Config) *Catalog {
	if cfg == nil {
		cfg = &Config{}
	}
	abilities := make(map[string][]string, len(cfg.Abilities))
	for category, list := range cfg.Abilities {
		abilities[category] = append([]string(nil), list...)
	}
	return &Catalog{
		slots:      append([]string(nil), cfg.EquipmentSlots...),
		sets:       append([]string(nil), cfg.Sets...),
		categories: append([]string(nil), cfg.Categories...),
		abilities:  abilities,
		raids:      append([]string(nil), cfg.Raids...),
	}
}

// Default returns the built-in catalog
func Default() *Catalog {
	return New(&Config{
		EquipmentSlots: defaultEquipmentSlots,
		Sets:           defaultSets,
		Categories:     defaultCategories,
		Abilities:      defaultAbilities,
		Raids:          defaultRaids,
	})
}

// EquipmentSlots returns the slot names every template setup is keyed by
func (c *Catalog) EquipmentSlots() []string {
	return append([]string(nil), c.slots...)
}

// Sets returns the gear sets selectable for a setup slot
func (c *Catalog) Sets() []string {
	return append([]string(nil), c.sets...)
}

// HasSet reports whether name is a known set
func (c *Catalog) HasSet(name string) bool {
	return contains(c.sets, name)
}

// HasSlot reports whether slot is a known equipment slot
func (c *Catalog) HasSlot(slot string) bool {
	return contains(c.slots, slot)
}

// Categories returns the ability categories in display order
func (c *Catalog) Categories() []string {
	return append([]string(nil), c.categories...)
}

// HasCategory reports whether category is known
func (c *Catalog) HasCategory(category string) bool {
	_, ok := c.abilities[category]
	return ok
}

// Abilities returns the abilities of a category, nil when unknown
func (c *Catalog) Abilities(category string) []string {
	list, ok := c.abilities[category]
	if !ok {
		return nil
	}
	return append([]string(nil), list...)
}

// FirstAbility returns the first ability of a category
func (c *Catalog) FirstAbility(category string) (string, bool) {
	list := c.abilities[category]
	if len(list) == 0 {
		return "", false
	}
	return list[0], true
}

// HasAbility reports whether ability belongs to category
func (c *Catalog) HasAbility(category, ability string) bool {
	return contains(c.abilities[category], ability)
}

// Raids returns the raid names offered for selection
func (c *Catalog) Raids() []string {
	return append([]string(nil), c.raids...)
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
