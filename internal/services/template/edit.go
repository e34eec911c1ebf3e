package template

import (
	"github.com/KirkDiggler/raidtemplate/internal/catalog"
	raiderr "github.com/KirkDiggler/raidtemplate/internal/errors"
	"github.com/KirkDiggler/raidtemplate/internal/models"
)

// Field names the part of a player configuration a FieldChange writes
type Field string

const (
	// FieldChampionPoint replaces one entry of a champion point tree
	FieldChampionPoint Field = "championPoint"

	// FieldSet replaces one entry of the player's set list
	FieldSet Field = "set"

	// FieldSetup assigns a set to an equipment slot
	FieldSetup Field = "setup"

	FieldFood   Field = "food"
	FieldPotion Field = "potion"
)

// FieldChange is one write to a player configuration
type FieldChange struct {
	PlayerID int
	Field    Field

	// Category selects the champion point tree for FieldChampionPoint
	Category models.ChampionCategory

	// Index is used by FieldChampionPoint and FieldSet
	Index int

	// Slot is the equipment slot for FieldSetup
	Slot string

	Value string
}

// SkillChange sets one skill slot. A blank Category clears the slot; a
// blank Ability picks the first ability of the category.
type SkillChange struct {
	PlayerID int
	Index    int
	Category string
	Ability  string
}

// ApplyField writes change into tmpl. On error tmpl is left as it was.
func ApplyField(tmpl *models.RaidTemplate, change FieldChange) error {
	cfg, err := playerConfig(tmpl, change.PlayerID)
	if err != nil {
		return err
	}

	switch change.Field {
	case FieldChampionPoint:
		list, ok := cfg.ChampionPoints.Category(change.Category)
		if !ok {
			return invalidTarget("unknown champion category %q", change.Category)
		}
		if change.Index < 0 || change.Index >= len(list) {
			return invalidTarget("champion point index %d out of range", change.Index)
		}
		list[change.Index] = change.Value

	case FieldSet:
		if change.Index < 0 || change.Index >= len(cfg.Sets) {
			return invalidTarget("set index %d out of range", change.Index)
		}
		cfg.Sets[change.Index] = change.Value

	case FieldSetup:
		if _, ok := cfg.Setup[change.Slot]; !ok {
			return invalidTarget("unknown equipment slot %q", change.Slot)
		}
		cfg.Setup[change.Slot] = change.Value

	case FieldFood:
		cfg.Food = change.Value

	case FieldPotion:
		cfg.Potion = change.Value

	default:
		return invalidTarget("unknown field %q", change.Field)
	}

	return nil
}

// ApplySkill writes change into tmpl using cat to resolve abilities.
// On error tmpl is left as it was.
func ApplySkill(tmpl *models.RaidTemplate, cat *catalog.Catalog, change SkillChange) error {
	cfg, err := playerConfig(tmpl, change.PlayerID)
	if err != nil {
		return err
	}

	if change.Index < 0 || change.Index >= models.SkillSlotCount {
		return invalidTarget("skill index %d out of range", change.Index)
	}

	if change.Category == "" {
		cfg.Skills[change.Index] = models.SkillSlot{}
		return nil
	}

	if !cat.HasCategory(change.Category) {
		return invalidTarget("unknown skill category %q", change.Category)
	}

	ability := change.Ability
	if ability == "" {
		first, ok := cat.FirstAbility(change.Category)
		if !ok {
			return invalidTarget("skill category %q has no abilities", change.Category)
		}
		ability = first
	} else if !cat.HasAbility(change.Category, ability) {
		return invalidTarget("ability %q is not in category %q", ability, change.Category)
	}

	cfg.Skills[change.Index] = models.SkillSlot{
		Category: change.Category,
		Ability:  ability,
	}
	return nil
}

func playerConfig(tmpl *models.RaidTemplate, playerID int) (*models.PlayerConfig, error) {
	if tmpl == nil {
		return nil, raiderr.InvalidArgument("template cannot be nil")
	}
	cfg, ok := tmpl.Players[playerID]
	if !ok || cfg == nil {
		return nil, raiderr.Wrapf(ErrPlayerNotFound, "no player with id %d", playerID).
			WithMeta("player_id", playerID)
	}
	return cfg, nil
}

func invalidTarget(format string, args ...any) error {
	return raiderr.Wrapf(ErrInvalidTarget, format, args...)
}
