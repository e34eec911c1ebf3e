package template

import "github.com/KirkDiggler/raidtemplate/internal/models"

// Derive builds a fresh template from a roster snapshot. Roster fields are
// copied, every equipment slot starts unassigned, all skill slots are empty
// and food and potion are blank. The result shares nothing with its inputs.
func Derive(raidName string, players []*models.Player, equipmentSlots []string) *models.RaidTemplate {
	tmpl := &models.RaidTemplate{
		RaidName: raidName,
		Players:  make(map[int]*models.PlayerConfig, len(players)),
	}

	for _, p := range players {
		if p == nil {
			continue
		}
		setup := make(map[string]string, len(equipmentSlots))
		for _, slot := range equipmentSlots {
			setup[slot] = ""
		}
		tmpl.Players[p.ID] = &models.PlayerConfig{
			Player: *p.Clone(),
			Setup:  setup,
		}
	}

	return tmpl
}
