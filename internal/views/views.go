// Package views renders the roster and raid template as plain text for the CLI.
package views

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/raidtemplate/internal/models"
)

// PlayerNotFound is shown by the detail view for an unknown id
const PlayerNotFound = "Player not found"

const empty = "-"

// Card writes the short summary of a player shown in the card grid
func Card(w io.Writer, p *models.Player) error {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d %s [%s]\n", p.ID, p.Name, p.Role)
	fmt.Fprintf(&b, "  Classes: %s\n", list(p.Classes))
	fmt.Fprintf(&b, "  Front:   %s\n", list(p.Bars.Front))
	fmt.Fprintf(&b, "  Back:    %s\n", list(p.Bars.Back))
	for _, line := range championLines(&p.ChampionPoints) {
		fmt.Fprintf(&b, "  %s\n", line)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Cards writes every player card separated by blank lines
func Cards(w io.Writer, roster *models.Roster) error {
	if _, err := fmt.Fprintf(w, "%s\n\n", roster.RaidName); err != nil {
		return err
	}
	for i, p := range roster.Players {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := Card(w, p); err != nil {
			return err
		}
	}
	return nil
}

// Detail writes the full page of one player; a nil player renders PlayerNotFound
func Detail(w io.Writer, p *models.Player) error {
	if p == nil {
		_, err := fmt.Fprintln(w, PlayerNotFound)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Name\t%s\n", p.Name)
	fmt.Fprintf(tw, "Role\t%s\n", p.Role)
	fmt.Fprintf(tw, "Classes\t%s\n", list(p.Classes))
	fmt.Fprintf(tw, "Sets\t%s\n", list(p.Sets))
	fmt.Fprintf(tw, "Front Bar\t%s\n", list(p.Bars.Front))
	fmt.Fprintf(tw, "Back Bar\t%s\n", list(p.Bars.Back))
	for _, category := range models.ChampionCategories() {
		fmt.Fprintf(tw, "%s\t%s\n", categoryTitle(category), list(slotted(&p.ChampionPoints, category)))
	}
	return tw.Flush()
}

// Table writes the dense template view: one row per player with
// consumables and skills, one with classes, sets and champion points, then
// the equipment setup in slot order
func Table(w io.Writer, tmpl *models.RaidTemplate, slots []string) error {
	if _, err := fmt.Fprintf(w, "%s\n\n", tmpl.RaidName); err != nil {
		return err
	}

	players := tmpl.SortedPlayers()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tName\tRole\tFood\tPotion\tFront\tBack")
	for _, cfg := range players {
		front, back := bars(cfg.Skills)
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			cfg.ID, cfg.Name, cfg.Role, orEmpty(cfg.Food), orEmpty(cfg.Potion), front, back)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}

	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	build := []string{"ID", "Name", "Classes", "Sets"}
	for _, category := range models.ChampionCategories() {
		build = append(build, categoryTitle(category))
	}
	fmt.Fprintln(tw, strings.Join(build, "\t"))
	for _, cfg := range players {
		row := []string{strconv.Itoa(cfg.ID), cfg.Name, list(cfg.Classes), list(cfg.Sets)}
		for _, category := range models.ChampionCategories() {
			row = append(row, list(slotted(&cfg.ChampionPoints, category)))
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}

	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := append([]string{"Slot"}, names(players)...)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, slot := range slots {
		row := []string{slot}
		for _, cfg := range players {
			row = append(row, orEmpty(cfg.Setup[slot]))
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// bars formats the skill slots as "a, b, c, d, e | ult" per bar
func bars(skills [models.SkillSlotCount]models.SkillSlot) (string, string) {
	format := func(from, to, ult int) string {
		parts := make([]string, 0, to-from)
		for i := from; i < to; i++ {
			parts = append(parts, skill(skills[i]))
		}
		return strings.Join(parts, ", ") + " | " + skill(skills[ult])
	}
	return format(0, 5, models.FrontUltimateSlot), format(5, 10, models.BackUltimateSlot)
}

func skill(s models.SkillSlot) string {
	if s.IsEmpty() {
		return empty
	}
	return s.Ability
}

func championLines(cp *models.ChampionPoints) []string {
	var lines []string
	for _, category := range models.ChampionCategories() {
		points := slotted(cp, category)
		if len(points) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", categoryTitle(category), strings.Join(points, ", ")))
	}
	return lines
}

// slotted returns the non-blank entries of a champion tree
func slotted(cp *models.ChampionPoints, category models.ChampionCategory) []string {
	points, _ := cp.Category(category)
	var out []string
	for _, p := range points {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// categoryTitle builds a Caser per call; Casers are not safe for concurrent use
func categoryTitle(category models.ChampionCategory) string {
	return cases.Title(language.English).String(string(category))
}

func names(players []*models.PlayerConfig) []string {
	out := make([]string, 0, len(players))
	for _, cfg := range players {
		out = append(out, cfg.Name)
	}
	return out
}

func list(values []string) string {
	if len(values) == 0 {
		return empty
	}
	return strings.Join(values, ", ")
}

func orEmpty(value string) string {
	if value == "" {
		return empty
	}
	return value
}
