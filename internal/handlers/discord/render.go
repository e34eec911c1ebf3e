package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/raidtemplate/internal/models"
	"github.com/KirkDiggler/raidtemplate/internal/views"
)

// Discord limits
const (
	maxEmbeds           = 10
	maxDescriptionRunes = 4096
)

// Button custom IDs
const (
	ButtonEdit   = "raid_edit"
	ButtonSave   = "raid_save"
	ButtonCancel = "raid_cancel"
)

const none = "-"

// renderCards builds the card grid, one embed per player
func renderCards(roster *models.Roster) *discordgo.InteractionResponseData {
	embeds := make([]*discordgo.MessageEmbed, 0, len(roster.Players))
	for _, p := range roster.Players {
		if len(embeds) == maxEmbeds {
			break
		}
		embeds = append(embeds, cardEmbed(p))
	}

	content := fmt.Sprintf("**%s**", roster.RaidName)
	if len(roster.Players) > maxEmbeds {
		content += fmt.Sprintf(" (showing %d of %d players)", maxEmbeds, len(roster.Players))
	}

	return &discordgo.InteractionResponseData{
		Content: content,
		Embeds:  embeds,
	}
}

func cardEmbed(p *models.Player) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{Name: "Classes", Value: joinOr(p.Classes)},
		{Name: "Front Bar", Value: joinOr(p.Bars.Front)},
		{Name: "Back Bar", Value: joinOr(p.Bars.Back)},
	}
	for _, category := range models.ChampionCategories() {
		points := slotted(&p.ChampionPoints, category)
		if len(points) == 0 {
			continue
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   title(string(category)),
			Value:  strings.Join(points, "\n"),
			Inline: true,
		})
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("#%d %s", p.ID, p.Name),
		Description: string(p.Role),
		Color:       colorInfo,
		Fields:      fields,
	}
}

// renderDetail builds the full page of one player; nil renders the not found message
func renderDetail(p *models.Player) *discordgo.InteractionResponseData {
	if p == nil {
		return errorResponse(views.PlayerNotFound, "No player with that id is on the roster.")
	}

	fields := []*discordgo.MessageEmbedField{
		{Name: "Role", Value: orNone(string(p.Role)), Inline: true},
		{Name: "Classes", Value: joinOr(p.Classes), Inline: true},
		{Name: "Sets", Value: joinOr(p.Sets)},
		{Name: "Front Bar", Value: joinOr(p.Bars.Front)},
		{Name: "Back Bar", Value: joinOr(p.Bars.Back)},
	}
	for _, category := range models.ChampionCategories() {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   title(string(category)),
			Value:  joinOr(slotted(&p.ChampionPoints, category)),
			Inline: true,
		})
	}

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{{
			Title:  fmt.Sprintf("#%d %s", p.ID, p.Name),
			Color:  colorInfo,
			Fields: fields,
		}},
	}
}

// renderTable builds the template table with the edit buttons matching the
// editor's mode. Working copies are only shown to the editor.
func renderTable(tmpl *models.RaidTemplate, slots []string, editing bool) (*discordgo.InteractionResponseData, error) {
	var b strings.Builder
	if err := views.Table(&b, tmpl, slots); err != nil {
		return nil, err
	}

	embed := &discordgo.MessageEmbed{
		Title:       tmpl.RaidName,
		Description: codeBlock(b.String()),
		Color:       colorInfo,
	}
	data := &discordgo.InteractionResponseData{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: editButtons(editing),
	}
	if editing {
		embed.Title += " (editing)"
		embed.Color = colorEditing
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	return data, nil
}

// renderStatus builds a short confirmation, optionally followed by the table
func renderStatus(heading, message string, table *discordgo.InteractionResponseData) *discordgo.InteractionResponseData {
	status := &discordgo.MessageEmbed{
		Title:       heading,
		Description: message,
		Color:       colorSuccess,
	}
	if table == nil {
		return &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{status},
			Flags:  discordgo.MessageFlagsEphemeral,
		}
	}

	out := *table
	out.Embeds = append([]*discordgo.MessageEmbed{status}, table.Embeds...)
	return &out
}

func renderRaids(raids []string) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{{
			Title:       "Raids",
			Description: joinLines(raids),
			Color:       colorInfo,
		}},
		Flags: discordgo.MessageFlagsEphemeral,
	}
}

func editButtons(editing bool) []discordgo.MessageComponent {
	var buttons []discordgo.MessageComponent
	if editing {
		buttons = []discordgo.MessageComponent{
			discordgo.Button{Label: "Save", Style: discordgo.SuccessButton, CustomID: ButtonSave},
			discordgo.Button{Label: "Cancel", Style: discordgo.DangerButton, CustomID: ButtonCancel},
		}
	} else {
		buttons = []discordgo.MessageComponent{
			discordgo.Button{Label: "Edit", Style: discordgo.PrimaryButton, CustomID: ButtonEdit},
		}
	}
	return []discordgo.MessageComponent{discordgo.ActionsRow{Components: buttons}}
}

// codeBlock fences text and cuts it to fit an embed description
func codeBlock(text string) string {
	const fence = "```"
	const cut = "\n..."
	limit := maxDescriptionRunes - 2*len(fence) - 2

	runes := []rune(text)
	if len(runes) > limit {
		text = string(runes[:limit-len(cut)]) + cut
	}
	return fence + "\n" + text + "\n" + fence
}

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

func title(s string) string {
	return cases.Title(language.English).String(s)
}

func joinOr(values []string) string {
	if len(values) == 0 {
		return none
	}
	return strings.Join(values, ", ")
}

func joinLines(values []string) string {
	if len(values) == 0 {
		return none
	}
	return strings.Join(values, "\n")
}

func orNone(value string) string {
	if value == "" {
		return none
	}
	return value
}
