package customroles

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"RoleBot/bot"
	"RoleBot/commands"
	"RoleBot/utils"
)

// RoleInfo handles /roleinfo: anchor and hierarchy diagnostics for admins
// debugging misplaced custom roles.
func RoleInfo(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.GuildID == "" || i.Member == nil {
		return
	}
	if !utils.IsAdmin(i) {
		commands.Respond(s, i, "You need administrator permissions to use this command.")
		return
	}
	if err := commands.Defer(s, i); err != nil {
		b.Log.WithError(err).Error("could not defer interaction")
		return
	}

	stats, err := b.Roles.Stats(context.Background())
	if err != nil {
		b.Log.WithError(err).Error("could not collect role stats")
		commands.FollowUp(s, i, "An error occurred while reading role information.")
		return
	}

	anchorFound := "no"
	anchorPos := "n/a (new roles fall back to position 1)"
	if stats.AnchorPosition >= 0 {
		anchorFound = "yes"
		anchorPos = fmt.Sprintf("%d", stats.AnchorPosition)
	}
	embed := &discordgo.MessageEmbed{
		Title: "Custom Role System",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Anchor Role ID", Value: stats.AnchorRoleID, Inline: true},
			{Name: "Anchor Found", Value: anchorFound, Inline: true},
			{Name: "Anchor Position", Value: anchorPos, Inline: true},
			{Name: "Hierarchy Size", Value: fmt.Sprintf("%d", stats.HierarchySize), Inline: true},
			{Name: "Active Custom Roles", Value: fmt.Sprintf("%d", stats.ActiveRecords), Inline: true},
		},
	}
	commands.FollowUpEmbed(s, i, embed)
}
