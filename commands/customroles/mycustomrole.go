package customroles

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"RoleBot/bot"
	"RoleBot/commands"
	"RoleBot/roles"
)

// MyCustomRole handles /mycustomrole.
func MyCustomRole(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.GuildID == "" || i.Member == nil {
		return
	}
	if err := commands.Defer(s, i); err != nil {
		b.Log.WithError(err).Error("could not defer interaction")
		return
	}

	rec, err := b.Roles.View(context.Background(), i.Member.User.ID)
	if err != nil {
		commands.FollowUp(s, i, renderError(err))
		return
	}

	colorValue, _, _ := roles.ParseHexColor(rec.Color)
	embed := &discordgo.MessageEmbed{
		Title:       "Your Custom Role",
		Description: fmt.Sprintf("**%s**", rec.Name),
		Color:       colorValue,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Color", Value: rec.Color, Inline: true},
			{Name: "Role ID", Value: rec.RoleID, Inline: true},
			{Name: "Created", Value: fmt.Sprintf("<t:%d:R>", rec.CreatedAt.Unix()), Inline: true},
		},
	}
	if !rec.UpdatedAt.Equal(rec.CreatedAt) {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Last Updated", Value: fmt.Sprintf("<t:%d:R>", rec.UpdatedAt.Unix()), Inline: true,
		})
	}
	commands.FollowUpEmbed(s, i, embed)
}
