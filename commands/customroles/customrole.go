package customroles

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"RoleBot/bot"
	"RoleBot/commands"
	"RoleBot/roles"
)

const defaultColor = "#ffffff"

// CustomRole handles /customrole: creates the caller's role, or updates it
// in place if they already own one.
func CustomRole(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.GuildID == "" || i.Member == nil {
		return
	}
	userID := i.Member.User.ID
	if !b.Limiter.Allow(userID, "customrole") {
		commands.Respond(s, i, fmt.Sprintf("Slow down! Try again in %d seconds.", b.Limiter.RetryAfter(userID, "customrole")))
		return
	}
	if err := commands.Defer(s, i); err != nil {
		b.Log.WithError(err).Error("could not defer interaction")
		return
	}

	name := ""
	color := defaultColor
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "name":
			name = opt.StringValue()
		case "color":
			color = opt.StringValue()
		}
	}

	ctx := context.Background()
	result, err := b.Roles.Create(ctx, userID, name, color)
	if errors.Is(err, roles.ErrDuplicateRole) {
		rec, err := b.Roles.Update(ctx, userID, &name, &color)
		if err != nil {
			commands.FollowUp(s, i, renderError(err))
			return
		}
		commands.FollowUpEmbed(s, i, recordEmbed("Custom Role Updated", rec, nil))
		return
	}
	if err != nil {
		commands.FollowUp(s, i, renderError(err))
		return
	}
	commands.FollowUpEmbed(s, i, recordEmbed("Custom Role Created", result.Record, result.Warning))
}

func recordEmbed(title string, rec roles.Record, warning error) *discordgo.MessageEmbed {
	colorValue, _, _ := roles.ParseHexColor(rec.Color)
	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: fmt.Sprintf("Your custom role **%s** is ready!", rec.Name),
		Color:       colorValue,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Color", Value: rec.Color, Inline: true},
			{Name: "Role ID", Value: rec.RoleID, Inline: true},
		},
	}
	if warning != nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Positioning Note",
			Value: "The role could not be placed in its usual spot in the role list. It still works for display and mentions.",
		})
	}
	return embed
}

// renderError turns core error kinds into user-facing text.
func renderError(err error) string {
	var validationErr *roles.ValidationError
	var storageErr *roles.StorageError
	switch {
	case errors.As(err, &validationErr):
		return "Invalid input: " + validationErr.Reason
	case errors.Is(err, roles.ErrNotFound):
		return "You don't have a custom role! Use `/customrole` to create one."
	case errors.Is(err, roles.ErrDuplicateRole):
		return "You already have a custom role."
	case errors.Is(err, roles.ErrRoleNotFound):
		return "Your custom role no longer exists. Use `/customrole` to create a new one."
	case errors.Is(err, roles.ErrPositionDenied):
		return "I can't reposition that role. The server's role setup needs attention from an admin."
	case errors.Is(err, roles.ErrPlatformTimeout):
		return "Discord took too long to respond. Please try again."
	case errors.As(err, &storageErr) && storageErr.Partial:
		return "The role was changed on Discord but saving it failed. An admin cleanup will fix the mismatch."
	default:
		return "An unexpected error occurred. Please try again later."
	}
}
