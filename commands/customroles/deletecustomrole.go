package customroles

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"RoleBot/bot"
	"RoleBot/commands"
)

// DeleteCustomRole handles /deletecustomrole.
func DeleteCustomRole(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.GuildID == "" || i.Member == nil {
		return
	}
	userID := i.Member.User.ID
	if !b.Limiter.Allow(userID, "deletecustomrole") {
		commands.Respond(s, i, fmt.Sprintf("Slow down! Try again in %d seconds.", b.Limiter.RetryAfter(userID, "deletecustomrole")))
		return
	}
	if err := commands.Defer(s, i); err != nil {
		b.Log.WithError(err).Error("could not defer interaction")
		return
	}

	if err := b.Roles.Delete(context.Background(), userID); err != nil {
		commands.FollowUp(s, i, renderError(err))
		return
	}
	commands.FollowUp(s, i, "Your custom role has been deleted.")
}
