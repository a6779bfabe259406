package customroles

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"RoleBot/bot"
	"RoleBot/commands"
	"RoleBot/utils"
)

// CleanupRoles handles /cleanuproles: sweeps every stored record and drops
// the ones whose Discord role was deleted out-of-band.
func CleanupRoles(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.GuildID == "" || i.Member == nil {
		return
	}
	if !utils.IsAdmin(i) {
		commands.Respond(s, i, "You need administrator permissions to use this command.")
		return
	}
	userID := i.Member.User.ID
	if !b.Limiter.Allow(userID, "cleanuproles") {
		commands.Respond(s, i, fmt.Sprintf("Slow down! Try again in %d seconds.", b.Limiter.RetryAfter(userID, "cleanuproles")))
		return
	}
	if err := commands.Defer(s, i); err != nil {
		b.Log.WithError(err).Error("could not defer interaction")
		return
	}

	removed, err := b.Roles.ReconcileAll(context.Background())
	if err != nil {
		b.Log.WithError(err).Error("cleanup sweep failed")
		commands.FollowUp(s, i, "An error occurred during cleanup.")
		return
	}
	if removed == 0 {
		commands.FollowUp(s, i, "Cleanup completed. No stale records found.")
		return
	}
	commands.FollowUp(s, i, fmt.Sprintf("Cleanup completed. Removed %d stale record(s).", removed))
}
