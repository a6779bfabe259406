package rolesystems

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"RoleBot/bot"
	"RoleBot/commands"
	"RoleBot/rolesystems"
	"RoleBot/utils"
)

// SetSystem handles /rolesystem-set.
func SetSystem(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if b.Systems == nil {
		commands.Respond(s, i, "Role systems need a database and are not available on this deployment.")
		return
	}
	if !utils.IsAdmin(i) {
		commands.Respond(s, i, "You need administrator permissions to use this command.")
		return
	}

	var name, rawOptions string
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "name":
			name = strings.TrimSpace(opt.StringValue())
		case "options":
			rawOptions = opt.StringValue()
		}
	}

	var options []string
	for _, o := range strings.Split(rawOptions, ",") {
		if o = strings.TrimSpace(o); o != "" {
			options = append(options, o)
		}
	}

	sys := rolesystems.System{Name: name, Options: options}
	if err := b.Systems.Put(context.Background(), sys); err != nil {
		b.Log.WithError(err).Error("could not save role system")
		commands.Respond(s, i, "Could not save that role system. Check the name and options.")
		return
	}
	commands.Respond(s, i, fmt.Sprintf("Role system **%s** saved with %d option(s).", name, len(options)))
}

// ListSystems handles /rolesystem-list.
func ListSystems(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if b.Systems == nil {
		commands.Respond(s, i, "Role systems need a database and are not available on this deployment.")
		return
	}

	systems, err := b.Systems.List(context.Background())
	if err != nil {
		b.Log.WithError(err).Error("could not list role systems")
		commands.Respond(s, i, "An error occurred while listing role systems.")
		return
	}
	if len(systems) == 0 {
		commands.Respond(s, i, "No role systems are configured.")
		return
	}

	var sb strings.Builder
	for _, sys := range systems {
		fmt.Fprintf(&sb, "**%s**: %s\n", sys.Name, strings.Join(sys.Options, ", "))
	}
	commands.RespondEmbed(s, i, &discordgo.MessageEmbed{
		Title:       "Role Systems",
		Description: sb.String(),
	})
}

// DeleteSystem handles /rolesystem-delete.
func DeleteSystem(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if b.Systems == nil {
		commands.Respond(s, i, "Role systems need a database and are not available on this deployment.")
		return
	}
	if !utils.IsAdmin(i) {
		commands.Respond(s, i, "You need administrator permissions to use this command.")
		return
	}

	var name string
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "name" {
			name = strings.TrimSpace(opt.StringValue())
		}
	}

	err := b.Systems.Delete(context.Background(), name)
	if errors.Is(err, rolesystems.ErrNotFound) {
		commands.Respond(s, i, fmt.Sprintf("No role system named **%s**.", name))
		return
	}
	if err != nil {
		b.Log.WithError(err).Error("could not delete role system")
		commands.Respond(s, i, "An error occurred while deleting the role system.")
		return
	}
	commands.Respond(s, i, fmt.Sprintf("Role system **%s** deleted.", name))
}
