package commands

import (
	"github.com/bwmarrin/discordgo"

	"RoleBot/bot"
)

// SlashCommandFunc is the signature every slash command handler implements.
type SlashCommandFunc func(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate)

// SlashCommandInfo describes one slash command and its handler.
type SlashCommandInfo struct {
	Name        string
	Description string
	Options     []*discordgo.ApplicationCommandOption
	Handler     SlashCommandFunc
}

// ModuleInfo groups the slash commands a feature package contributes.
type ModuleInfo struct {
	Name          string
	Description   string
	Category      string
	SlashCommands []SlashCommandInfo
}

var (
	RegisteredModules    = make(map[string]*ModuleInfo)
	SlashCommandHandlers = make(map[string]SlashCommandFunc)
)

// RegisterModule registers a module and compiles its handlers. Called from
// each feature package's init.
func RegisterModule(module *ModuleInfo) {
	RegisteredModules[module.Name] = module
	for _, cmd := range module.SlashCommands {
		SlashCommandHandlers[cmd.Name] = cmd.Handler
	}
}

// GetAllSlashCommands returns every registered command in registration form.
func GetAllSlashCommands() []*discordgo.ApplicationCommand {
	var cmds []*discordgo.ApplicationCommand
	for _, module := range RegisteredModules {
		for _, cmd := range module.SlashCommands {
			cmds = append(cmds, &discordgo.ApplicationCommand{
				Name:        cmd.Name,
				Description: cmd.Description,
				Options:     cmd.Options,
			})
		}
	}
	return cmds
}
