package commands

import (
	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

// commandNeedsUpdate checks whether the registered copy of a command drifted
// from what the modules declare.
func commandNeedsUpdate(existing, desired *discordgo.ApplicationCommand) bool {
	if existing.Name != desired.Name || existing.Description != desired.Description {
		return true
	}
	if len(existing.Options) != len(desired.Options) {
		return true
	}
	for i, option := range existing.Options {
		desiredOption := desired.Options[i]
		if option.Name != desiredOption.Name ||
			option.Description != desiredOption.Description ||
			option.Type != desiredOption.Type ||
			option.Required != desiredOption.Required {
			return true
		}
	}
	return false
}

// SyncSlashCommands diffs the guild's registered slash commands against the
// modules and creates, updates or deletes to match.
func SyncSlashCommands(s *discordgo.Session, guildID string, log *logrus.Logger) {
	existingCommands, err := s.ApplicationCommands(s.State.User.ID, guildID)
	if err != nil {
		log.WithError(err).Error("could not fetch existing slash commands")
		return
	}

	existingMap := make(map[string]*discordgo.ApplicationCommand)
	for _, cmd := range existingCommands {
		existingMap[cmd.Name] = cmd
	}

	for _, desired := range GetAllSlashCommands() {
		if existing, ok := existingMap[desired.Name]; ok {
			if commandNeedsUpdate(existing, desired) {
				log.WithField("command", desired.Name).Info("updating slash command")
				if _, err := s.ApplicationCommandEdit(s.State.User.ID, guildID, existing.ID, desired); err != nil {
					log.WithField("command", desired.Name).WithError(err).Error("slash command update failed")
				}
			}
			delete(existingMap, desired.Name)
		} else {
			log.WithField("command", desired.Name).Info("creating slash command")
			if _, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, desired); err != nil {
				log.WithField("command", desired.Name).WithError(err).Error("slash command create failed")
			}
		}
	}

	// Whatever is left no longer belongs to any module.
	for _, cmd := range existingMap {
		log.WithField("command", cmd.Name).Info("deleting stale slash command")
		if err := s.ApplicationCommandDelete(s.State.User.ID, guildID, cmd.ID); err != nil {
			log.WithField("command", cmd.Name).WithError(err).Error("slash command delete failed")
		}
	}
}
