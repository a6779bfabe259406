package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"RoleBot/bot"
	"RoleBot/commands"
	"RoleBot/roles"

	_ "RoleBot/commands/customroles"
	_ "RoleBot/commands/fun"
	_ "RoleBot/commands/rolesystems"
)

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	if os.Getenv("ENV") == "development" {
		log.SetLevel(logrus.DebugLevel)
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetLevel(logrus.InfoLevel)
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	return log
}

func main() {
	godotenv.Load()
	log := newLogger()

	token := os.Getenv("DISCORD_TOKEN")
	guildID := os.Getenv("GUILD_ID")
	anchorRoleID := os.Getenv("ANCHOR_ROLE_ID")
	if token == "" || guildID == "" || anchorRoleID == "" {
		log.Fatal("DISCORD_TOKEN, GUILD_ID and ANCHOR_ROLE_ID must be set")
	}

	b, err := bot.NewBot(token, os.Getenv("DATABASE_URL"), log)
	if err != nil {
		log.WithError(err).Fatal("could not build bot")
	}

	var store roles.Store
	if b.Db != nil {
		store = roles.NewSQLStore(b.Db)
	} else {
		path := os.Getenv("CUSTOM_ROLES_FILE")
		if path == "" {
			path = "data/custom_roles.json"
		}
		fileStore, err := roles.NewFileStore(path)
		if err != nil {
			log.WithError(err).Fatal("could not load custom role file store")
		}
		store = fileStore
		log.WithField("path", path).Info("using file-backed custom role store")
	}

	gateway := roles.NewDiscordGateway(b.Client, guildID)
	positioner := roles.NewPositioner(gateway, anchorRoleID)
	b.Roles = roles.NewManager(store, gateway, positioner, log)

	b.Client.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Type != discordgo.InteractionApplicationCommand {
			return
		}
		name := i.ApplicationCommandData().Name
		if handler, ok := commands.SlashCommandHandlers[name]; ok {
			handler(b, s, i)
		}
	})

	if err := b.Client.Open(); err != nil {
		log.WithError(err).Fatal("could not open discord session")
	}
	defer b.Client.Close()

	commands.SyncSlashCommands(b.Client, guildID, log)

	log.Info("bot is running, press ctrl+c to exit")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info("shutting down")
}
