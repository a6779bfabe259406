package bot

import (
	"database/sql"

	"github.com/bwmarrin/discordgo"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"RoleBot/roles"
	"RoleBot/rolesystems"
	"RoleBot/utils"
)

type Bot struct {
	Db      *sql.DB
	Client  *discordgo.Session
	Log     *logrus.Logger
	Roles   *roles.Manager
	Systems *rolesystems.Store
	Limiter *utils.RateLimiter
}

const schema = `
CREATE TABLE IF NOT EXISTS custom_roles (
    user_id TEXT PRIMARY KEY,
    role_id TEXT UNIQUE NOT NULL,
    name TEXT NOT NULL,
    color TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS role_systems (
    name TEXT PRIMARY KEY,
    options TEXT NOT NULL
);`

// NewBot builds the Discord session and, when dbURL is set, opens Postgres
// and applies the schema. With no dbURL the caller wires a file-backed role
// store instead and role systems are unavailable.
func NewBot(token, dbURL string, log *logrus.Logger) (*Bot, error) {
	client, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}
	client.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	b := &Bot{Client: client, Log: log, Limiter: utils.NewRateLimiter()}

	if dbURL != "" {
		db, err := sql.Open("postgres", dbURL)
		if err != nil {
			return nil, err
		}
		if _, err := db.Exec(schema); err != nil {
			return nil, err
		}
		b.Db = db
		b.Systems = rolesystems.NewStore(db)
	}
	return b, nil
}
