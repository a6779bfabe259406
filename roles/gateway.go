package roles

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/bwmarrin/discordgo"
)

// Gateway is the slice of the Discord role API the core needs. Hierarchy
// results are ordered lowest to highest, index 0 being @everyone.
type Gateway interface {
	CreateRole(ctx context.Context, name string, color int) (roleID string, err error)
	UpdateRole(ctx context.Context, roleID, name string, color int) error
	// DeleteRole treats an already-deleted role as success.
	DeleteRole(ctx context.Context, roleID string) error
	Hierarchy(ctx context.Context) ([]string, error)
	SetRolePosition(ctx context.Context, roleID string, position int) error
}

const defaultCallTimeout = 10 * time.Second

// DiscordGateway implements Gateway for a single guild. Every call carries
// its own deadline so a stalled request cannot pin a user lock.
type DiscordGateway struct {
	session *discordgo.Session
	guildID string
	timeout time.Duration
}

func NewDiscordGateway(session *discordgo.Session, guildID string) *DiscordGateway {
	return &DiscordGateway{session: session, guildID: guildID, timeout: defaultCallTimeout}
}

func (g *DiscordGateway) CreateRole(ctx context.Context, name string, color int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	perms := int64(0)
	role, err := g.session.GuildRoleCreate(g.guildID, &discordgo.RoleParams{
		Name:        name,
		Color:       &color,
		Permissions: &perms,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return "", g.wrap("create role", err)
	}
	return role.ID, nil
}

func (g *DiscordGateway) UpdateRole(ctx context.Context, roleID, name string, color int) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	_, err := g.session.GuildRoleEdit(g.guildID, roleID, &discordgo.RoleParams{
		Name:  name,
		Color: &color,
	}, discordgo.WithContext(ctx))
	if err != nil {
		if isErrCode(err, discordgo.ErrCodeUnknownRole) {
			return ErrRoleNotFound
		}
		return g.wrap("edit role", err)
	}
	return nil
}

func (g *DiscordGateway) DeleteRole(ctx context.Context, roleID string) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	err := g.session.GuildRoleDelete(g.guildID, roleID, discordgo.WithContext(ctx))
	if err != nil {
		// The end state we want is "role gone" either way.
		if isErrCode(err, discordgo.ErrCodeUnknownRole) {
			return nil
		}
		return g.wrap("delete role", err)
	}
	return nil
}

func (g *DiscordGateway) Hierarchy(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	guildRoles, err := g.session.GuildRoles(g.guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, g.wrap("fetch roles", err)
	}
	sort.SliceStable(guildRoles, func(i, j int) bool {
		return guildRoles[i].Position < guildRoles[j].Position
	})
	ids := make([]string, len(guildRoles))
	for i, role := range guildRoles {
		ids[i] = role.ID
	}
	return ids, nil
}

// SetRolePosition moves one role to the given index and reassigns positions
// for the whole list in a single reorder request, so the relative order of
// every other role is preserved.
func (g *DiscordGateway) SetRolePosition(ctx context.Context, roleID string, position int) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	guildRoles, err := g.session.GuildRoles(g.guildID, discordgo.WithContext(ctx))
	if err != nil {
		return g.wrap("fetch roles", err)
	}
	sort.SliceStable(guildRoles, func(i, j int) bool {
		return guildRoles[i].Position < guildRoles[j].Position
	})

	var target *discordgo.Role
	ordered := make([]*discordgo.Role, 0, len(guildRoles))
	for _, role := range guildRoles {
		if role.ID == roleID {
			target = role
			continue
		}
		ordered = append(ordered, role)
	}
	if target == nil {
		return ErrRoleNotFound
	}
	if position > len(ordered) {
		position = len(ordered)
	}
	ordered = append(ordered[:position], append([]*discordgo.Role{target}, ordered[position:]...)...)
	for i, role := range ordered {
		role.Position = i
	}

	if _, err := g.session.GuildRoleReorder(g.guildID, ordered, discordgo.WithContext(ctx)); err != nil {
		if isPermissionError(err) {
			return ErrPositionDenied
		}
		return g.wrap("reorder roles", err)
	}
	return nil
}

func (g *DiscordGateway) wrap(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrPlatformTimeout
	}
	return fmt.Errorf("discord: %s: %w", op, err)
}

func isErrCode(err error, code int) bool {
	var restErr *discordgo.RESTError
	return errors.As(err, &restErr) && restErr.Message != nil && restErr.Message.Code == code
}

func isPermissionError(err error) bool {
	if isErrCode(err, discordgo.ErrCodeMissingPermissions) || isErrCode(err, discordgo.ErrCodeMissingAccess) {
		return true
	}
	var restErr *discordgo.RESTError
	return errors.As(err, &restErr) && restErr.Response != nil && restErr.Response.StatusCode == http.StatusForbidden
}
