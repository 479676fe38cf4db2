// Package profile holds the local user's identity and persists it as a
// single JSON record.
package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/abhisek/bilim/internal/quiz"
	"github.com/abhisek/bilim/internal/store"
)

// Key is the store key of the persisted record.
const Key = "user"

const (
	DefaultAvatar = "😊"
	DefaultColor  = "#4f46e5"
)

// Profile is the local user.
type Profile struct {
	Role          quiz.Role `json:"role"`
	Name          string    `json:"name"`
	Avatar        string    `json:"avatar"`
	AvatarColor   string    `json:"avatarColor"`
	Authenticated bool      `json:"-"`
}

func defaults() Profile {
	return Profile{Avatar: DefaultAvatar, AvatarColor: DefaultColor}
}

// Player returns the profile as the local roster entry.
func (p Profile) Player() quiz.Player {
	return quiz.Player{
		ID:          quiz.LocalPlayerID,
		Name:        p.Name,
		Avatar:      p.Avatar,
		AvatarColor: p.AvatarColor,
	}
}

// Store owns the local profile.
type Store struct {
	kv store.KV

	mu      sync.RWMutex
	profile Profile
}

// NewStore returns a Store with an unauthenticated default profile. Call
// Load to restore a persisted one.
func NewStore(kv store.KV) *Store {
	return &Store{kv: kv, profile: defaults()}
}

// Profile returns a copy of the current profile.
func (s *Store) Profile() Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// Load restores the persisted profile. A missing record, or one without a
// name or a known role, leaves the default unauthenticated profile; a
// corrupt one returns an error and changes nothing.
func (s *Store) Load(ctx context.Context) error {
	raw, ok, err := s.kv.Get(ctx, Key)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}
	if !ok {
		return nil
	}

	p := defaults()
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return fmt.Errorf("decode profile: %w", err)
	}
	if strings.TrimSpace(p.Name) == "" || !p.Role.Valid() {
		slog.Warn("ignoring incomplete profile", "name", p.Name, "role", p.Role)
		return nil
	}
	if p.AvatarColor == "" {
		p.AvatarColor = DefaultColor
	}
	p.Authenticated = true

	s.mu.Lock()
	s.profile = p
	s.mu.Unlock()
	return nil
}

// Login validates and persists the profile, then marks it authenticated.
// Empty avatar and color take the defaults.
func (s *Store) Login(ctx context.Context, name string, role quiz.Role, avatar, color string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return quiz.ErrEmptyName
	}
	if !role.Valid() {
		return fmt.Errorf("%w: %q", quiz.ErrInvalidRole, role)
	}
	if avatar == "" {
		avatar = DefaultAvatar
	}
	if color == "" {
		color = DefaultColor
	}

	p := Profile{Role: role, Name: name, Avatar: avatar, AvatarColor: color}
	if err := s.save(ctx, p); err != nil {
		return err
	}
	p.Authenticated = true

	s.mu.Lock()
	s.profile = p
	s.mu.Unlock()
	return nil
}

// Logout deletes the persisted record and resets to defaults.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.kv.Delete(ctx, Key); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	s.mu.Lock()
	s.profile = defaults()
	s.mu.Unlock()
	return nil
}

// SetRole changes the role.
func (s *Store) SetRole(ctx context.Context, role quiz.Role) error {
	if role != quiz.RoleNone && !role.Valid() {
		return fmt.Errorf("%w: %q", quiz.ErrInvalidRole, role)
	}
	return s.update(ctx, func(p *Profile) { p.Role = role })
}

// SetName changes the display name.
func (s *Store) SetName(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return quiz.ErrEmptyName
	}
	return s.update(ctx, func(p *Profile) { p.Name = name })
}

// SetAvatar changes the avatar glyph.
func (s *Store) SetAvatar(ctx context.Context, avatar string) error {
	return s.update(ctx, func(p *Profile) { p.Avatar = avatar })
}

// SetAvatarColor changes the avatar color.
func (s *Store) SetAvatarColor(ctx context.Context, color string) error {
	return s.update(ctx, func(p *Profile) { p.AvatarColor = color })
}

// update applies fn and persists the result when authenticated. On a
// persistence error the in-memory profile is left unchanged.
func (s *Store) update(ctx context.Context, fn func(*Profile)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.profile
	fn(&p)
	if p.Authenticated {
		if err := s.save(ctx, p); err != nil {
			return err
		}
	}
	s.profile = p
	return nil
}

func (s *Store) save(ctx context.Context, p Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := s.kv.Set(ctx, Key, string(data)); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}
