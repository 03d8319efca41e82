// Package auth checks login credentials and tracks session tokens.
package auth

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNoUsers            = errors.New("no users configured")
	ErrMalformedUsers     = errors.New("malformed user list")
)

// Verifier checks a username and password pair.
type Verifier interface {
	Verify(ctx context.Context, username, password string) error
}

// StaticVerifier holds bcrypt hashes for a fixed set of users.
type StaticVerifier struct {
	hashes map[string][]byte
	dummy  []byte
}

// NewStaticVerifier hashes every plain-text password in users.
func NewStaticVerifier(users map[string]string, cost int) (*StaticVerifier, error) {
	if len(users) == 0 {
		return nil, ErrNoUsers
	}
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	v := &StaticVerifier{hashes: make(map[string][]byte, len(users))}
	for name, password := range users {
		h, err := bcrypt.GenerateFromPassword([]byte(password), cost)
		if err != nil {
			return nil, fmt.Errorf("hash password for %s: %w", name, err)
		}
		v.hashes[name] = h
	}
	dummy, err := bcrypt.GenerateFromPassword([]byte("unused"), cost)
	if err != nil {
		return nil, fmt.Errorf("hash placeholder: %w", err)
	}
	v.dummy = dummy
	return v, nil
}

// Verify implements Verifier. Unknown users still pay for one bcrypt
// comparison.
func (v *StaticVerifier) Verify(_ context.Context, username, password string) error {
	hash, ok := v.hashes[username]
	if !ok {
		_ = bcrypt.CompareHashAndPassword(v.dummy, []byte(password))
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// Users lists the configured usernames in sorted order.
func (v *StaticVerifier) Users() []string {
	out := make([]string, 0, len(v.hashes))
	for name := range v.hashes {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// ParseUsers reads "name:password,name:password".
func ParseUsers(list string) (map[string]string, error) {
	users := map[string]string{}
	for _, pair := range strings.Split(list, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, password, ok := strings.Cut(pair, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" || password == "" {
			return nil, fmt.Errorf("%w: %q", ErrMalformedUsers, pair)
		}
		users[name] = password
	}
	if len(users) == 0 {
		return nil, ErrNoUsers
	}
	return users, nil
}
