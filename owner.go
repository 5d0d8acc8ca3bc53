package assetbook

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// AppEnv selects the environment a book belongs to.
type AppEnv string

const (
	Dev  AppEnv = "dev"
	Prod AppEnv = "prod"
)

// ParseAppEnv parses an environment name.
func ParseAppEnv(s string) (AppEnv, error) {
	switch strings.ToLower(s) {
	case "dev":
		return Dev, nil
	case "prod":
		return Prod, nil
	default:
		return "", fmt.Errorf("unknown environment %q", s)
	}
}

// scrypt parameters, interactive login profile.
const (
	scryptN       = 1 << 15
	scryptR       = 8
	scryptP       = 1
	scryptKeyLen  = 32
	scryptSaltLen = 16
)

// Owner is the person the book belongs to.
type Owner struct {
	Name         string
	Env          AppEnv
	passwordHash string // "salt$key", both raw base64
}

// NewOwner creates an owner with a scrypt-hashed password.
func NewOwner(name, password string, env AppEnv) (Owner, error) {
	salt := make([]byte, scryptSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return Owner{}, fmt.Errorf("cannot generate salt: %w", err)
	}
	key, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return Owner{}, fmt.Errorf("cannot hash password: %w", err)
	}
	hash := base64.RawStdEncoding.EncodeToString(salt) + "$" + base64.RawStdEncoding.EncodeToString(key)
	return Owner{Name: name, Env: env, passwordHash: hash}, nil
}

// VerifyPassword reports whether password matches the owner's stored hash.
// An owner created without a password never verifies.
func (o Owner) VerifyPassword(password string) bool {
	saltB64, keyB64, ok := strings.Cut(o.passwordHash, "$")
	if !ok {
		return false
	}
	salt, err := base64.RawStdEncoding.DecodeString(saltB64)
	if err != nil {
		return false
	}
	want, err := base64.RawStdEncoding.DecodeString(keyB64)
	if err != nil {
		return false
	}
	got, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(got, want) == 1
}

// OwnerSettings are the owner's reporting preferences.
type OwnerSettings struct {
	Currency FiatCurrency // reporting fiat currency for all valuations
}
