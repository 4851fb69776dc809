package generate

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	mrand "math/rand/v2"

	"github.com/zarlcorp/zseed/internal/fixture"
)

// password character classes, excluding 'O' and 'o'
const (
	passwordLetters = "abcdefghijklmnpqrstuvwxyz" + "ABCDEFGHIJKLMNPQRSTUVWXYZ"
	digitChars      = "0123456789"
	symbolChars     = "!@#$%^&*_+-=[]{}|:;<>?"
	passwordChars   = passwordLetters + digitChars + symbolChars
)

const (
	// DefaultPasswordLength is used when no length is configured.
	DefaultPasswordLength = 12
	// MinPasswordLength leaves room for a leading letter, one interior
	// character and a trailing letter.
	MinPasswordLength = 3

	// DefaultPriceMin and DefaultPriceMax bound product prices, inclusive.
	DefaultPriceMin = 15
	DefaultPriceMax = 230

	houseNumberMin = 100
	houseNumberMax = 999
)

// ErrPasswordLength is returned for a password length below MinPasswordLength.
var ErrPasswordLength = errors.New("password length must be at least 3 characters")

// Generator produces random seed data.
type Generator struct {
	intn func(n int) int
}

// New creates a generator backed by crypto/rand. It is safe for concurrent use.
func New() *Generator {
	return &Generator{intn: cryptoIntn}
}

// NewSeeded creates a deterministic generator. Two generators with the same
// seed produce the same sequence. It is not safe for concurrent use.
func NewSeeded(seed uint64) *Generator {
	r := mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return &Generator{intn: r.IntN}
}

// Password generates a password that starts and ends with a letter. Interior
// characters mix letters, digits and symbols.
func (g *Generator) Password(length int) (string, error) {
	if length < MinPasswordLength {
		return "", fmt.Errorf("%w: got %d", ErrPasswordLength, length)
	}

	buf := make([]byte, length)
	buf[0] = g.pickByte(passwordLetters)
	for i := 1; i < length-1; i++ {
		buf[i] = g.pickByte(passwordChars)
	}
	buf[length-1] = g.pickByte(passwordLetters)

	return string(buf), nil
}

// AddressParts is an address before formatting.
type AddressParts struct {
	Number int
	Street string
	City   string
	State  string
}

// String formats the address as "NUMBER STREET, CITY, STATE".
func (a AddressParts) String() string {
	return fmt.Sprintf("%d %s, %s, %s", a.Number, a.Street, a.City, a.State)
}

// AddressParts picks a house number in [100, 999] and one entry from each pool.
func (g *Generator) AddressParts(pools fixture.Address) AddressParts {
	return AddressParts{
		Number: g.between(houseNumberMin, houseNumberMax),
		Street: g.pick(pools.Streets),
		City:   g.pick(pools.Cities),
		State:  g.pick(pools.States),
	}
}

// Address generates a formatted random address.
func (g *Generator) Address(pools fixture.Address) string {
	return g.AddressParts(pools).String()
}

// Price returns a price in [lo, hi].
func (g *Generator) Price(lo, hi int) int {
	return g.between(lo, hi)
}

// Products assigns sequential ids from 1 and a random price to each entry.
func (g *Generator) Products(entries []fixture.Product, minPrice, maxPrice int) []Product {
	out := make([]Product, len(entries))
	for i, e := range entries {
		out[i] = Product{
			ID:          i + 1,
			Name:        e.Name,
			Description: e.Description,
			Price:       g.Price(minPrice, maxPrice),
		}
	}
	return out
}

// Credentials pairs each username with a fresh password.
func (g *Generator) Credentials(usernames []string, length int) ([]Credential, error) {
	out := make([]Credential, len(usernames))
	for i, u := range usernames {
		pw, err := g.Password(length)
		if err != nil {
			return nil, fmt.Errorf("credential %s: %w", u, err)
		}
		out[i] = Credential{Username: u, Password: pw}
	}
	return out, nil
}

// Profiles pairs each username with a fresh password and address.
func (g *Generator) Profiles(usernames []string, pools fixture.Address, length int) ([]Profile, error) {
	out := make([]Profile, len(usernames))
	for i, u := range usernames {
		pw, err := g.Password(length)
		if err != nil {
			return nil, fmt.Errorf("profile %s: %w", u, err)
		}
		out[i] = Profile{Username: u, Password: pw, Address: g.Address(pools)}
	}
	return out, nil
}

// Token returns n characters drawn uniformly from alphabet.
func (g *Generator) Token(alphabet string, n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = g.pickByte(alphabet)
	}
	return string(buf)
}

// between returns a random int in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + g.intn(hi-lo+1)
}

// pick returns a random element from a string slice.
func (g *Generator) pick(s []string) string {
	return s[g.intn(len(s))]
}

// pickByte returns a random byte from a string.
func (g *Generator) pickByte(s string) byte {
	return s[g.intn(len(s))]
}

// cryptoIntn returns a cryptographically random int in [0, n).
func cryptoIntn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand failure is unrecoverable
		panic("crypto/rand: " + err.Error())
	}
	return int(v.Int64())
}
