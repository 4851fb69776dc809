package generate

import (
	"errors"
	"regexp"
	"slices"
	"strings"
	"testing"
	"unicode"

	"github.com/zarlcorp/zseed/internal/fixture"
)

func isPasswordLetter(b byte) bool {
	return strings.IndexByte(passwordLetters, b) >= 0
}

func TestPassword(t *testing.T) {
	tests := []struct {
		name   string
		length int
	}{
		{"default length", DefaultPasswordLength},
		{"exact minimum", 3},
		{"short", 4},
		{"long", 64},
	}

	g := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for range 50 {
				pw, err := g.Password(tt.length)
				if err != nil {
					t.Fatalf("Password(%d): %v", tt.length, err)
				}
				if len(pw) != tt.length {
					t.Fatalf("Password(%d) length = %d", tt.length, len(pw))
				}
				if !isPasswordLetter(pw[0]) {
					t.Errorf("password %q does not start with an allowed letter", pw)
				}
				if !isPasswordLetter(pw[len(pw)-1]) {
					t.Errorf("password %q does not end with an allowed letter", pw)
				}
				if strings.IndexFunc(pw, unicode.IsSpace) >= 0 {
					t.Errorf("password %q contains whitespace", pw)
				}
			}
		})
	}
}

func TestPasswordTooShort(t *testing.T) {
	g := New()
	for _, n := range []int{2, 1, 0, -5} {
		pw, err := g.Password(n)
		if !errors.Is(err, ErrPasswordLength) {
			t.Errorf("Password(%d) err = %v, want ErrPasswordLength", n, err)
		}
		if pw != "" {
			t.Errorf("Password(%d) = %q, want empty", n, pw)
		}
	}
}

func TestPasswordCharacterSet(t *testing.T) {
	g := New()
	for range 200 {
		pw, err := g.Password(40)
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < len(pw); i++ {
			if strings.IndexByte(passwordChars, pw[i]) < 0 {
				t.Fatalf("password %q has unexpected byte %q", pw, pw[i])
			}
		}
		if strings.ContainsAny(pw, "Oo") {
			t.Fatalf("password %q contains O or o", pw)
		}
	}
}

func TestPasswordInteriorMixesClasses(t *testing.T) {
	g := New()
	var digit, symbol bool
	for range 100 {
		pw, _ := g.Password(20)
		interior := pw[1 : len(pw)-1]
		digit = digit || strings.ContainsAny(interior, digitChars)
		symbol = symbol || strings.ContainsAny(interior, symbolChars)
	}
	if !digit || !symbol {
		t.Errorf("interior never drew digits (%v) or symbols (%v)", digit, symbol)
	}
}

func TestPasswordSeededReproducible(t *testing.T) {
	a, err := NewSeeded(42).Password(DefaultPasswordLength)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewSeeded(42).Password(DefaultPasswordLength)
	if err != nil {
		t.Fatal(err)
	}

	if a != b {
		t.Errorf("same seed produced %q and %q", a, b)
	}
	if len(a) != 12 {
		t.Errorf("length = %d, want 12", len(a))
	}
	if !isPasswordLetter(a[0]) || !isPasswordLetter(a[11]) {
		t.Errorf("password %q must start and end with a non-O letter", a)
	}
}

func TestPasswordSeedsDiffer(t *testing.T) {
	a, _ := NewSeeded(1).Password(32)
	b, _ := NewSeeded(2).Password(32)
	if a == b {
		t.Errorf("different seeds produced the same password %q", a)
	}
}

func TestPasswordRandomness(t *testing.T) {
	g := New()
	a, _ := g.Password(20)
	b, _ := g.Password(20)
	if a == b {
		t.Errorf("consecutive passwords should differ: got %q twice", a)
	}
}

func TestAddressParts(t *testing.T) {
	g := New()
	pools := fixture.Default().Address

	for range 200 {
		a := g.AddressParts(pools)
		if a.Number < 100 || a.Number > 999 {
			t.Errorf("house number %d out of [100, 999]", a.Number)
		}
		if !slices.Contains(pools.Streets, a.Street) {
			t.Errorf("street %q not in pool", a.Street)
		}
		if !slices.Contains(pools.Cities, a.City) {
			t.Errorf("city %q not in pool", a.City)
		}
		if !slices.Contains(pools.States, a.State) {
			t.Errorf("state %q not in pool", a.State)
		}
	}
}

func TestAddressFormat(t *testing.T) {
	re := regexp.MustCompile(`^[1-9]\d{2} [A-Za-z ]+, [A-Za-z ]+, [A-Z]{2}$`)
	g := New()
	for range 50 {
		addr := g.Address(fixture.Default().Address)
		if !re.MatchString(addr) {
			t.Errorf("address %q does not match NUMBER STREET, CITY, STATE", addr)
		}
	}
}

func TestAddressPartsString(t *testing.T) {
	a := AddressParts{Number: 123, Street: "Oak St", City: "Lakeside", State: "OR"}
	if got, want := a.String(), "123 Oak St, Lakeside, OR"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestProducts(t *testing.T) {
	g := New()
	entries := fixture.Default().Products
	products := g.Products(entries, DefaultPriceMin, DefaultPriceMax)

	if len(products) != len(entries) {
		t.Fatalf("got %d products, want %d", len(products), len(entries))
	}

	for i, p := range products {
		if p.ID != i+1 {
			t.Errorf("product %d has id %d", i, p.ID)
		}
		if p.Name != entries[i].Name || p.Description != entries[i].Description {
			t.Errorf("product %d = %+v, want fields of %+v", i, p, entries[i])
		}
		if p.Price < 15 || p.Price > 230 {
			t.Errorf("product %d price %d out of [15, 230]", p.ID, p.Price)
		}
	}
}

func TestProductsPriceBoundsInclusive(t *testing.T) {
	g := NewSeeded(7)
	entries := []fixture.Product{{Name: "a"}}
	seen := map[int]bool{}
	for range 500 {
		seen[g.Products(entries, 1, 3)[0].Price] = true
	}
	for _, want := range []int{1, 2, 3} {
		if !seen[want] {
			t.Errorf("price %d never drawn", want)
		}
	}
	if len(seen) != 3 {
		t.Errorf("drew prices %v, want only 1..3", seen)
	}
}

func TestProductsEmpty(t *testing.T) {
	if got := New().Products(nil, 15, 230); len(got) != 0 {
		t.Errorf("got %d products for empty input", len(got))
	}
}

func TestCredentials(t *testing.T) {
	users := fixture.Default().CredentialUsernames
	creds, err := New().Credentials(users, DefaultPasswordLength)
	if err != nil {
		t.Fatalf("Credentials: %v", err)
	}

	if len(creds) != len(users) {
		t.Fatalf("got %d credentials, want %d", len(creds), len(users))
	}
	for i, c := range creds {
		if c.Username != users[i] {
			t.Errorf("credential %d username = %q, want %q", i, c.Username, users[i])
		}
		if len(c.Password) != DefaultPasswordLength {
			t.Errorf("credential %s password length %d", c.Username, len(c.Password))
		}
	}
}

func TestCredentialsBadLength(t *testing.T) {
	_, err := New().Credentials([]string{"ann"}, 2)
	if !errors.Is(err, ErrPasswordLength) {
		t.Errorf("err = %v, want ErrPasswordLength", err)
	}
}

func TestProfiles(t *testing.T) {
	set := fixture.Default()
	profiles, err := New().Profiles(set.ProfileUsernames, set.Address, DefaultPasswordLength)
	if err != nil {
		t.Fatalf("Profiles: %v", err)
	}

	if len(profiles) != len(set.ProfileUsernames) {
		t.Fatalf("got %d profiles, want %d", len(profiles), len(set.ProfileUsernames))
	}
	for i, p := range profiles {
		if p.Username != set.ProfileUsernames[i] {
			t.Errorf("profile %d username = %q", i, p.Username)
		}
		if len(p.Password) != DefaultPasswordLength {
			t.Errorf("profile %s password length %d", p.Username, len(p.Password))
		}
		if strings.Count(p.Address, ", ") != 2 {
			t.Errorf("profile %s address %q", p.Username, p.Address)
		}
	}
}

func TestProfilesBadLength(t *testing.T) {
	_, err := New().Profiles([]string{"ann"}, fixture.Default().Address, 1)
	if !errors.Is(err, ErrPasswordLength) {
		t.Errorf("err = %v, want ErrPasswordLength", err)
	}
}

func TestSeededBatchReproducible(t *testing.T) {
	set := fixture.Default()
	a, _ := NewSeeded(99).Profiles(set.ProfileUsernames, set.Address, 12)
	b, _ := NewSeeded(99).Profiles(set.ProfileUsernames, set.Address, 12)
	if !slices.Equal(a, b) {
		t.Error("same seed produced different profiles")
	}
}

func TestToken(t *testing.T) {
	g := New()
	tok := g.Token("ab", 35)
	if len(tok) != 35 {
		t.Fatalf("len = %d, want 35", len(tok))
	}
	if strings.Trim(tok, "ab") != "" {
		t.Errorf("token %q has characters outside alphabet", tok)
	}
}

func TestColumnsMatchValues(t *testing.T) {
	rows := []interface {
		Columns() []string
		Values() []any
	}{
		Product{ID: 1, Name: "n", Description: "d", Price: 20},
		Credential{Username: "u", Password: "p"},
		Profile{Username: "u", Password: "p", Address: "a"},
	}
	for _, r := range rows {
		if len(r.Columns()) != len(r.Values()) {
			t.Errorf("%T: %d columns, %d values", r, len(r.Columns()), len(r.Values()))
		}
	}
}
