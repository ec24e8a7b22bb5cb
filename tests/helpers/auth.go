package helpers

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"os"
	"testing"

	"github.com/authorizerdev/authorizer-go"
)

func randInt(max int) int {
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(max)))
	return int(n.Int64())
}

// GeneratePassword generates a password that satisfies the Authorizer
// strength policy: length 12 with upper, lower, digit, and special chars.
func GeneratePassword() string {
	const (
		lower   = "abcdefghijklmnopqrstuvwxyz"
		upper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
		special = "!@#$%^&*"
		digits  = "0123456789"
		all     = lower + upper + special + digits
	)

	password := make([]byte, 12)
	password[0] = upper[randInt(len(upper))]
	password[1] = lower[randInt(len(lower))]
	password[2] = special[randInt(len(special))]
	password[3] = digits[randInt(len(digits))]
	for i := 4; i < len(password); i++ {
		password[i] = all[randInt(len(all))]
	}
	for i := range password {
		j := randInt(len(password))
		password[i], password[j] = password[j], password[i]
	}

	return string(password)
}

// AdminSessionToken provisions a fresh admin account on the Authorizer at
// authzURL and returns the access token the API accepts as the
// cookie_session value on admin routes.
func AdminSessionToken(t *testing.T, authzURL string) string {
	t.Helper()

	email := fmt.Sprintf("e2e-admin-%06d@expostands.com", randInt(1000000))
	password := GeneratePassword()

	client, err := authorizer.NewAuthorizerClient(os.Getenv("AUTHZ_CLIENT_ID"), authzURL, "", nil)
	if err != nil {
		t.Fatalf("Failed to create authorizer client: %v", err)
	}

	adminRole := "admin"
	if _, err := client.SignUp(&authorizer.SignUpInput{
		Email:           &email,
		Password:        password,
		ConfirmPassword: password,
		Roles:           []*string{&adminRole},
	}); err != nil {
		t.Fatalf("Admin signup failed: %v", err)
	}

	res, err := client.Login(&authorizer.LoginInput{
		Email:    &email,
		Password: password,
	})
	if err != nil {
		t.Fatalf("Admin login failed: %v", err)
	}
	if res.AccessToken == nil {
		t.Fatal("Admin login returned no access token")
	}

	return *res.AccessToken
}
