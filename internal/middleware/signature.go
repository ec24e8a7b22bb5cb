package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"github.com/expostands/expostands-api/internal/types"
	"github.com/gofiber/fiber/v2"
)

// SignatureHeader carries the hex HMAC-SHA256 of the raw request body.
const SignatureHeader = "X-Webhook-Signature"

// VerifyWebhookSignature rejects webhook deliveries whose body signature
// does not match the shared secret. The payload is untrusted until the
// signature verifies.
func VerifyWebhookSignature(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		signature := c.Get(SignatureHeader)
		if signature == "" {
			return &types.CustomError{
				Code:    fiber.StatusUnauthorized,
				Message: "Missing webhook signature",
				Type:    "webhook.signature",
			}
		}

		mac := hmac.New(sha256.New, []byte(secret))
		mac.Write(c.Body())
		expected := hex.EncodeToString(mac.Sum(nil))

		if !hmac.Equal([]byte(signature), []byte(expected)) {
			return &types.CustomError{
				Code:    fiber.StatusUnauthorized,
				Message: "Invalid webhook signature",
				Type:    "webhook.signature",
			}
		}

		return c.Next()
	}
}
