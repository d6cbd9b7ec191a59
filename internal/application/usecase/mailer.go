package usecase

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Mailer is the outbound port for credential-delivery notifications.
// Sends are fire-and-forget: use cases log failures and never surface
// them to the caller of the triggering operation.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// LoginPasswordSubject subject line for credential-delivery mails.
const LoginPasswordSubject = "Please login using this password"

const passwordCharset = "abcdefghijklmnopqrstuvwxyz0123456789"

// randomPassword generates an 8-character initial password for
// provisioned accounts. The plaintext only ever travels in the welcome
// mail; the store keeps the bcrypt hash.
func randomPassword() (string, error) {
	buf := make([]byte, 8)
	for i := range buf {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(passwordCharset))))
		if err != nil {
			return "", fmt.Errorf("generate password: %w", err)
		}
		buf[i] = passwordCharset[n.Int64()]
	}
	return string(buf), nil
}

// welcomeBody renders the credential-delivery mail.
func welcomeBody(name, email, password string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
	<h3>Welcome %s</h3>
	<br />
	<p>Your Email: %s</p>
	<br />
	<p>Please login using this password: %s</p>
</html>`, name, email, password)
}
