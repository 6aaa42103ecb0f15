//go:build unit

package session_test

import (
	"testing"

	"carseat-rental/internal/domain/session"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSession(t *testing.T) {
	s := session.Session{UserID: uuid.New(), Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace", Phone: "555"}
	assert.True(t, s.Valid())
	assert.True(t, s.Contact().IsComplete())

	assert.False(t, session.Session{Email: "ada@example.com"}.Valid())
	assert.False(t, session.Session{UserID: uuid.New()}.Valid())
}
