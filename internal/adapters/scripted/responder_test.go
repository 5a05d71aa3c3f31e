package scripted

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitialQueryPerRole(t *testing.T) {
	r := NewResponder()

	assert.Contains(t, r.InitialQuery("BUYER"), "3-bedroom house")
	assert.Contains(t, r.InitialQuery("SELLER"), "list my property")
	assert.Contains(t, r.InitialQuery("AGENT"), "market trends")
	assert.Contains(t, r.InitialQuery("ADMIN"), "system settings")

	// Неизвестная роль получает общий сценарий
	assert.Equal(t, "Hi, I have a general question!", r.InitialQuery("GUEST"))
}

func TestNextReplyIsDeterministicAndCycles(t *testing.T) {
	r := NewResponder()

	first := r.NextReply("BUYER", 1)
	assert.Equal(t, first, r.NextReply("BUYER", 1))

	// Сценарий BUYER состоит из пяти реплик и зацикливается
	assert.Equal(t, r.NextReply("BUYER", 0), r.NextReply("BUYER", 5))
	assert.Equal(t, r.NextReply("BUYER", 2), r.NextReply("BUYER", 7))

	// Общий сценарий короче и тоже зацикливается
	assert.Equal(t, r.NextReply("GUEST", 0), r.NextReply("GUEST", 3))
}
