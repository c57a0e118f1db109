package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoney(t *testing.T) {
	m := Money{Currency: "PHP", Amount: 2550}

	assert.Equal(t, "25.50 PHP", m.String())
	assert.Equal(t, "0.00 PHP", Money{Currency: "PHP"}.String())
}
