package medications

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLowStockMessage(t *testing.T) {
	msg := LowStockMessage("Ana", []Medication{
		{Name: "Vitamin D", Quantity: 3},
		{Name: "Aspirin", Quantity: 0},
	})
	assert.Equal(t,
		"Hi Ana, this is a reminder about my medications that are running low:\n\n- Vitamin D (only 3 left)\n- Aspirin (only 0 left)",
		msg)
}

func TestWhatsAppURL(t *testing.T) {
	got := WhatsAppURL("+1 (555) 010-2030", "Hi Ana,\n\n- Vitamin D (only 3 left)")
	assert.Equal(t, "https://wa.me/15550102030?text=Hi%20Ana%2C%0A%0A-%20Vitamin%20D%20%28only%203%20left%29", got)
}
