package medications

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"
)

// LowStockMessage arma el texto para avisar al contacto de emergencia.
func LowStockMessage(contactName string, low []Medication) string {
	lines := make([]string, 0, len(low))
	for _, m := range low {
		lines = append(lines, fmt.Sprintf("- %s (only %d left)", m.Name, m.Quantity))
	}
	return fmt.Sprintf(
		"Hi %s, this is a reminder about my medications that are running low:\n\n%s",
		contactName, strings.Join(lines, "\n"),
	)
}

// DoseReminderMessage es el texto de un recordatorio de toma.
func DoseReminderMessage(m Medication) string {
	return fmt.Sprintf("It's time to take your %s.", m.Name)
}

// WhatsAppURL compone el deep link wa.me. wa.me sólo acepta dígitos en el
// número, así que se descartan "+", espacios, guiones y paréntesis.
func WhatsAppURL(phone, message string) string {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, phone)

	// QueryEscape usa "+" para espacios; wa.me espera %20.
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + digits + "?text=" + text
}
