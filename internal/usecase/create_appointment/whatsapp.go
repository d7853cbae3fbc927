package create_appointment

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/mundoinsolito/manicura/internal/domain"
	"github.com/mundoinsolito/manicura/pkg/types"
)

// Шаблон сообщения, которое клиентка отправляет салону для подтверждения
const confirmationMessage = "¡Hola! Soy %s (cédula %s). Acabo de reservar %s para el %s a las %s. Envío el abono de $%.2f para confirmar mi cita."

// buildWhatsAppURL собирает ссылку wa.me с предзаполненным сообщением
func buildWhatsAppURL(settings *domain.Settings, clientName, cedula, serviceName string, date string, start types.TimeString, deposit float64) string {
	number := sanitizeNumber(settings.WhatsAppNumber)
	if number == "" {
		return ""
	}

	text := fmt.Sprintf(confirmationMessage, clientName, cedula, serviceName, date, start, deposit)
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(text))
}

// sanitizeNumber оставляет только цифры: wa.me не принимает + и пробелы
func sanitizeNumber(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
