package create_appointment

import (
	"time"

	"github.com/mundoinsolito/manicura/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	Cedula    string           // Идентификатор клиента
	Name      string           // Имя клиента (обновляет карточку при повторном визите)
	Phone     string           // Телефон клиента
	ServiceID string           // Бронируемая услуга
	Date      time.Time        // Дата визита
	Time      types.TimeString // Время начала, "10:00"
	Notes     *string          // Пожелания и дополнительные услуги

	// PaymentType способ оплаты: "partial" — депозит, "full" — вся сумма
	PaymentType string

	// TotalAmount суммарная стоимость; 0 — берется цена услуги
	TotalAmount float64
}

// Способы оплаты при бронировании
const (
	PaymentTypePartial = "partial"
	PaymentTypeFull    = "full"
)

// AdminRequest модель запроса на создание записи администратором
// Имя и телефон обязательны только для нового клиента
type AdminRequest struct {
	Cedula    string           // Идентификатор клиента
	Name      string           // Имя нового клиента
	Phone     string           // Телефон нового клиента
	ServiceID string           // Бронируемая услуга
	Date      time.Time        // Дата визита
	Time      types.TimeString // Время начала, "10:00"
	Notes     *string          // Пустые — подставляется пометка по умолчанию
}

// AdminResponse модель ответа о записи, созданной администратором
type AdminResponse struct {
	AppointmentID string           // ID созданной записи
	ClientID      string           // Клиент записи
	Date          time.Time        // Дата визита
	Time          types.TimeString // Время начала
	ServiceName   string           // Название услуги
	PaymentAmount float64          // Ожидаемая оплата (цена услуги)
}

// Response модель ответа о созданной записи
type Response struct {
	AppointmentID string           // ID созданной записи
	Date          time.Time        // Дата визита
	Time          types.TimeString // Время начала
	ServiceName   string           // Название услуги
	TotalAmount   float64          // Суммарная стоимость
	DepositAmount float64          // Депозит для подтверждения записи
	WhatsAppURL   string           // Ссылка wa.me для подтверждения в чате
}
