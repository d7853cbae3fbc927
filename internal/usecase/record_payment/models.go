package record_payment

// Request модель запроса на регистрацию оплаты
type Request struct {
	AppointmentID string  // Запись, по которой регистрируется оплата
	PaymentStatus string  // Новый статус оплаты: "pending" | "partial" | "full"
	Amount        float64 // Суммарно оплачено на данный момент
}

// Response модель ответа о зарегистрированной оплате
type Response struct {
	AppointmentID string  // Запись
	PaymentStatus string  // Установленный статус оплаты
	Amount        float64 // Зафиксированная сумма
	IncomeAmount  float64 // Разница, записанная в кассовую книгу (0 — ничего не записано)
	TransactionID string  // ID записи дохода, если она создана
}
