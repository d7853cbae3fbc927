package get_available_slots

import (
	"time"

	"github.com/mundoinsolito/manicura/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date              time.Time // Дата, на которую считаются слоты
	RequestedDuration int       // Суммарная длительность выбранных услуг в минутах (0 = дефолт)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date  time.Time          // Дата, на которую запрашивались слоты
	Slots []types.TimeString // Доступные времена начала в хронологическом порядке
}
