package get_available_slots

import "fmt"

func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}
	if req.RequestedDuration < 0 {
		return fmt.Errorf("%w: duration must not be negative", ErrInvalidDuration)
	}
	return nil
}
