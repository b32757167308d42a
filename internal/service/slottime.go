package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/mkorchagin/ConsultBooker/internal/domain"
)

// ParseSlotTime parses admin input in the DD.MM HH:MM format, interpreted in
// the year of now. Impossible dates (31.02) are rejected by time.Parse.
func ParseSlotTime(raw string, now time.Time) (time.Time, error) {
	input := fmt.Sprintf("%s %d", strings.TrimSpace(raw), now.Year())

	t, err := time.Parse(domain.SlotTimeLayout+" 2006", input)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: expected DD.MM HH:MM, e.g. 25.12 14:00", domain.ErrValidation)
	}

	return t.UTC(), nil
}
