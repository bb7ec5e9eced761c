package timezone

import "time"

// A operação inteira usa uma única zona IANA, configurada no boot.
// scheduled_at é sempre composto UMA vez, nessa zona, e armazenado
// como instante absoluto — nunca dependemos da zona do processo.

const DefaultTimezone = "America/Sao_Paulo"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// ParseDate interpreta "2006-01-02" na zona da operação.
func ParseDate(tz string, dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, Location(tz))
}

// ParseDateTime compõe o instante do agendamento a partir de
// data + hora locais ("2006-01-02" + "15:04").
func ParseDateTime(tz string, dateStr string, timeStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", dateStr+" "+timeStr, Location(tz))
}

// DayBounds devolve [00:00, 24h) do dia na zona da operação.
func DayBounds(tz string, date time.Time) (time.Time, time.Time) {
	loc := Location(tz)
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	return start, start.Add(24 * time.Hour)
}

// SameDay informa se dois instantes caem no mesmo dia civil da zona.
func SameDay(tz string, a, b time.Time) bool {
	loc := Location(tz)
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}
