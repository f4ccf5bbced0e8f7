package stdlib

import (
	"fmt"
	"strings"
	"time"

	"github.com/cwbudde/go-aksoscript/internal/value"
)

const CategoryDateTime = "datetime"

// esperantoMonths are the Esperanto month names used by date/timestamp
// formatting, januaro through decembro.
var esperantoMonths = [...]string{
	"januaro", "februaro", "marto", "aprilo", "majo", "junio",
	"julio", "aŭgusto", "septembro", "oktobro", "novembro", "decembro",
}

func daysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func asDate(v value.Value) (value.Date, bool) {
	switch d := v.(type) {
	case value.Date:
		return d, true
	case value.Str:
		return parseDate(string(d))
	default:
		return value.Date{}, false
	}
}

func parseDate(s string) (value.Date, bool) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return value.Date{}, false
	}
	return value.Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}, true
}

func dateToTime(d value.Date) time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

func timeToDate(t time.Time) value.Date {
	return value.Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

func asTimestamp(v value.Value) (value.Timestamp, bool) {
	switch t := v.(type) {
	case value.Timestamp:
		return t, true
	case value.Str:
		parsed, err := time.Parse(time.RFC3339, string(t))
		if err != nil {
			return value.Timestamp{}, false
		}
		return value.Timestamp{UnixMilli: parsed.UnixMilli()}, true
	default:
		return value.Timestamp{}, false
	}
}

func timestampToTime(ts value.Timestamp) time.Time {
	return time.UnixMilli(ts.UnixMilli).UTC()
}

func applyFormat(format string, year, month, day, hour, min, sec int) string {
	out := format
	out = strings.ReplaceAll(out, "YYYY", fmt.Sprintf("%04d", year))
	out = strings.ReplaceAll(out, "MMMM", esperantoMonths[month-1])
	out = strings.ReplaceAll(out, "MM", fmt.Sprintf("%02d", month))
	out = strings.ReplaceAll(out, "DD", fmt.Sprintf("%02d", day))
	out = strings.ReplaceAll(out, "HH", fmt.Sprintf("%02d", hour))
	out = strings.ReplaceAll(out, "mm", fmt.Sprintf("%02d", min))
	out = strings.ReplaceAll(out, "ss", fmt.Sprintf("%02d", sec))
	return out
}

func registerDateTime(r *Registry) {
	r.Register("date_sub", 3, CategoryDateTime, "difference between two dates in a unit", func(args []value.Value) (value.Value, error) {
		unit, uok := args[0].(value.Str)
		a, aok := asDate(args[1])
		b, bok := asDate(args[2])
		if !uok || !aok || !bok {
			return value.Number(0), nil
		}
		return value.Number(dateSub(string(unit), a, b)), nil
	})

	r.Register("date_add", 3, CategoryDateTime, "add n units to a date", func(args []value.Value) (value.Value, error) {
		unit, uok := args[0].(value.Str)
		n, nok := asNumber(args[1])
		d, dok := asDate(args[2])
		if !uok || !nok || !dok {
			return value.NullValue, nil
		}
		return dateAdd(string(unit), float64(n), d), nil
	})

	r.Register("date_today", 0, CategoryDateTime, "today's date (UTC)", func(args []value.Value) (value.Value, error) {
		return timeToDate(time.Now().UTC()), nil
	})

	r.Register("date_fmt", 2, CategoryDateTime, "format a date with YYYY/MM/DD/MMMM tokens", func(args []value.Value) (value.Value, error) {
		d, dok := asDate(args[0])
		f, fok := args[1].(value.Str)
		if !dok || !fok {
			return value.NullValue, nil
		}
		return value.Str(applyFormat(string(f), d.Year, d.Month, d.Day, 0, 0, 0)), nil
	})

	r.Register("date_get", 2, CategoryDateTime, "read a date field (year/month/day/weekday)", func(args []value.Value) (value.Value, error) {
		d, dok := asDate(args[0])
		unit, uok := args[1].(value.Str)
		if !dok || !uok {
			return value.NullValue, nil
		}
		return dateGet(string(unit), d), nil
	})

	r.Register("date_set", 3, CategoryDateTime, "return a date with one field replaced", func(args []value.Value) (value.Value, error) {
		d, dok := asDate(args[0])
		unit, uok := args[1].(value.Str)
		n, nok := asNumber(args[2])
		if !dok || !uok || !nok {
			return value.NullValue, nil
		}
		return dateSet(string(unit), d, int(n)), nil
	})

	r.Register("ts_now", 0, CategoryDateTime, "the current instant", func(args []value.Value) (value.Value, error) {
		return value.Timestamp{UnixMilli: time.Now().UnixMilli()}, nil
	})

	r.Register("tz_utc", 0, CategoryDateTime, "UTC offset in minutes (always 0)", func(args []value.Value) (value.Value, error) {
		return value.Number(0), nil
	})

	r.Register("tz_local", 0, CategoryDateTime, "host's local offset in minutes", func(args []value.Value) (value.Value, error) {
		_, offsetSec := time.Now().Zone()
		return value.Number(offsetSec / 60), nil
	})

	r.Register("ts_from_unix", 1, CategoryDateTime, "unix seconds to timestamp", func(args []value.Value) (value.Value, error) {
		n, ok := asNumber(args[0])
		if !ok {
			return value.NullValue, nil
		}
		return value.Timestamp{UnixMilli: int64(float64(n) * 1000)}, nil
	})

	r.Register("ts_to_unix", 1, CategoryDateTime, "timestamp to unix seconds", func(args []value.Value) (value.Value, error) {
		ts, ok := asTimestamp(args[0])
		if !ok {
			return value.Number(0), nil
		}
		return value.Number(float64(ts.UnixMilli) / 1000), nil
	})

	r.Register("ts_from_date", 1, CategoryDateTime, "midnight UTC of a date", func(args []value.Value) (value.Value, error) {
		d, ok := asDate(args[0])
		if !ok {
			return value.NullValue, nil
		}
		return value.Timestamp{UnixMilli: dateToTime(d).UnixMilli()}, nil
	})

	r.Register("ts_to_date", 1, CategoryDateTime, "UTC calendar date of a timestamp", func(args []value.Value) (value.Value, error) {
		ts, ok := asTimestamp(args[0])
		if !ok {
			return value.NullValue, nil
		}
		return timeToDate(timestampToTime(ts)), nil
	})

	r.Register("ts_parse", 1, CategoryDateTime, "parse an RFC3339 timestamp string", func(args []value.Value) (value.Value, error) {
		s, ok := args[0].(value.Str)
		if !ok {
			return value.NullValue, nil
		}
		t, err := time.Parse(time.RFC3339, string(s))
		if err != nil {
			return value.NullValue, nil
		}
		return value.Timestamp{UnixMilli: t.UnixMilli()}, nil
	})

	r.Register("ts_to_string", 1, CategoryDateTime, "RFC3339 rendering of a timestamp", func(args []value.Value) (value.Value, error) {
		ts, ok := asTimestamp(args[0])
		if !ok {
			return value.NullValue, nil
		}
		return value.Str(timestampToTime(ts).Format(time.RFC3339)), nil
	})

	r.Register("ts_fmt", 2, CategoryDateTime, "format a timestamp with date/time tokens", func(args []value.Value) (value.Value, error) {
		ts, tok := asTimestamp(args[0])
		f, fok := args[1].(value.Str)
		if !tok || !fok {
			return value.NullValue, nil
		}
		t := timestampToTime(ts)
		return value.Str(applyFormat(string(f), t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second())), nil
	})

	r.Register("ts_add", 3, CategoryDateTime, "add n units (seconds/minutes/hours/days) to a timestamp", func(args []value.Value) (value.Value, error) {
		unit, uok := args[0].(value.Str)
		n, nok := asNumber(args[1])
		ts, tok := asTimestamp(args[2])
		if !uok || !nok || !tok {
			return value.NullValue, nil
		}
		return value.Timestamp{UnixMilli: ts.UnixMilli + int64(float64(n)*unitMillis(string(unit)))}, nil
	})

	r.Register("ts_sub", 3, CategoryDateTime, "difference between two timestamps in a unit", func(args []value.Value) (value.Value, error) {
		unit, uok := args[0].(value.Str)
		a, aok := asTimestamp(args[1])
		b, bok := asTimestamp(args[2])
		if !uok || !aok || !bok {
			return value.Number(0), nil
		}
		millis := unitMillis(string(unit))
		if millis == 0 {
			return value.Number(0), nil
		}
		return value.Number(float64(a.UnixMilli-b.UnixMilli) / millis), nil
	})

	r.Register("ts_get", 2, CategoryDateTime, "read a timestamp field", func(args []value.Value) (value.Value, error) {
		ts, tok := asTimestamp(args[0])
		unit, uok := args[1].(value.Str)
		if !tok || !uok {
			return value.NullValue, nil
		}
		t := timestampToTime(ts)
		switch string(unit) {
		case "hour":
			return value.Number(t.Hour()), nil
		case "minute":
			return value.Number(t.Minute()), nil
		case "second":
			return value.Number(t.Second()), nil
		default:
			return dateGet(string(unit), timeToDate(t)), nil
		}
	})

	r.Register("ts_set", 3, CategoryDateTime, "return a timestamp with one field replaced", func(args []value.Value) (value.Value, error) {
		ts, tok := asTimestamp(args[0])
		unit, uok := args[1].(value.Str)
		n, nok := asNumber(args[2])
		if !tok || !uok || !nok {
			return value.NullValue, nil
		}
		t := timestampToTime(ts)
		switch string(unit) {
		case "hour":
			t = time.Date(t.Year(), t.Month(), t.Day(), int(n), t.Minute(), t.Second(), 0, time.UTC)
		case "minute":
			t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), int(n), t.Second(), 0, time.UTC)
		case "second":
			t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), int(n), 0, time.UTC)
		default:
			d := dateSetRaw(string(unit), timeToDate(t), int(n))
			t = time.Date(d.Year, time.Month(d.Month), d.Day, t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
		}
		return value.Timestamp{UnixMilli: t.UnixMilli()}, nil
	})
}

func unitMillis(unit string) float64 {
	switch unit {
	case "seconds", "second":
		return 1000
	case "minutes", "minute":
		return 60 * 1000
	case "hours", "hour":
		return 60 * 60 * 1000
	case "days", "day":
		return 24 * 60 * 60 * 1000
	default:
		return 0
	}
}

// dateSub returns a - b expressed in unit. "months" and "years" return a
// fractional count normalized against the day count of a's month.
func dateSub(unit string, a, b value.Date) float64 {
	switch unit {
	case "days", "day":
		return dateToTime(a).Sub(dateToTime(b)).Hours() / 24
	case "months", "month":
		return monthsBetween(a, b)
	case "years", "year":
		return monthsBetween(a, b) / 12
	default:
		return 0
	}
}

func monthsBetween(a, b value.Date) float64 {
	whole := float64((a.Year*12 + a.Month) - (b.Year*12 + b.Month))
	frac := float64(a.Day-b.Day) / float64(daysInMonth(a.Year, a.Month))
	return whole + frac
}

func dateAdd(unit string, n float64, d value.Date) value.Value {
	switch unit {
	case "days", "day":
		return timeToDate(dateToTime(d).AddDate(0, 0, int(n)))
	case "months", "month":
		return timeToDate(dateToTime(d).AddDate(0, int(n), 0))
	case "years", "year":
		return timeToDate(dateToTime(d).AddDate(int(n), 0, 0))
	default:
		return value.NullValue
	}
}

func dateGet(unit string, d value.Date) value.Value {
	switch unit {
	case "year":
		return value.Number(d.Year)
	case "month":
		return value.Number(d.Month)
	case "day":
		return value.Number(d.Day)
	case "weekday":
		return value.Number(int(dateToTime(d).Weekday()))
	default:
		return value.NullValue
	}
}

func dateSet(unit string, d value.Date, n int) value.Value {
	return dateSetRaw(unit, d, n)
}

func dateSetRaw(unit string, d value.Date, n int) value.Date {
	switch unit {
	case "year":
		d.Year = n
	case "month":
		d.Month = n
	case "day":
		d.Day = n
	}
	return d
}
