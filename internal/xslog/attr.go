package xslog

import (
	"log/slog"
	"time"
)

const keyError = "error"

func Error(err error) slog.Attr {
	return slog.String(keyError, err.Error())
}

func Duration(duration time.Duration) slog.Attr {
	const durationKey = "duration"
	return slog.Duration(durationKey, duration)
}

func SessionID(id string) slog.Attr {
	const sessionIDKey = "session_id"
	return slog.String(sessionIDKey, id)
}

func Event(name string) slog.Attr {
	const eventKey = "event"
	return slog.String(eventKey, name)
}

func Phase(name string) slog.Attr {
	const phaseKey = "phase"
	return slog.String(phaseKey, name)
}

func Remaining(seconds int) slog.Attr {
	const remainingKey = "remaining"
	return slog.Int(remainingKey, seconds)
}

func Total(seconds int) slog.Attr {
	const totalKey = "total"
	return slog.Int(totalKey, seconds)
}

func Fraction(f float64) slog.Attr {
	const fractionKey = "fraction"
	return slog.Float64(fractionKey, f)
}

func Path(p string) slog.Attr {
	const pathKey = "path"
	return slog.String(pathKey, p)
}
