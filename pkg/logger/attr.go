package logger

import "log/slog"

// Error logs err under "error". A nil error yields an empty Attr, which slog
// drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// RequestID logs id under "request_id"; empty ids are dropped.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Field names the donation form field a record is about.
func Field(kind string) slog.Attr {
	return slog.String("field", kind)
}

func ProjectID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("project_id", id)
}

// Amount logs a donation amount in whole NT dollars.
func Amount(amount int64) slog.Attr {
	return slog.Int64("amount", amount)
}

func Lang(lang string) slog.Attr {
	return slog.String("lang", lang)
}
