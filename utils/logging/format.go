// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

const (
	Plain Format = iota
	Colors
	JSON

	PlainString  = "plain"
	ColorsString = "colors"
	JSONString   = "json"
	AutoString   = "auto"

	termTimeFormat = "[01-02|15:04:05.000]"
)

var (
	FormatDescription = fmt.Sprintf(
		"The structure of log format. Defaults to '%s' which formats terminal-like logs when the output is a terminal. Otherwise, should be one of {%s, %s, %s}",
		AutoString,
		PlainString,
		ColorsString,
		JSONString,
	)

	errUnknownFormat = errors.New("unknown format")

	defaultEncoderConfig = zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		EncodeLevel:    levelEncoder,
		EncodeTime:     timeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	jsonEncoderConfig = func() zapcore.EncoderConfig {
		c := defaultEncoderConfig
		c.EncodeLevel = jsonLevelEncoder
		c.EncodeTime = zapcore.ISO8601TimeEncoder
		return c
	}()
	colorsEncoderConfig = func() zapcore.EncoderConfig {
		c := defaultEncoderConfig
		c.EncodeLevel = colorLevelEncoder
		return c
	}()
)

// Format modes available
type Format int

// ToFormat chooses a log format. When [f] is auto, [fd] decides whether the
// output is a terminal.
func ToFormat(f string, fd uintptr) (Format, error) {
	switch strings.ToLower(f) {
	case PlainString:
		return Plain, nil
	case ColorsString:
		return Colors, nil
	case JSONString:
		return JSON, nil
	case AutoString:
		if !term.IsTerminal(int(fd)) {
			return JSON, nil
		}
		return Colors, nil
	default:
		return Plain, fmt.Errorf("%w: %q", errUnknownFormat, f)
	}
}

func (f Format) MarshalJSON() ([]byte, error) {
	switch f {
	case Plain:
		return []byte(`"` + PlainString + `"`), nil
	case Colors:
		return []byte(`"` + ColorsString + `"`), nil
	case JSON:
		return []byte(`"` + JSONString + `"`), nil
	default:
		return nil, errUnknownFormat
	}
}

func (f Format) ConsoleEncoder() zapcore.Encoder {
	switch f {
	case Colors:
		return zapcore.NewConsoleEncoder(colorsEncoderConfig)
	case JSON:
		return zapcore.NewJSONEncoder(jsonEncoderConfig)
	default:
		return zapcore.NewConsoleEncoder(defaultEncoderConfig)
	}
}

func levelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(Level(l).String())
}

func jsonLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(Level(l).LowerString())
}

func colorLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	lvl := Level(l)
	enc.AppendString(lvl.Color().Wrap(lvl.String()))
}

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format(termTimeFormat))
}
