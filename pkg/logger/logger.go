package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones del logger de la aplicación.
type Config struct {
	Env   string    // development -> consola legible; lo demás -> JSON
	Level string    // trace|debug|info|warn|error; inválido o vacío cae en info
	Out   io.Writer // destino; nil usa os.Stdout
}

// New construye el logger raíz de la aplicación. También redirige el logger
// global de zerolog, que es por donde los handlers HTTP reportan los fallos
// de almacenamiento.
func New(cfg Config) zerolog.Logger {
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	if cfg.Env == "development" {
		out = zerolog.ConsoleWriter{Out: out}
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	zl := zerolog.New(out).Level(level).With().Timestamp().Logger()
	log.Logger = zl
	return zl
}
