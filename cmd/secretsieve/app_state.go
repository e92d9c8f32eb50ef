package main

import (
	"fmt"

	"github.com/suryansh-23/secretsieve"
	"github.com/suryansh-23/secretsieve/internal/config"
	"github.com/suryansh-23/secretsieve/internal/debug"
)

type appState struct {
	cfg      config.Config
	cfgFound bool
	cfgPath  string
	logger   *debug.Logger

	eng *secretsieve.Engine
}

// engine builds the detection engine on first use so that commands which
// never scan do not pay for rule compilation.
func (s *appState) engine() (*secretsieve.Engine, error) {
	if s.eng != nil {
		return s.eng, nil
	}
	eng, err := secretsieve.New(secretsieve.WithConfig(s.cfg), secretsieve.WithLogger(s.logger))
	if err != nil {
		return nil, err
	}
	s.eng = eng
	return eng, nil
}

// exitCodeError ends the process with code and no message.
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("command exited with code %d", e.code)
}
