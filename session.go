package main

import (
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/oarkflow/log"
	"github.com/pkg/errors"
)

// A Session is one interactive run: a binding environment plus the
// evaluator that reads and writes it. Sessions share nothing.
type Session struct {
	ID   string
	env  *Env
	eval *Evaluator
	log  *log.Logger
}

type Option func(*sessionOptions)

type sessionOptions struct {
	invoker Invoker
	logger  *log.Logger
}

// WithInvoker replaces the process invoker, mostly for tests.
func WithInvoker(inv Invoker) Option {
	return func(o *sessionOptions) { o.invoker = inv }
}

func WithLogger(logger *log.Logger) Option {
	return func(o *sessionOptions) { o.logger = logger }
}

// NewSession starts a session with the bindings from cfg.
// A nil cfg means DefaultConfig.
func NewSession(cfg *Config, opts ...Option) (*Session, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	var o sessionOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = &log.DefaultLogger
	}
	if o.invoker == nil {
		o.invoker = &ExecInvoker{Allow: cfg.Commands.Allow, Logger: o.logger}
	}

	env := newEnv()
	vals, err := cfg.bindingValues()
	if err != nil {
		return nil, err
	}
	for name, v := range vals {
		env.Set(name, v)
	}

	s := &Session{
		ID:   uuid.NewString(),
		env:  env,
		eval: NewEvaluator(env, o.invoker, o.logger),
		log:  o.logger,
	}
	s.log.Debug().Str("session", s.ID).Int("bindings", env.Len()).Msg("session started")
	return s, nil
}

func (s *Session) Env() *Env { return s.env }

func (s *Session) Parse(line string) (Expr, error) {
	return parse(strings.NewReader(line))
}

// Run parses and evaluates one line.
func (s *Session) Run(line string) (Value, error) {
	expr, err := s.Parse(line)
	if err != nil {
		s.log.Debug().Str("session", s.ID).Err(err).Msg("parse failed")
		return nil, err
	}
	return s.Eval(expr)
}

// Eval evaluates an already parsed line.
func (s *Session) Eval(expr Expr) (Value, error) {
	v, err := s.eval.Eval(expr)
	if err != nil {
		s.log.Debug().Str("session", s.ID).Str("kind", KindOf(err).String()).Err(err).Msg("evaluation failed")
		return nil, err
	}
	return v, nil
}

// Feed takes the result of reading one line. io.EOF is passed through
// so the caller can stop; any other read error is an InputFailure.
func (s *Session) Feed(line string, readErr error) (Value, error) {
	if readErr != nil {
		if errors.Is(readErr, io.EOF) {
			return nil, io.EOF
		}
		return nil, wrapFailure(InputFailure, readErr, "read")
	}
	return s.Run(line)
}
