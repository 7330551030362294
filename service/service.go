package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cbsinteractive/timecode"
	"github.com/cbsinteractive/timecode/config"
	"github.com/cbsinteractive/timecode/db"
	"github.com/cbsinteractive/timecode/service/exceptions"
	"github.com/gofrs/uuid"
	"github.com/sirupsen/logrus"
	"github.com/zsiec/pkg/tracing"
)

var ErrStorage = errors.New("storage error")

type Server struct {
	Config      *config.Config
	DB          db.Repo
	logger      *logrus.Logger
	errReporter exceptions.Reporter
	tracer      tracing.Tracer

	request
}

// NewServer wires storage, exception reporting and tracing around the
// handlers.
func NewServer(cfg *config.Config, logger *logrus.Logger) (*Server, error) {
	dbc, err := db.NewClient(&db.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB})
	if err != nil {
		return nil, fmt.Errorf("initializing storage: %w", err)
	}
	reporter, err := exceptions.New(cfg.SentryDSN, cfg.Environment)
	if err != nil {
		return nil, fmt.Errorf("initializing exception reporter: %w", err)
	}
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = tracing.NoopTracer{}
	}
	logger.WithFields(logrus.Fields{
		"redis": cfg.RedisAddr,
		"env":   cfg.Environment,
	}).Info("server ready")
	return &Server{
		Config:      cfg,
		DB:          dbc,
		logger:      logger,
		errReporter: reporter,
		tracer:      tracer,
	}, nil
}

func (s Server) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	s.request = newRequest(rw, r)
	s.serve()
	defer s.request.finalize()
}

func (s *Server) serve() bool {
	switch s.chop() {
	case "timecodes":
		if s.method() != "POST" {
			return s.fail("method not allowed", 405, nil)
		}
		return s.timecodes0()
	case "cutlists":
		return s.cutlists0()
	case "healthcheck":
		return s.health0()
	}
	return s.fail("bad request path", 400, nil)
}

func (s *Server) timecodes0() bool {
	switch s.chop() {
	case "parse", "format":
		q := &TimecodeRequest{}
		if !s.request.UnmarshalJSON(q) {
			return s.fail("bad request body", 400, s.err)
		}
		v, err := s.operand(q)
		if err != nil {
			return s.fail("bad timecode", code(err), err)
		}
		return s.writebody(report(v))
	case "convert":
		q := &ConvertRequest{}
		if !s.request.UnmarshalJSON(q) {
			return s.fail("bad request body", 400, s.err)
		}
		v, err := s.convert0(q)
		if err != nil {
			return s.fail("convert failed", code(err), err)
		}
		return s.writebody(report(v))
	case "arith":
		q := &ArithRequest{}
		if !s.request.UnmarshalJSON(q) {
			return s.fail("bad request body", 400, s.err)
		}
		v, err := s.arith0(q)
		if err != nil {
			return s.fail("arith failed", code(err), err)
		}
		return s.writebody(report(v))
	}
	return s.fail("bad request path", 400, nil)
}

func (s *Server) cutlists0() bool {
	name := s.chop()
	if name == "" {
		if s.method() != "GET" {
			return s.fail("method not allowed", 405, nil)
		}
		names, err := s.listCutlists0()
		if err != nil {
			return s.fail("list cutlists failed", code(err), err)
		}
		return s.writebody(&Listing{Cutlists: names})
	}
	switch s.method() {
	case "PUT", "POST":
		cl := &db.Cutlist{}
		if !s.request.UnmarshalJSON(cl) {
			return s.fail("bad request body", 400, s.err)
		}
		cl, err := s.putCutlist0(name, cl)
		if err != nil {
			return s.fail("put cutlist failed", code(err), err)
		}
		return s.writebody(cl)
	case "GET":
		rep, err := s.getCutlist0(name)
		if err != nil {
			return s.fail("get cutlist failed", code(err), err)
		}
		return s.writebody(rep)
	case "DELETE":
		if err := s.delCutlist0(name); err != nil {
			return s.fail("del cutlist failed", code(err), err)
		}
		return s.writebody(&Ack{Ok: true, Rid: s.rid})
	}
	return s.fail("method not allowed", 405, nil)
}

// operand builds the timecode a request describes, falling back to the
// configured default rate when the request carries none.
func (s *Server) operand(q *TimecodeRequest) (timecode.Timecode, error) {
	r := q.rate()
	var v timecode.Timecode
	var err error
	switch {
	case q.Timecode != "":
		v, err = timecode.Parse(q.Timecode, r)
	case q.Frame != nil:
		v, err = timecode.AtFrame(*q.Frame, s.rateOr(r, q.NDF))
	case q.Seconds != nil:
		v, err = timecode.AtSeconds(*q.Seconds, s.rateOr(r, q.NDF))
	default:
		v = timecode.New(s.rateOr(r, q.NDF))
	}
	if err != nil {
		return timecode.Timecode{}, err
	}
	v.SetFractional(q.Fractional)
	return v, nil
}

// rateOr substitutes the configured default fps when r is unset.
func (s *Server) rateOr(r timecode.Rate, ndf bool) timecode.Rate {
	if !r.IsZero() {
		return r
	}
	if ndf {
		return timecode.NewNonDropRate(s.Config.DefaultFPS)
	}
	return timecode.NewRate(s.Config.DefaultFPS)
}

func (s *Server) convert0(q *ConvertRequest) (timecode.Timecode, error) {
	v, err := s.operand(&q.TimecodeRequest)
	if err != nil {
		return timecode.Timecode{}, err
	}
	to := timecode.NewRate(q.ToFPS)
	if q.ToNDF {
		to = timecode.NewNonDropRate(q.ToFPS)
	}
	if to.IsZero() {
		return timecode.Timecode{}, errors.New("toFps is required")
	}
	out, err := timecode.New(to).Add(v)
	if err != nil {
		return timecode.Timecode{}, err
	}
	out.SetFractional(q.Fractional)
	return out, nil
}

func (s *Server) arith0(q *ArithRequest) (timecode.Timecode, error) {
	left, err := s.operand(&q.Left)
	if err != nil {
		return timecode.Timecode{}, err
	}
	var right timecode.Timecode
	switch q.Op {
	case "add", "sub":
		if q.Right == nil {
			return timecode.Timecode{}, errors.New("right operand is required")
		}
		if right, err = s.operand(q.Right); err != nil {
			return timecode.Timecode{}, err
		}
	}
	v := left
	switch q.Op {
	case "add":
		v, err = left.Add(right)
	case "sub":
		v, err = left.Sub(right)
	case "scale":
		v, err = left.Scale(q.N)
	case "divide":
		if q.N == 0 {
			return timecode.Timecode{}, errors.New("cannot divide by zero")
		}
		v, err = left.Divide(q.N)
	case "addframes":
		err = v.AddFrames(q.N)
	case "subframes":
		err = v.SubFrames(q.N)
	case "next":
		v.Next()
	case "back":
		v.Back()
	default:
		err = fmt.Errorf("unknown op %q", q.Op)
	}
	if err != nil {
		return timecode.Timecode{}, err
	}
	return v, nil
}

func (s *Server) putCutlist0(name string, cl *db.Cutlist) (*db.Cutlist, error) {
	var err error
	defer s.trace(s.ctx, "put-cutlist", &err)()
	cl.Name = name
	if cl.FPS == 0 {
		cl.FPS = s.Config.DefaultFPS
	}
	if err = cl.Validate(); err != nil {
		return nil, err
	}
	if err = cl.Normalize(cl.Rate()); err != nil {
		return nil, err
	}
	if cl.ID == "" {
		cl.ID = uuid.Must(uuid.NewV4()).String()
	}
	cl.CreatedAt = time.Now()
	if err = s.DB.SaveCutlist(cl); err != nil {
		err = fmt.Errorf("%w: %v", ErrStorage, err)
		return nil, err
	}
	return cl, nil
}

func (s *Server) getCutlist0(name string) (*CutlistReport, error) {
	var err error
	defer s.trace(s.ctx, "get-cutlist", &err)()
	cl, err := s.DB.GetCutlist(name)
	if err != nil {
		if !errors.Is(err, db.ErrCutlistNotFound) {
			err = fmt.Errorf("%w: %v", ErrStorage, err)
		}
		return nil, err
	}
	sp, err := cl.Splice()
	if err != nil {
		return nil, err
	}
	start, end := sp.Union().Timecodes(cl.Rate())
	return &CutlistReport{
		Cutlist:        cl,
		DurationMillis: sp.Size().Round(time.Millisecond).Milliseconds(),
		Span:           timecode.Clipping{Start: start, End: end},
	}, nil
}

func (s *Server) delCutlist0(name string) error {
	var err error
	defer s.trace(s.ctx, "del-cutlist", &err)()
	if err = s.DB.DeleteCutlist(name); err != nil {
		if !errors.Is(err, db.ErrCutlistNotFound) {
			err = fmt.Errorf("%w: %v", ErrStorage, err)
		}
		return err
	}
	return nil
}

func (s *Server) listCutlists0() ([]string, error) {
	var err error
	defer s.trace(s.ctx, "list-cutlists", &err)()
	names, err := s.DB.ListCutlists()
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrStorage, err)
		return nil, err
	}
	return names, nil
}

func (s *Server) health0() bool {
	var err error
	defer s.trace(s.ctx, "healthcheck", &err)()
	if err = s.DB.Ping(); err != nil {
		s.logger.WithError(err).Error("storage unreachable")
		return s.fail("storage unreachable", 503, fmt.Errorf("%w: %v", ErrStorage, err))
	}
	return s.writebody(&Ack{Ok: true, Rid: s.rid})
}

func (s *Server) trace(ctx context.Context, name string, err *error) func() {
	x := s.tracer.BeginSubsegment(ctx, name)
	return func() {
		if err == nil {
			x.Close(nil)
		} else {
			x.Close(*err)
		}
	}
}

// fail records server faults with the exception reporter before the
// error response is written.
func (s *Server) fail(msg string, code int, err error) bool {
	if code >= 500 && err != nil {
		s.errReporter.ReportException(err)
	}
	return s.writeerror(msg, code, err)
}

// code maps an error chain onto an http status. Engine rejections are
// client errors; only storage faults surface as server errors.
func code(err error) int {
	switch {
	case errors.Is(err, db.ErrCutlistNotFound):
		return 404
	case errors.Is(err, ErrStorage):
		return 500
	}
	return 400
}
