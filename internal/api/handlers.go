package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/pms-safya/abacus/internal/competition"
	"github.com/pms-safya/abacus/internal/narration"
	"github.com/pms-safya/abacus/internal/problemgen"
	"github.com/pms-safya/abacus/internal/tips"
)

const maxBodyBytes = 1 << 20

type quizResponse struct {
	Settings  competition.Settings  `json:"settings"`
	Questions []problemgen.Question `json:"questions"`
	Narration []narration.Cue       `json:"narration,omitempty"`
}

type markRequest struct {
	Questions []problemgen.Question `json:"questions"`
	Answers   map[string]string     `json:"answers"`
}

type markResponse struct {
	competition.Result
	Percent float64 `json:"percent"`
}

type tipResponse struct {
	Tip string `json:"tip"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handlePostQuiz generates a quiz from a JSON settings body. Fields the
// body leaves out keep the server defaults.
func (s *Server) handlePostQuiz(w http.ResponseWriter, r *http.Request) {
	settings := s.quiz
	if err := decodeBody(w, r, &settings); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	seed, err := querySeed(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	s.serveQuiz(w, settings, seed)
}

// handleGetQuiz generates a quiz from query parameters named like the
// JSON settings fields, with count for questionCount.
func (s *Server) handleGetQuiz(w http.ResponseWriter, r *http.Request) {
	settings, seed, err := s.settingsFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	s.serveQuiz(w, settings, seed)
}

func (s *Server) serveQuiz(w http.ResponseWriter, settings competition.Settings, seed *uint64) {
	if err := settings.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_settings", err.Error())
		return
	}

	qs := s.generator(seed).QuizSet(settings.GenerationConfig())
	resp := quizResponse{Settings: settings, Questions: qs}
	if settings.EnableAudio {
		resp.Narration = narration.Script(qs)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePaper(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	plan, err := competition.ParsePlan(body, ".json")
	if err != nil {
		var verr *competition.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Error:   "invalid_plan",
				Message: competition.ErrInvalidPlan.Error(),
				Issues:  verr.Issues,
			})
			return
		}
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	gen := competition.NewGenerator(plan, problemgen.WithObserver(s.metrics))
	paper := competition.Build(gen, plan)
	s.logger.Debug("paper built",
		zap.String("title", paper.Title),
		zap.Int("rounds", len(paper.Rounds)),
		zap.Int("questions", len(paper.Questions())),
	)
	writeJSON(w, http.StatusOK, paper)
}

func (s *Server) handleMark(w http.ResponseWriter, r *http.Request) {
	var req markRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	if len(req.Questions) == 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "questions are required")
		return
	}

	res := competition.Mark(req.Questions, req.Answers)
	writeJSON(w, http.StatusOK, markResponse{Result: res, Percent: res.Percent()})
}

// handleTip always answers 200; provider failures yield the fallback tip.
func (s *Server) handleTip(w http.ResponseWriter, r *http.Request) {
	tip, err := s.tips.Tip(r.Context(), r.URL.Query().Get("topic"))
	switch {
	case errors.Is(err, tips.ErrNoProvider):
	case err != nil:
		s.logger.Warn("tip failed, using fallback", zap.Error(err))
	}
	writeJSON(w, http.StatusOK, tipResponse{Tip: tip})
}

// generator builds a per-request generator reporting to the server's
// metrics. A seed makes both draws and IDs reproducible.
func (s *Server) generator(seed *uint64) *problemgen.Generator {
	opts := []problemgen.Option{problemgen.WithObserver(s.metrics)}
	if seed == nil {
		return problemgen.New(nil, opts...)
	}
	opts = append(opts, problemgen.WithIDs(problemgen.SeededIDs(*seed)))
	return problemgen.New(problemgen.NewSource(*seed), opts...)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	return nil
}

func (s *Server) settingsFromQuery(q url.Values) (competition.Settings, *uint64, error) {
	settings := s.quiz

	if v := q.Get("category"); v != "" {
		settings.Category = problemgen.Category(v)
	}
	if v := q.Get("rule"); v != "" {
		settings.Rule = problemgen.Rule(v)
	}
	if v := q.Get("multLevel"); v != "" {
		settings.MultLevel = problemgen.MultLevel(v)
	}
	if v := q.Get("digitType"); v != "" {
		settings.DigitType = problemgen.DigitType(v)
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"count", &settings.QuestionCount},
		{"rowCount", &settings.RowCount},
	}
	for _, p := range ints {
		v := q.Get(p.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return settings, nil, fmt.Errorf("%s: %q is not an integer", p.name, v)
		}
		*p.dst = n
	}

	if v := q.Get("timePerQuestion"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return settings, nil, fmt.Errorf("timePerQuestion: %q is not a number", v)
		}
		settings.TimePerQuestion = f
	}
	if v := q.Get("audio"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return settings, nil, fmt.Errorf("audio: %q is not a boolean", v)
		}
		settings.EnableAudio = b
	}

	seed, err := querySeed(q)
	return settings, seed, err
}

func querySeed(q url.Values) (*uint64, error) {
	v := q.Get("seed")
	if v == "" {
		return nil, nil
	}
	seed, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("seed: %q is not an unsigned integer", v)
	}
	return &seed, nil
}
