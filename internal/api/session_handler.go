// internal/api/session_handler.go
package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/remaimber-it/sattutor/internal/domain/question"
	"github.com/remaimber-it/sattutor/internal/stats"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateSessionResponse struct {
	ID string `json:"id" example:"0f8fad5b-d9cb-469f-a165-70867728950e"`
}

type NextQuestionRequest struct {
	Topic      string `json:"topic" example:"Algebra"`
	Difficulty string `json:"difficulty" example:"Easy"`
}

func (r *NextQuestionRequest) Validate() error {
	r.Topic = strings.TrimSpace(r.Topic)
	r.Difficulty = strings.TrimSpace(r.Difficulty)
	return nil
}

// QuestionResponse is a question as shown to the student: the correct
// answer and solution are withheld until an answer is submitted.
type QuestionResponse struct {
	ID         string   `json:"id" example:"1"`
	Topic      string   `json:"topic" example:"Algebra"`
	Difficulty string   `json:"difficulty" example:"Easy"`
	Question   string   `json:"question" example:"Solve 2x = 4"`
	Options    []string `json:"options"`
}

func toQuestionResponse(q question.Question) QuestionResponse {
	return QuestionResponse{
		ID:         q.ID,
		Topic:      q.Topic,
		Difficulty: q.Difficulty,
		Question:   q.Question,
		Options:    q.Options,
	}
}

type EmptyFilterResponse struct {
	Error                 string   `json:"error"`
	AvailableTopics       []string `json:"available_topics"`
	AvailableDifficulties []string `json:"available_difficulties"`
}

type SubmitAnswerRequest struct {
	Answer string `json:"answer" example:"x = 2"`
}

func (r *SubmitAnswerRequest) Validate() error {
	if strings.TrimSpace(r.Answer) == "" {
		return errors.New("answer is required")
	}
	return nil
}

type FeedbackResponse struct {
	QuestionID      string `json:"question_id" example:"1"`
	StudentAnswer   string `json:"student_answer" example:"x = 2"`
	IsCorrect       bool   `json:"is_correct" example:"true"`
	Explanation     string `json:"explanation"`
	ImprovementTips string `json:"improvement_tips,omitempty"`
	Solution        string `json:"solution"`
	CorrectAnswer   string `json:"correct_answer" example:"x = 2"`
}

type SessionResponse struct {
	ID              string            `json:"id"`
	CurrentQuestion *QuestionResponse `json:"current_question,omitempty"`
	LastFeedback    *FeedbackResponse `json:"last_feedback,omitempty"`
	TotalQuestions  int               `json:"total_questions" example:"4"`
	CorrectAnswers  int               `json:"correct_answers" example:"3"`
	Accuracy        float64           `json:"accuracy" example:"75"`
}

type MetricsResponse struct {
	stats.Metrics
	// AccuracyDelta is the change caused by the latest attempt; absent until
	// two attempts exist.
	AccuracyDelta *float64 `json:"accuracy_delta,omitempty" example:"8.33"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// POST /sessions
// @Summary      Start a practice session
// @Tags         Sessions
// @Produce      json
// @Success      201  {object}  CreateSessionResponse
// @Router       /sessions [post]
func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	s := h.sessions.Create()
	respondJSON(w, http.StatusCreated, CreateSessionResponse{ID: s.ID})
}

// GET /sessions/{sessionID}
// @Summary      Get a session
// @Description  Current question, the feedback for it if already answered, and a summary of the attempts.
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  SessionResponse
// @Failure      404        {object}  map[string]string
// @Router       /sessions/{sessionID} [get]
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	m := s.Metrics()
	resp := SessionResponse{
		ID:             s.ID,
		TotalQuestions: m.TotalQuestions,
		CorrectAnswers: m.CorrectAnswers,
		Accuracy:       m.Accuracy,
	}
	if q, ok := s.Current(); ok {
		qr := toQuestionResponse(q)
		resp.CurrentQuestion = &qr
	}
	if fb, ok := s.LastFeedback(); ok {
		fr := toFeedbackResponse(fb.Question, fb.Record.StudentAnswer, fb.Verdict.IsCorrect, fb.Verdict.Explanation, fb.Verdict.ImprovementTips)
		resp.LastFeedback = &fr
	}
	respondJSON(w, http.StatusOK, resp)
}

// DELETE /sessions/{sessionID}
// @Summary      End a session
// @Tags         Sessions
// @Param        sessionID  path  string  true  "Session ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /sessions/{sessionID} [delete]
func (h *Handler) deleteSession(w http.ResponseWriter, r *http.Request) {
	if h.handleSessionError(w, h.sessions.Delete(r.PathValue("sessionID"))) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// POST /sessions/{sessionID}/question
// @Summary      Draw the next question
// @Description  Picks a random question matching the filters. Empty values, "All Topics" and "All Difficulties" disable a filter; matching is case-insensitive.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string               true   "Session ID"
// @Param        body       body      NextQuestionRequest  false  "Filters"
// @Success      200        {object}  QuestionResponse
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  EmptyFilterResponse  "no question matches the filters"
// @Router       /sessions/{sessionID}/question [post]
func (h *Handler) nextQuestion(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var req NextQuestionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	q, err := s.NextQuestion(req.Topic, req.Difficulty)
	if h.handleSessionError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, toQuestionResponse(q))
}

// POST /sessions/{sessionID}/answers
// @Summary      Submit an answer
// @Description  Judges the answer to the current question. When the analysis service is unavailable the verdict falls back to an exact comparison with the correct answer.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string               true  "Session ID"
// @Param        body       body      SubmitAnswerRequest  true  "Answer"
// @Success      200        {object}  FeedbackResponse
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Failure      409        {object}  map[string]string  "no question selected"
// @Router       /sessions/{sessionID}/answers [post]
func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var req SubmitAnswerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	fb, err := s.Submit(r.Context(), req.Answer)
	if h.handleSessionError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, toFeedbackResponse(fb.Question, req.Answer, fb.Verdict.IsCorrect, fb.Verdict.Explanation, fb.Verdict.ImprovementTips))
}

func toFeedbackResponse(q question.Question, answer string, correct bool, explanation, tips string) FeedbackResponse {
	resp := FeedbackResponse{
		QuestionID:    q.ID,
		StudentAnswer: answer,
		IsCorrect:     correct,
		Explanation:   explanation,
		Solution:      q.Solution,
		CorrectAnswer: q.CorrectAnswer,
	}
	if !correct {
		resp.ImprovementTips = tips
	}
	return resp
}

// GET /sessions/{sessionID}/metrics
// @Summary      Session performance
// @Tags         Performance
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  MetricsResponse
// @Failure      404        {object}  map[string]string
// @Router       /sessions/{sessionID}/metrics [get]
func (h *Handler) getMetrics(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	resp := MetricsResponse{Metrics: s.Metrics()}
	if delta, ok := s.AccuracyDelta(); ok {
		resp.AccuracyDelta = &delta
	}
	respondJSON(w, http.StatusOK, resp)
}

// GET /sessions/{sessionID}/charts/progress
// @Summary      Cumulative accuracy after each attempt
// @Tags         Performance
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {array}   stats.ProgressPoint
// @Failure      404        {object}  map[string]string
// @Router       /sessions/{sessionID}/charts/progress [get]
func (h *Handler) getProgressChart(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, nonNil(s.Progress()))
}

// GET /sessions/{sessionID}/charts/topics
// @Summary      Accuracy per topic
// @Description  Pass ?by=difficulty for the per-difficulty breakdown.
// @Tags         Performance
// @Produce      json
// @Param        sessionID  path      string  true   "Session ID"
// @Param        by         query     string  false  "topic (default) or difficulty"
// @Success      200        {array}   stats.GroupRow
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /sessions/{sessionID}/charts/topics [get]
func (h *Handler) getTopicChart(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	switch r.URL.Query().Get("by") {
	case "", "topic":
		respondJSON(w, http.StatusOK, nonNil(s.TopicBreakdown()))
	case "difficulty":
		respondJSON(w, http.StatusOK, nonNil(s.DifficultyBreakdown()))
	default:
		respondError(w, http.StatusBadRequest, "by must be topic or difficulty")
	}
}
