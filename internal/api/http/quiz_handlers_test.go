package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/quizforge/aptitude-app/internal/auth"
	"github.com/quizforge/aptitude-app/internal/question"
	"github.com/quizforge/aptitude-app/internal/quiz"
)

func testManager(t *testing.T, n int) *quiz.Manager {
	t.Helper()
	store := question.NewInMemoryStore()
	var qs []question.Question
	for i := 0; i < n; i++ {
		qs = append(qs, question.Question{
			Category:  question.CategoryGeneral,
			Text:      "pick alpha",
			Options:   [4]string{"alpha", "beta", "gamma", "delta"},
			AnswerKey: "A",
		})
	}
	if _, err := store.Insert(context.Background(), qs); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return quiz.NewManager(store, 20)
}

func doJSON(t *testing.T, h http.HandlerFunc, method, target, user, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req = req.WithContext(auth.WithSubject(req.Context(), user))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decodeView(t *testing.T, rec *httptest.ResponseRecorder) questionView {
	t.Helper()
	var v questionView
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode view: %v (%s)", err, rec.Body.String())
	}
	return v
}

func TestQuizFlowOverHTTP(t *testing.T) {
	m := testManager(t, 3)

	rec := doJSON(t, StartQuizHandler(m), "POST", "/quiz/start", "asha", `{"category":"general"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("start: status=%d body=%s", rec.Code, rec.Body.String())
	}
	v := decodeView(t, rec)
	if v.Total != 3 || v.Index != 0 || v.Submitted {
		t.Fatalf("start view=%+v", v)
	}
	if v.Question == "" || len(v.Options) != 4 {
		t.Fatalf("start view missing question payload: %+v", v)
	}

	// empty selection: validation failure, 400, nothing recorded
	rec = doJSON(t, SubmitAnswerHandler(m), "POST", "/quiz/answer", "asha", `{"option":""}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty submit: status=%d", rec.Code)
	}

	rec = doJSON(t, SubmitAnswerHandler(m), "POST", "/quiz/answer", "asha", `{"option":"alpha"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("submit: status=%d body=%s", rec.Code, rec.Body.String())
	}
	var fb quiz.Feedback
	if err := json.Unmarshal(rec.Body.Bytes(), &fb); err != nil || !fb.Correct {
		t.Fatalf("feedback=%+v err=%v", fb, err)
	}

	// resubmission is a conflict and leaves the first answer in place
	rec = doJSON(t, SubmitAnswerHandler(m), "POST", "/quiz/answer", "asha", `{"option":"beta"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("resubmit: status=%d", rec.Code)
	}
	rec = doJSON(t, CurrentQuestionHandler(m), "GET", "/quiz/current", "asha", "")
	v = decodeView(t, rec)
	if !v.Submitted || v.Answer != "alpha" || v.Feedback == nil {
		t.Fatalf("revisit view=%+v, want read-only recorded answer", v)
	}

	// walk to the end; finishing early is a conflict
	rec = doJSON(t, FinishQuizHandler(m), "POST", "/quiz/finish", "asha", "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("early finish: status=%d", rec.Code)
	}
	for i := 0; i < 2; i++ {
		rec = doJSON(t, NavigateHandler(m), "POST", "/quiz/navigate", "asha", `{"direction":"next"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("navigate: status=%d", rec.Code)
		}
	}
	v = decodeView(t, rec)
	if v.Index != 2 {
		t.Fatalf("index=%d, want last question", v.Index)
	}

	rec = doJSON(t, FinishQuizHandler(m), "POST", "/quiz/finish", "asha", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("finish: status=%d body=%s", rec.Code, rec.Body.String())
	}
	var res struct {
		Correct int    `json:"correct"`
		Total   int    `json:"total"`
		Display string `json:"display"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if res.Correct != 1 || res.Total != 3 || res.Display != "1/3" {
		t.Fatalf("result=%+v, want 1/3", res)
	}

	rec = doJSON(t, RestartQuizHandler(m), "POST", "/quiz/restart", "asha", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("restart: status=%d", rec.Code)
	}
}

func TestEmptyCategoryQuizFlow(t *testing.T) {
	// valid category whose pool has nothing in it yet
	m := quiz.NewManager(question.NewInMemoryStore(), 20)

	rec := doJSON(t, StartQuizHandler(m), "POST", "/quiz/start", "asha", `{"category":"cse"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("start: status=%d body=%s", rec.Code, rec.Body.String())
	}
	v := decodeView(t, rec)
	if v.Total != 0 || v.Submitted || v.Question != "" {
		t.Fatalf("empty-session view=%+v", v)
	}

	rec = doJSON(t, SubmitAnswerHandler(m), "POST", "/quiz/answer", "asha", `{"option":"alpha"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("submit on empty session: status=%d body=%s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, FinishQuizHandler(m), "POST", "/quiz/finish", "asha", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("finish: status=%d body=%s", rec.Code, rec.Body.String())
	}
	var res struct {
		Total   int    `json:"total"`
		Display string `json:"display"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if res.Total != 0 || res.Display == "0/0" {
		t.Fatalf("result=%+v, want the distinct empty-quiz display", res)
	}
}

func TestStartUnknownCategory(t *testing.T) {
	m := testManager(t, 1)
	rec := doJSON(t, StartQuizHandler(m), "POST", "/quiz/start", "asha", `{"category":"nonexistent"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil || body["error"] == "" {
		t.Fatalf("body=%s, want structured error", rec.Body.String())
	}
}

func TestCurrentWithoutSession(t *testing.T) {
	m := testManager(t, 1)
	rec := doJSON(t, CurrentQuestionHandler(m), "GET", "/quiz/current", "ghost", "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("status=%d, want 409", rec.Code)
	}
}

func TestNavigateRejectsBadDirection(t *testing.T) {
	m := testManager(t, 1)
	doJSON(t, StartQuizHandler(m), "POST", "/quiz/start", "asha", `{"category":"general"}`)
	rec := doJSON(t, NavigateHandler(m), "POST", "/quiz/navigate", "asha", `{"direction":"sideways"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", rec.Code)
	}
}

func TestViewNeverLeaksAnswerKey(t *testing.T) {
	m := testManager(t, 1)
	rec := doJSON(t, StartQuizHandler(m), "POST", "/quiz/start", "asha", `{"category":"general"}`)
	if strings.Contains(rec.Body.String(), "answer_key") {
		t.Fatalf("answer key leaked: %s", rec.Body.String())
	}
}
