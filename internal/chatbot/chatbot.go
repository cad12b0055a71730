// Package chatbot provides the assistant behind the app's chat view.
// Every exchange is one request and one response; the oracle keeps no memory
// of prior turns.
package chatbot

import (
	"context"
	"strings"
)

// Oracle answers one user query. Implementations must be safe for concurrent
// use and stateless across calls.
type Oracle interface {
	Respond(ctx context.Context, query string) (string, error)
}

// RuleOracle is the offline responder: first keyword rule that matches wins.
type RuleOracle struct {
	rules    []rule
	fallback string
}

type rule struct {
	keywords []string
	reply    string
}

// NewRuleOracle installs the built-in study-assistant rules.
func NewRuleOracle() *RuleOracle {
	return &RuleOracle{
		rules: []rule{
			{[]string{"hello", "hi", "hey"}, "Hello! Ask me about quizzes, categories, or how scoring works."},
			{[]string{"category", "categories"}, "Quizzes come in three categories: general aptitude, CSE, and logical reasoning."},
			{[]string{"score", "scoring", "marks"}, "Each quiz has up to 20 questions; every correct answer is one point and unanswered questions count as incorrect."},
			{[]string{"start", "begin", "quiz"}, "Go to the Quiz view, pick a category, and hit Start. You can move back and forth between questions before finishing."},
			{[]string{"answer", "submit"}, "Select an option and submit. Once submitted, an answer is locked in for that question."},
			{[]string{"restart", "retry", "again"}, "After finishing a quiz you can restart and take a fresh one in any category."},
			{[]string{"bye", "goodbye", "thanks"}, "Good luck with your preparation!"},
		},
		fallback: "I can help with questions about taking quizzes, categories, and scoring. Try asking about one of those.",
	}
}

func (o *RuleOracle) Respond(_ context.Context, query string) (string, error) {
	q := strings.ToLower(query)
	for _, r := range o.rules {
		for _, kw := range r.keywords {
			if strings.Contains(q, kw) {
				return r.reply, nil
			}
		}
	}
	return o.fallback, nil
}
