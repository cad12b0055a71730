package chatbot

import (
	"context"
	"strings"
	"testing"
)

func TestRuleOracleMatchesKeywords(t *testing.T) {
	o := NewRuleOracle()
	ctx := context.Background()

	reply, err := o.Respond(ctx, "How does SCORING work here?")
	if err != nil {
		t.Fatalf("respond: %v", err)
	}
	if !strings.Contains(reply, "20 questions") {
		t.Fatalf("reply=%q, want the scoring rule", reply)
	}

	reply, err = o.Respond(ctx, "what categories are there")
	if err != nil {
		t.Fatalf("respond: %v", err)
	}
	if !strings.Contains(reply, "logical reasoning") {
		t.Fatalf("reply=%q, want the category list", reply)
	}
}

func TestRuleOracleFallback(t *testing.T) {
	o := NewRuleOracle()
	reply, err := o.Respond(context.Background(), "zxcvbnm")
	if err != nil {
		t.Fatalf("respond: %v", err)
	}
	if reply != o.fallback {
		t.Fatalf("reply=%q, want fallback", reply)
	}
}

func TestRuleOracleStateless(t *testing.T) {
	o := NewRuleOracle()
	ctx := context.Background()
	first, _ := o.Respond(ctx, "hello")
	for i := 0; i < 3; i++ {
		got, _ := o.Respond(ctx, "hello")
		if got != first {
			t.Fatalf("reply changed across turns: %q vs %q", got, first)
		}
	}
}
