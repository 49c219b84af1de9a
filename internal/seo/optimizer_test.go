package seo

import (
	"context"
	"errors"
	"strings"
	"testing"

	"herald/pkg/llm"
	"herald/pkg/logging"
)

type stubProvider struct {
	response []byte
	err      error
	calls    int
	lastReq  llm.Request
}

func (s *stubProvider) CompleteJSON(ctx context.Context, req llm.Request) ([]byte, error) {
	s.calls++
	s.lastReq = req
	return s.response, s.err
}

func TestOptimizeRequiresKeyword(t *testing.T) {
	stub := &stubProvider{}
	opt := NewOptimizer(stub, logging.NewLogger())

	_, err := opt.Optimize(context.Background(), Request{NewsletterNiche: "tech"})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if stub.calls != 0 {
		t.Errorf("expected no outbound calls, got %d", stub.calls)
	}
}

func TestOptimizeWithoutProvider(t *testing.T) {
	opt := NewOptimizer(nil, logging.NewLogger())
	if opt.Available() {
		t.Error("optimizer without provider must not report available")
	}
	_, err := opt.Optimize(context.Background(), Request{TargetKeyword: "tech newsletter"})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestOptimizePassesThroughResponse(t *testing.T) {
	stub := &stubProvider{response: []byte(`{"seoScore": 82, "improvements": ["add keyword to H1"]}`)}
	opt := NewOptimizer(stub, logging.NewLogger())

	out, err := opt.Optimize(context.Background(), Request{
		TargetKeyword:   "tech newsletter",
		NewsletterNiche: "tech",
		CurrentContent:  "Subscribe to our newsletter.",
	})
	if err != nil {
		t.Fatalf("Optimize: %v", err)
	}
	if string(out) != `{"seoScore": 82, "improvements": ["add keyword to H1"]}` {
		t.Errorf("expected raw passthrough, got %s", out)
	}

	if !strings.Contains(stub.lastReq.User, "Target Keyword: tech newsletter") {
		t.Errorf("prompt missing keyword:\n%s", stub.lastReq.User)
	}
	if !strings.Contains(stub.lastReq.User, "Optimize a landing_page") {
		t.Errorf("expected page type fallback:\n%s", stub.lastReq.User)
	}
	if !strings.Contains(stub.lastReq.User, "Current Content:") {
		t.Errorf("expected current content section:\n%s", stub.lastReq.User)
	}
}

func TestOptimizeMalformedResponse(t *testing.T) {
	stub := &stubProvider{response: []byte("oops")}
	opt := NewOptimizer(stub, logging.NewLogger())

	_, err := opt.Optimize(context.Background(), Request{TargetKeyword: "x"})
	if !errors.Is(err, ErrOptimization) {
		t.Fatalf("expected ErrOptimization, got %v", err)
	}
}
