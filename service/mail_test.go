package service

import (
	"Tripper/config"
	"strings"
	"testing"
)

func TestBuildOTPMail(t *testing.T) {
	conf := &config.Config{
		App: &config.App{Name: "Tripper", FrontendHost: "https://app.example.com"},
	}

	subject, body := buildOTPMail(conf, "483920")
	if !strings.Contains(subject, "Tripper") {
		t.Errorf("subject = %q", subject)
	}
	if !strings.Contains(body, "483920") {
		t.Error("body missing the code")
	}
	if !strings.Contains(body, "https://app.example.com") {
		t.Error("body missing the frontend link")
	}
}
