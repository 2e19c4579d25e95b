package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tjfontaine/lex-portfolio-advisor/internal/domain"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newCommand()
	cmd.Reader = strings.NewReader(stdin)
	cmd.Writer = &out
	cmd.ErrWriter = &errOut
	err := cmd.Run(context.Background(), append([]string{"lexctl"}, args...))
	return out.String(), err
}

func TestHandleFromStdin(t *testing.T) {
	event := `{"invocationSource":"FulfillmentCodeHook","currentIntent":{"name":"RecommendPortfolio","slots":{"firstName":"Ana","riskLevel":"Low"}},"sessionAttributes":{}}`

	out, err := run(t, event, "handle")
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if !strings.Contains(out, `"type":"Close"`) || !strings.Contains(out, "60% bonds (AGG), 40% equities (SPY)") {
		t.Errorf("output = %s", out)
	}
}

func TestHandleFromFilePretty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "event.json")
	event := `{"invocationSource":"DialogCodeHook","currentIntent":{"name":"RecommendPortfolio","slots":{"age":"abc","investmentAmount":"6000"}}}`
	if err := os.WriteFile(path, []byte(event), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "", "handle", "--file", path, "--pretty")
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if !strings.Contains(out, `"type": "Delegate"`) {
		t.Errorf("lenient mode should delegate, output = %s", out)
	}

	out, err = run(t, "", "handle", "--file", path, "--strict")
	if err != nil {
		t.Fatalf("handle --strict: %v", err)
	}
	if !strings.Contains(out, `"slotToElicit":"age"`) {
		t.Errorf("strict mode should re-elicit age, output = %s", out)
	}
}

func TestHandleUnsupportedIntent(t *testing.T) {
	out, err := run(t, `{"currentIntent":{"name":"OrderPizza"}}`, "handle")
	if !errors.Is(err, domain.ErrUnsupportedIntent) {
		t.Fatalf("err = %v, want ErrUnsupportedIntent", err)
	}
	if !strings.Contains(out, `"code":"unsupported_intent"`) {
		t.Errorf("output = %s", out)
	}
}

func TestHandleMissingFile(t *testing.T) {
	if _, err := run(t, "", "handle", "--file", filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestRecommend(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"Very", "High"}, "0% bonds (AGG), 100% equities (SPY)"},
		{[]string{"Medium"}, "40% bonds (AGG), 60% equities (SPY)"},
		{[]string{"Unknown"}, "100% bonds (AGG), 0% equities (SPY)"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := run(t, "", append([]string{"recommend"}, tt.args...)...)
			if err != nil {
				t.Fatalf("recommend: %v", err)
			}
			if strings.TrimSpace(out) != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestRecommendRequiresLevel(t *testing.T) {
	if _, err := run(t, "", "recommend"); err == nil {
		t.Fatal("expected error without a risk level")
	}
}
