package markdown

import (
	"strings"
	"testing"
)

type panicRenderer struct{}

func (panicRenderer) Render(string) (string, error) {
	panic("boom")
}

func TestSafeRender_RecoversFromRendererPanic(t *testing.T) {
	const renderWidth = 20

	rendererMu.Lock()
	prev, hadPrev := renderers[renderWidth]
	renderers[renderWidth] = panicRenderer{}
	rendererMu.Unlock()

	defer func() {
		rendererMu.Lock()
		if hadPrev {
			renderers[renderWidth] = prev
		} else {
			delete(renderers, renderWidth)
		}
		rendererMu.Unlock()
	}()

	out := SafeRender(renderWidth, 0, []byte("hello\n"))
	if string(out) != "hello" {
		t.Fatalf("expected fallback to original markdown, got %q", string(out))
	}
}

func TestRenderEmptyInput(t *testing.T) {
	if out := Render(80, 0, nil); out != nil {
		t.Errorf("Render(nil) = %q, want nil", out)
	}
	if out := Render(80, 0, []byte("   \n\n")); out != nil {
		t.Errorf("Render(blank) = %q, want nil", out)
	}
}

func TestRenderIndents(t *testing.T) {
	out := Render(40, 2, []byte("plain text"))
	if len(out) == 0 {
		t.Fatal("expected output")
	}
	for _, line := range strings.Split(string(out), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !strings.HasPrefix(line, "  ") {
			t.Errorf("line %q not indented", line)
		}
	}
}
