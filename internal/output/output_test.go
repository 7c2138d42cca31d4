package output

import (
	"bytes"
	"context"
	"os"
	"testing"
)

func TestWithPrinter_FromContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		ctx := WithPrinter(context.Background(), &buf)
		p := FromContext(ctx)
		if p == nil {
			t.Fatal("FromContext returned nil")
		}
		if p.Writer() != &buf {
			t.Error("Writer() should return the buffer passed to WithPrinter")
		}
	})

	t.Run("default to stdout when not set", func(t *testing.T) {
		t.Parallel()
		p := FromContext(context.Background())
		if p == nil {
			t.Fatal("FromContext returned nil on empty context")
		}
		if p.Writer() != os.Stdout {
			t.Error("Writer() should default to os.Stdout")
		}
	})
}

func TestPrinter_Print(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := FromContext(WithPrinter(context.Background(), &buf))

	p.Print("cd", " ", "A/B")
	if got := buf.String(); got != "cd A/B" {
		t.Errorf("Print() wrote %q, want %q", got, "cd A/B")
	}
}

func TestPrinter_Printf(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := FromContext(WithPrinter(context.Background(), &buf))

	p.Printf("hooks: %d", 13)
	if got := buf.String(); got != "hooks: 13" {
		t.Errorf("Printf() wrote %q, want %q", got, "hooks: 13")
	}
}

func TestPrinter_Println(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := FromContext(WithPrinter(context.Background(), &buf))

	p.Println("pre-commit")
	p.Println("pre-push")
	want := "pre-commit\npre-push\n"
	if got := buf.String(); got != want {
		t.Errorf("Println() wrote %q, want %q", got, want)
	}
}

func TestPrinter_Writer(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := WithPrinter(context.Background(), &buf)
	p := FromContext(ctx)

	w := p.Writer()
	if w != &buf {
		t.Error("Writer() should return the underlying writer")
	}

	// Write directly through the writer
	if _, err := w.Write([]byte("#git-vcs")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if got := buf.String(); got != "#git-vcs" {
		t.Errorf("direct Write produced %q, want %q", got, "#git-vcs")
	}
}

func TestPrinter_JSON(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	p := New(&buf)
	if err := p.JSON(map[string]string{"hook": "pre-commit"}); err != nil {
		t.Fatalf("JSON() error = %v", err)
	}
	want := "{\n  \"hook\": \"pre-commit\"\n}\n"
	if got := buf.String(); got != want {
		t.Errorf("JSON() = %q, want %q", got, want)
	}
}
