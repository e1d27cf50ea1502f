package pipeline

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/ndubovik/keyscan/internal/model"
)

func testConfig(t *testing.T) *model.Config {
	t.Helper()
	cfg := model.DefaultConfig()
	cfg.HTTP.RespectRobots = false
	cfg.Cache.Enabled = false
	cfg.Concurrency.RequestsPerSecond = 1000
	return cfg
}

func TestPipeline_TagText(t *testing.T) {
	p, err := NewPipeline(testConfig(t))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	report, err := p.TagText("test article", "local", "", "Microsoft announced a partnership with Google. OpenAI released new models.")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := []string{"Microsoft", "Google", "OpenAI"}
	if len(report.ProperNouns) != len(want) {
		t.Fatalf("Expected proper nouns %v, got %v", want, report.ProperNouns)
	}
	for i, w := range want {
		if report.ProperNouns[i] != w {
			t.Errorf("Expected proper noun %q at %d, got %q", w, i, report.ProperNouns[i])
		}
	}
	if len(report.Keywords) == 0 {
		t.Error("Expected merged keywords to be populated")
	}
	if report.Subject != "test article" {
		t.Errorf("Unexpected subject: %q", report.Subject)
	}
}

func TestPipeline_TagURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = fmt.Fprint(w, `<html><head><title>Dimensity Chip Announced</title></head><body><p>MediaTek unveiled the Dimensity 9300+ processor in Taiwan.</p></body></html>`)
	}))
	defer server.Close()

	p, err := NewPipeline(testConfig(t))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	report, err := p.TagURL(context.Background(), server.URL+"/news/mediatek-dimensity-launch")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if report.Title != "Dimensity Chip Announced" {
		t.Errorf("Expected title from document, got %q", report.Title)
	}
	if report.Subject != "mediatek dimensity launch" {
		t.Errorf("Expected de-slugified subject, got %q", report.Subject)
	}
	if report.FetchMeta == nil || report.FetchMeta.StatusCode != http.StatusOK {
		t.Error("Expected fetch metadata for URL source")
	}
	if len(report.Keywords) == 0 {
		t.Error("Expected keywords from article body")
	}
}

func TestPipeline_TagURL_CacheHit(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = fmt.Fprint(w, `<html><head><title>Cached Page</title></head><body>Tesla builds cars.</body></html>`)
	}))
	defer server.Close()

	cfg := testConfig(t)
	cfg.Cache.Enabled = true
	cfg.Cache.Dir = t.TempDir()

	p, err := NewPipeline(cfg)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	url := server.URL + "/article"
	if _, err := p.TagURL(context.Background(), url); err != nil {
		t.Fatalf("First fetch failed: %v", err)
	}
	if _, err := p.TagURL(context.Background(), url); err != nil {
		t.Fatalf("Second fetch failed: %v", err)
	}

	if hits.Load() != 1 {
		t.Errorf("Expected 1 server hit with warm cache, got %d", hits.Load())
	}
}

func TestPipeline_TagFile_HTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apple-event.html")
	content := `<html><head><title>Apple Event</title></head><body><p>Apple introduced the Vision Pro headset.</p></body></html>`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	p, err := NewPipeline(testConfig(t))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	report, err := p.TagFile(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if report.Subject != "apple event" {
		t.Errorf("Expected subject from file name, got %q", report.Subject)
	}
	if report.Title != "Apple Event" {
		t.Errorf("Expected title from document, got %q", report.Title)
	}
}

func TestPipeline_TagFile_PlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("Samsung revealed the Galaxy Fold today."), 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	p, err := NewPipeline(testConfig(t))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	report, err := p.TagFile(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if report.Title != "" {
		t.Errorf("Expected no title for plain text, got %q", report.Title)
	}
	if len(report.Keywords) == 0 {
		t.Error("Expected keywords from plain text")
	}
}

func TestPipeline_MissingFile(t *testing.T) {
	p, err := NewPipeline(testConfig(t))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := p.TagFile(filepath.Join(t.TempDir(), "absent.html")); err == nil {
		t.Error("Expected error for missing file")
	}
}
