package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func newArticleDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "articles.json"), `{
		"articles": [
			{"id": 1, "title": "CDB", "slug": "o-que-e-cdb", "date": "2025-01-10", "thumbUrl": "/img/cdb.png", "tags": ["renda-fixa"]},
			{"id": 2, "title": "IPO", "slug": "como-funciona-ipo", "date": "2025-02-01", "thumbUrl": "/img/ipo.png"}
		],
		"lastUpdated": "2025-02-01"
	}`)
	writeFile(t, filepath.Join(dir, "content", "o-que-e-cdb.html"), "<p>Certificado de Depósito Bancário</p>")
	writeFile(t, filepath.Join(dir, "content", "como-funciona-ipo.md"), "# IPO\n\nOferta pública inicial.\n")
	return dir
}

func TestFileArticleRepository_Index(t *testing.T) {
	repo := NewFileArticleRepository(newArticleDir(t))

	index, err := repo.Index(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(index.Articles) != 2 || index.LastUpdated != "2025-02-01" {
		t.Errorf("unexpected index %+v", index)
	}
	if index.Articles[0].ThumbURL != "/img/cdb.png" {
		t.Errorf("expected thumbUrl decoded, got %q", index.Articles[0].ThumbURL)
	}
}

func TestFileArticleRepository_MissingIndex(t *testing.T) {
	repo := NewFileArticleRepository(t.TempDir())

	if _, err := repo.Index(context.Background()); err == nil {
		t.Error("expected error for missing index")
	}
}

func TestFileArticleRepository_Content(t *testing.T) {
	repo := NewFileArticleRepository(newArticleDir(t))
	ctx := context.Background()

	html, err := repo.Content(ctx, "o-que-e-cdb")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "<p>Certificado de Depósito Bancário</p>" {
		t.Errorf("unexpected html %q", html)
	}

	rendered, err := repo.Content(ctx, "como-funciona-ipo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(rendered, "<h1>IPO</h1>") || !strings.Contains(rendered, "<p>Oferta pública inicial.</p>") {
		t.Errorf("expected markdown rendered to html, got %q", rendered)
	}
}

func TestFileArticleRepository_ContentNotFound(t *testing.T) {
	repo := NewFileArticleRepository(newArticleDir(t))

	for _, slug := range []string{"nao-existe", "../articles", "", "a/b"} {
		_, err := repo.Content(context.Background(), slug)
		if !errors.Is(err, ErrArticleNotFound) {
			t.Errorf("slug %q: expected ErrArticleNotFound, got %v", slug, err)
		}
	}
}
