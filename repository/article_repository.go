package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/yuin/goldmark"

	"investsim/domain"
)

var ErrArticleNotFound = errors.New("article not found")

// ArticleRepository gives access to the article index and article bodies.
type ArticleRepository interface {
	Index(ctx context.Context) (domain.ArticlesIndex, error)
	Content(ctx context.Context, slug string) (string, error)
}

var slugPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// FileArticleRepository reads articles from a directory laid out as
//
//	<dir>/articles.json
//	<dir>/content/<slug>.html  (or <slug>.md, rendered to HTML)
type FileArticleRepository struct {
	dir      string
	markdown goldmark.Markdown
}

func NewFileArticleRepository(dir string) *FileArticleRepository {
	return &FileArticleRepository{
		dir:      dir,
		markdown: goldmark.New(),
	}
}

func (r *FileArticleRepository) Index(_ context.Context) (domain.ArticlesIndex, error) {
	var index domain.ArticlesIndex

	raw, err := os.ReadFile(filepath.Join(r.dir, "articles.json"))
	if err != nil {
		return index, fmt.Errorf("read article index: %w", err)
	}
	if err := json.Unmarshal(raw, &index); err != nil {
		return index, fmt.Errorf("parse article index: %w", err)
	}
	return index, nil
}

// Content returns the HTML body of slug. A .html file wins over a .md file.
func (r *FileArticleRepository) Content(_ context.Context, slug string) (string, error) {
	if !slugPattern.MatchString(slug) {
		return "", fmt.Errorf("slug %q: %w", slug, ErrArticleNotFound)
	}
	base := filepath.Join(r.dir, "content", slug)

	html, err := os.ReadFile(base + ".html")
	if err == nil {
		return string(html), nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("read article %s: %w", slug, err)
	}

	md, err := os.ReadFile(base + ".md")
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("slug %q: %w", slug, ErrArticleNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("read article %s: %w", slug, err)
	}

	var buf bytes.Buffer
	if err := r.markdown.Convert(md, &buf); err != nil {
		return "", fmt.Errorf("render article %s: %w", slug, err)
	}
	return buf.String(), nil
}
