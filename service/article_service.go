package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"investsim/domain"
	"investsim/repository"
)

// ArticleService serves the educational articles. The index is read on every
// call so edits to the data directory show up without a restart.
type ArticleService struct {
	repo   repository.ArticleRepository
	logger *slog.Logger
}

func NewArticleService(repo repository.ArticleRepository, logger *slog.Logger) *ArticleService {
	return &ArticleService{repo: repo, logger: logger.With("module", "articles")}
}

// List returns the metadata of every article in index order.
func (s *ArticleService) List(ctx context.Context) ([]domain.ArticleMetadata, error) {
	index, err := s.repo.Index(ctx)
	if err != nil {
		s.logger.Error("failed to load article index", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrArticlesUnavailable, err)
	}
	if index.Articles == nil {
		return []domain.ArticleMetadata{}, nil
	}
	return index.Articles, nil
}

// BySlug returns the article with its HTML content. A missing read time is
// estimated from the text of the content.
func (s *ArticleService) BySlug(ctx context.Context, slug string) (domain.Article, error) {
	articles, err := s.List(ctx)
	if err != nil {
		return domain.Article{}, err
	}

	i := slices.IndexFunc(articles, func(a domain.ArticleMetadata) bool { return a.Slug == slug })
	if i < 0 {
		return domain.Article{}, fmt.Errorf("slug %q: %w", slug, ErrArticleNotFound)
	}

	content, err := s.repo.Content(ctx, slug)
	if err != nil {
		return domain.Article{}, err
	}

	article := domain.Article{ArticleMetadata: articles[i], Content: content}
	if article.ReadTime == 0 {
		minutes, err := readingTime(content)
		if err != nil {
			s.logger.Warn("could not estimate read time", "slug", slug, "error", err)
		}
		article.ReadTime = minutes
	}
	return article, nil
}

// ByTags returns the articles carrying at least one of tags.
func (s *ArticleService) ByTags(ctx context.Context, tags []string) ([]domain.ArticleMetadata, error) {
	articles, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := []domain.ArticleMetadata{}
	for _, a := range articles {
		if slices.ContainsFunc(a.Tags, func(tag string) bool { return slices.Contains(tags, tag) }) {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

// Recent returns at most limit articles, newest first. Articles whose date
// cannot be parsed sort last.
func (s *ArticleService) Recent(ctx context.Context, limit int) ([]domain.ArticleMetadata, error) {
	if limit < 1 {
		return nil, fmt.Errorf("limit %d: %w", limit, ErrInvalidArticleLimit)
	}

	articles, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	sorted := slices.Clone(articles)
	slices.SortStableFunc(sorted, func(a, b domain.ArticleMetadata) int {
		return articleTime(b.Date).Compare(articleTime(a.Date))
	})
	return sorted[:min(limit, len(sorted))], nil
}

// SplitTags parses a comma separated tag list, dropping blanks.
func SplitTags(raw string) []string {
	tags := []string{}
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func articleTime(date string) time.Time {
	for _, layout := range []string{time.RFC3339, dateLayout} {
		if t, err := time.Parse(layout, date); err == nil {
			return t
		}
	}
	return time.Time{}
}

// readingTime estimates minutes of reading at wordsPerMinute, at least one.
func readingTime(html string) (int, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return 0, fmt.Errorf("parse article html: %w", err)
	}
	// Count per text node: Text() joins adjacent elements without a space.
	words := 0
	body := doc.Find("body")
	body.Find("*").AddSelection(body).Contents().Each(func(_ int, node *goquery.Selection) {
		if goquery.NodeName(node) == "#text" {
			words += len(strings.Fields(node.Text()))
		}
	})
	return max(1, (words+wordsPerMinute-1)/wordsPerMinute), nil
}
