package domain

// ArticleMetadata is the index entry of an educational article.
type ArticleMetadata struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Date        string   `json:"date"`
	ThumbURL    string   `json:"thumbUrl"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	ReadTime    int      `json:"readTime,omitempty"` // minutos
}

// Article is an index entry plus its HTML body.
type Article struct {
	ArticleMetadata
	Content string `json:"content"`
}

type ArticlesIndex struct {
	Articles    []ArticleMetadata `json:"articles"`
	LastUpdated string            `json:"lastUpdated"`
}
