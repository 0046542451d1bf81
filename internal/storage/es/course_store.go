package es

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/clo-analytics/internal/apperr"
	"github.com/DjordjeVuckovic/clo-analytics/internal/course"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/refresh"
)

// courseDocument is the indexed form of a course config. The original document is kept
// verbatim in a non-indexed field so YAML configs and JSON key order survive.
type courseDocument struct {
	Code     string `json:"code"`
	Format   string `json:"format"`
	Document string `json:"document"`
}

// CourseStore keeps one Elasticsearch document per course, with the course code as _id.
type CourseStore struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewCourseStore(ctx context.Context, config ClientConfig) (*CourseStore, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	s := &CourseStore{client: client, indexName: config.IndexName}
	if err := s.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}
	return s, nil
}

func (s *CourseStore) EnsureIndex(ctx context.Context) error {
	exists, err := s.client.Indices.Exists(s.indexName).Do(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	notIndexed := false
	documentField := types.NewTextProperty()
	documentField.Index = &notIndexed

	_, err = s.client.Indices.Create(s.indexName).
		Mappings(&types.TypeMapping{
			Properties: map[string]types.Property{
				"code":     types.NewKeywordProperty(),
				"format":   types.NewKeywordProperty(),
				"document": documentField,
			},
		}).
		Do(ctx)
	if err != nil {
		return err
	}
	slog.Info("Created course config index", "index", s.indexName)
	return nil
}

func (s *CourseStore) Fetch(ctx context.Context, code string) (*course.Document, error) {
	res, err := s.client.Get(s.indexName, code).Do(ctx)
	if err != nil {
		var esErr *types.ElasticsearchError
		if errors.As(err, &esErr) && esErr.Status == 404 {
			return nil, apperr.NewConfigNotFound(code)
		}
		return nil, fmt.Errorf("failed to get course config %s: %w", code, err)
	}
	if !res.Found {
		return nil, apperr.NewConfigNotFound(code)
	}

	var doc courseDocument
	if err := json.Unmarshal(res.Source_, &doc); err != nil {
		return nil, apperr.NewConfigMalformedWrap(code, "unreadable stored document", err)
	}

	return &course.Document{Format: course.Format(doc.Format), Data: []byte(doc.Document)}, nil
}

func (s *CourseStore) Save(ctx context.Context, code string, doc course.Document) error {
	res, err := s.client.Index(s.indexName).
		Id(code).
		Document(courseDocument{Code: code, Format: string(doc.Format), Document: string(doc.Data)}).
		Refresh(refresh.True).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to index course config %s: %w", code, err)
	}
	slog.Info("Course config indexed", "course", code, "index", s.indexName, "result", res.Result)
	return nil
}

func (s *CourseStore) Ping(ctx context.Context) error {
	ok, err := s.client.Ping().Do(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("elasticsearch ping failed")
	}
	return nil
}
