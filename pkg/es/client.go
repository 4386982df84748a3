// Package es indexes and searches documents in Elasticsearch.
package es

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"bizops-dashboard/internal/config"
	"bizops-dashboard/internal/model"
	"bizops-dashboard/pkg/log"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

const indexMapping = `{
	"mappings": {
		"properties": {
			"document_id": { "type": "long" },
			"brand": { "type": "keyword" },
			"title": { "type": "text" },
			"summary": { "type": "text" },
			"content": { "type": "text" },
			"attachment_text": { "type": "text" },
			"attachment_name": { "type": "keyword" },
			"tags": { "type": "keyword" },
			"status": { "type": "keyword" }
		}
	}
}`

// Client wraps an Elasticsearch client bound to one index.
type Client struct {
	es    *elasticsearch.Client
	index string
}

// New creates the client and the index when it does not exist yet.
func New(esCfg config.ElasticsearchConfig) (*Client, error) {
	var addresses []string
	for _, a := range strings.Split(esCfg.Addresses, ",") {
		if a = strings.TrimSpace(a); a != "" {
			addresses = append(addresses, a)
		}
	}
	cfg := elasticsearch.Config{
		Addresses: addresses,
		Username:  esCfg.Username,
		Password:  esCfg.Password,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		},
	}
	es, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	c := &Client{es: es, index: esCfg.IndexName}
	if err := c.createIndexIfNotExists(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Client) createIndexIfNotExists() error {
	res, err := c.es.Indices.Exists([]string{c.index})
	if err != nil {
		return fmt.Errorf("check index %s: %w", c.index, err)
	}
	res.Body.Close()
	if res.StatusCode == http.StatusOK {
		log.Infof("index '%s' already exists", c.index)
		return nil
	}
	if res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("unexpected status %d checking index %s", res.StatusCode, c.index)
	}

	res, err = c.es.Indices.Create(
		c.index,
		c.es.Indices.Create.WithBody(strings.NewReader(indexMapping)),
	)
	if err != nil {
		return fmt.Errorf("create index %s: %w", c.index, err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("create index %s: %s", c.index, res.String())
	}
	log.Infof("index '%s' created", c.index)
	return nil
}

// IndexDocument upserts doc under its document id.
func (c *Client) IndexDocument(ctx context.Context, doc model.EsDocument) error {
	docBytes, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	req := esapi.IndexRequest{
		Index:      c.index,
		DocumentID: strconv.FormatUint(uint64(doc.DocumentID), 10),
		Body:       bytes.NewReader(docBytes),
		Refresh:    "true",
	}
	res, err := req.Do(ctx, c.es)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		log.Errorf("failed to index document %d: %s", doc.DocumentID, res.String())
		return errors.New("failed to index document")
	}
	return nil
}

// DeleteDocument removes a document; a missing document is not an error.
func (c *Client) DeleteDocument(ctx context.Context, id uint) error {
	req := esapi.DeleteRequest{
		Index:      c.index,
		DocumentID: strconv.FormatUint(uint64(id), 10),
	}
	res, err := req.Do(ctx, c.es)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("delete document %d: %s", id, res.String())
	}
	return nil
}

type searchResponse struct {
	Hits struct {
		Hits []struct {
			Score     float64             `json:"_score"`
			Source    model.EsDocument    `json:"_source"`
			Highlight map[string][]string `json:"highlight"`
		} `json:"hits"`
	} `json:"hits"`
}

// BuildQuery returns the full-text query body, filtered to brand unless it is empty or "all".
func BuildQuery(text, brand string, size int) map[string]any {
	boolQuery := map[string]any{
		"must": map[string]any{
			"multi_match": map[string]any{
				"query":  text,
				"fields": []string{"title^3", "summary^2", "content", "attachment_text"},
			},
		},
	}
	if brand != "" && brand != model.BrandAll {
		boolQuery["filter"] = []any{
			map[string]any{"terms": map[string]any{"brand": []string{brand, model.BrandAll}}},
		}
	}
	return map[string]any{
		"size":  size,
		"query": map[string]any{"bool": boolQuery},
		"highlight": map[string]any{
			"fields": map[string]any{
				"content":         map[string]any{},
				"attachment_text": map[string]any{},
			},
		},
	}
}

// Search runs a full-text query over title, summary, content and attachment text.
func (c *Client) Search(ctx context.Context, text, brand string, size int) ([]model.SearchHit, error) {
	body, err := json.Marshal(BuildQuery(text, brand, size))
	if err != nil {
		return nil, err
	}
	res, err := c.es.Search(
		c.es.Search.WithContext(ctx),
		c.es.Search.WithIndex(c.index),
		c.es.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("search: %s", res.String())
	}

	var sr searchResponse
	if err := json.NewDecoder(res.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	hits := make([]model.SearchHit, 0, len(sr.Hits.Hits))
	for _, h := range sr.Hits.Hits {
		var highlights []string
		highlights = append(highlights, h.Highlight["content"]...)
		highlights = append(highlights, h.Highlight["attachment_text"]...)
		hits = append(hits, model.SearchHit{
			DocumentID: h.Source.DocumentID,
			Brand:      h.Source.Brand,
			Title:      h.Source.Title,
			Summary:    h.Source.Summary,
			Highlights: highlights,
			Score:      h.Score,
		})
	}
	return hits, nil
}
