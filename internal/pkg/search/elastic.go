package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/pkg/errors"
)

type Config struct {
	Addresses []string
	Username  string
	Password  string
}

type Client struct {
	es *elasticsearch.Client
}

type SearchResult struct {
	Hits struct {
		Total struct {
			Value int `json:"value"`
		} `json:"total"`
		Hits []struct {
			ID     string          `json:"_id"`
			Source json.RawMessage `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

func NewClient(cfg *Config) (*Client, error) {
	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: cfg.Addresses,
		Username:  cfg.Username,
		Password:  cfg.Password,
	})
	if err != nil {
		return nil, errors.Wrap(err, "search: new client")
	}

	res, err := es.Info()
	if err != nil {
		return nil, errors.Wrap(err, "search: cluster info")
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, errors.Errorf("search: cluster info: %s", res.String())
	}

	return &Client{es: es}, nil
}

// CreateIndex is a no-op if the index already exists.
func (c *Client) CreateIndex(ctx context.Context, index, mapping string) error {
	exists, err := esapi.IndicesExistsRequest{Index: []string{index}}.Do(ctx, c.es)
	if err != nil {
		return errors.Wrap(err, "search: index exists")
	}
	defer exists.Body.Close()
	if exists.StatusCode == 200 {
		return nil
	}

	res, err := c.es.Indices.Create(index,
		c.es.Indices.Create.WithContext(ctx),
		c.es.Indices.Create.WithBody(strings.NewReader(mapping)),
	)
	if err != nil {
		return errors.Wrap(err, "search: create index")
	}
	defer res.Body.Close()
	if res.IsError() {
		return errors.Errorf("search: create index %s: %s", index, res.String())
	}
	return nil
}

func (c *Client) Index(ctx context.Context, index, id string, doc interface{}) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "search: marshal doc")
	}

	res, err := c.es.Index(index,
		bytes.NewReader(body),
		c.es.Index.WithContext(ctx),
		c.es.Index.WithDocumentID(id),
	)
	if err != nil {
		return errors.Wrap(err, "search: index doc")
	}
	defer res.Body.Close()
	if res.IsError() {
		return errors.Errorf("search: index doc %s/%s: %s", index, id, res.String())
	}
	return nil
}

func (c *Client) Delete(ctx context.Context, index, id string) error {
	res, err := c.es.Delete(index, id, c.es.Delete.WithContext(ctx))
	if err != nil {
		return errors.Wrap(err, "search: delete doc")
	}
	defer res.Body.Close()
	// 404 means already gone, which is fine for async cleanup.
	if res.IsError() && res.StatusCode != 404 {
		return errors.Errorf("search: delete doc %s/%s: %s", index, id, res.String())
	}
	return nil
}

func (c *Client) Search(ctx context.Context, index string, query map[string]interface{}) (*SearchResult, error) {
	body, err := json.Marshal(query)
	if err != nil {
		return nil, errors.Wrap(err, "search: marshal query")
	}

	res, err := c.es.Search(
		c.es.Search.WithContext(ctx),
		c.es.Search.WithIndex(index),
		c.es.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, errors.Wrap(err, "search: execute")
	}
	defer res.Body.Close()
	if res.IsError() {
		raw, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("search: query %s: %s", index, string(raw))
	}

	var result SearchResult
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, errors.Wrap(err, "search: decode response")
	}
	return &result, nil
}
