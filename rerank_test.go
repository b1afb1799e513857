package jina

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/bitop-dev/jina/internal/schema"
)

func TestRerank(t *testing.T) {
	var gotPath string
	var gotBody []byte
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"model": "test-model",
			"results": [
				{
					"index": 0,
					"document": {"text": "Relevant document"},
					"relevance_score": 0.9
				}
			],
			"usage": {"total_tokens": 5, "prompt_tokens": 5}
		}`))
	})

	resp, err := c.Rerank(context.Background(), RerankRequest{
		Model:     ModelColbertV1En,
		Query:     Text("Test query"),
		Documents: Texts{"Relevant document"},
	})
	if err != nil {
		t.Fatal(err)
	}

	if gotPath != "/v1/rerank" {
		t.Fatalf("path=%q", gotPath)
	}

	var body map[string]any
	if err := json.Unmarshal(gotBody, &body); err != nil {
		t.Fatal(err)
	}
	if body["model"] != "jina-colbert-v1-en" {
		t.Fatalf("model=%v", body["model"])
	}
	if body["query"] != "Test query" {
		t.Fatalf("query=%v", body["query"])
	}
	docs, ok := body["documents"].([]any)
	if !ok || len(docs) != 1 || docs[0] != "Relevant document" {
		t.Fatalf("documents=%v", body["documents"])
	}

	if resp.Model != "test-model" {
		t.Fatalf("Model=%q", resp.Model)
	}
	if len(resp.Results) != 1 {
		t.Fatalf("Results=%#v", resp.Results)
	}
	if resp.Results[0].Index != 0 {
		t.Fatalf("Index=%d", resp.Results[0].Index)
	}
	if resp.Results[0].Document.Text != "Relevant document" {
		t.Fatalf("Document=%#v", resp.Results[0].Document)
	}
	if resp.Results[0].RelevanceScore != 0.9 {
		t.Fatalf("RelevanceScore=%v", resp.Results[0].RelevanceScore)
	}
	if resp.Usage.TotalTokens != 5 {
		t.Fatalf("Usage=%#v", resp.Usage)
	}
}

// top_n and return_documents must be absent from the body when unset
// so the server defaults apply; null is not acceptable either.
func TestRerankRequest_OmitsUnsetOptionals(t *testing.T) {
	body, err := json.Marshal(RerankRequest{
		Model:     ModelRerankerV1TurboEn,
		Query:     Text("q"),
		Documents: Texts{"a", "b", "c", "d", "e"},
	})
	if err != nil {
		t.Fatal(err)
	}

	s := `{
		"type": "object",
		"required": ["model", "query", "documents"],
		"additionalProperties": false,
		"properties": {
			"model": {"const": "jina-reranker-v1-turbo-en"},
			"query": {"type": "string"},
			"documents": {"type": "array", "items": {"type": "string"}, "minItems": 5, "maxItems": 5}
		}
	}`
	if err := schema.Validate([]byte(s), body); err != nil {
		t.Fatalf("wire shape: %v", err)
	}
}

func TestRerankRequest_DocShapes(t *testing.T) {
	topN := 2
	returnDocuments := false
	body, err := json.Marshal(RerankRequest{
		Model:           ModelRerankerV2BaseMultilingual,
		Query:           TextDoc{Text: "q"},
		Documents:       TextDocs{{Text: "a"}, {Text: "b"}},
		TopN:            &topN,
		ReturnDocuments: &returnDocuments,
	})
	if err != nil {
		t.Fatal(err)
	}

	s := `{
		"type": "object",
		"required": ["model", "query", "documents", "top_n", "return_documents"],
		"additionalProperties": false,
		"properties": {
			"model": {"const": "jina-reranker-v2-base-multilingual"},
			"query": {
				"type": "object", "required": ["text"], "additionalProperties": false,
				"properties": {"text": {"const": "q"}}
			},
			"documents": {
				"type": "array", "minItems": 2, "maxItems": 2,
				"items": {"type": "object", "required": ["text"], "additionalProperties": false}
			},
			"top_n": {"const": 2},
			"return_documents": {"const": false}
		}
	}`
	if err := schema.Validate([]byte(s), body); err != nil {
		t.Fatalf("wire shape: %v", err)
	}
}

func TestRerank_MissingFields(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) { calls++ })

	cases := []RerankRequest{
		{Query: Text("q"), Documents: Texts{"a"}},
		{Model: ModelRerankerV1BaseEn, Documents: Texts{"a"}},
		{Model: ModelRerankerV1BaseEn, Query: Text("q")},
	}
	for _, req := range cases {
		if _, err := c.Rerank(context.Background(), req); err == nil {
			t.Fatalf("expected error for %#v", req)
		}
	}
	if calls != 0 {
		t.Fatalf("request was sent")
	}
}
