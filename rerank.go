package jina

import "context"

// RerankerModel identifies a reranker model.
//
// Available models and corresponding param size:
//   - jina-reranker-v2-base-multilingual, 278M
//   - jina-reranker-v1-base-en, 137M
//   - jina-reranker-v1-tiny-en, 33M
//   - jina-reranker-v1-turbo-en, 38M
//   - jina-colbert-v1-en, 137M
type RerankerModel string

const (
	ModelRerankerV2BaseMultilingual RerankerModel = "jina-reranker-v2-base-multilingual"
	ModelRerankerV1BaseEn           RerankerModel = "jina-reranker-v1-base-en"
	ModelRerankerV1TinyEn           RerankerModel = "jina-reranker-v1-tiny-en"
	ModelRerankerV1TurboEn          RerankerModel = "jina-reranker-v1-turbo-en"
	ModelColbertV1En                RerankerModel = "jina-colbert-v1-en"
)

// Query is the search query: a plain Text or a TextDoc. Like
// EmbeddingsInput, the variant is encoded by wire shape, not by a
// tag.
type Query interface {
	rerankQuery()
}

func (Text) rerankQuery()    {}
func (TextDoc) rerankQuery() {}

// Documents is the candidate list to rerank: Texts or TextDocs. The
// list is one shape or the other, never mixed.
type Documents interface {
	rerankDocuments()
}

// TextDocs is a list of text documents to rerank. Fields beyond text
// are preserved by the API in the response.
type TextDocs []TextDoc

func (Texts) rerankDocuments()    {}
func (TextDocs) rerankDocuments() {}

type RerankRequest struct {
	Model RerankerModel `json:"model"`

	Query Query `json:"query"`

	Documents Documents `json:"documents"`

	// TopN limits how many ranked results come back. The server
	// defaults to the number of documents; the client never
	// substitutes a value.
	TopN *int `json:"top_n,omitempty"`

	// ReturnDocuments controls whether results echo the document
	// text. Defaults server-side to true.
	ReturnDocuments *bool `json:"return_documents,omitempty"`
}

type RerankResponse struct {
	Model   string         `json:"model"`
	Results []RankedResult `json:"results"`
	Usage   Usage          `json:"usage"`
}

type RankedResult struct {
	// Index points into the documents list of the request.
	Index          int            `json:"index"`
	Document       RankedDocument `json:"document"`
	RelevanceScore float32        `json:"relevance_score"`
}

type RankedDocument struct {
	Text string `json:"text"`
}

// Rerank orders the request documents by relevance to the query.
func (c *Client) Rerank(ctx context.Context, req RerankRequest) (*RerankResponse, error) {
	if req.Model == "" {
		return nil, &Error{Code: "invalid_request", Message: "model is required"}
	}
	if req.Query == nil {
		return nil, &Error{Code: "invalid_request", Message: "query is required"}
	}
	if req.Documents == nil {
		return nil, &Error{Code: "invalid_request", Message: "documents are required"}
	}

	var out RerankResponse
	if err := c.post(ctx, "/v1/rerank", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
