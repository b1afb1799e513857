package jina

import "context"

// EmbeddingsModel identifies an embeddings model.
//
// Available models and corresponding param size and dimension:
//   - jina-clip-v1, 223M, 768
//   - jina-embeddings-v2-base-en, 137M, 768
//   - jina-embeddings-v2-base-es, 161M, 768
//   - jina-embeddings-v2-base-de, 161M, 768
//   - jina-embeddings-v2-base-zh, 161M, 768
//   - jina-embeddings-v2-base-code, 137M, 768
type EmbeddingsModel string

const (
	ModelClipV1               EmbeddingsModel = "jina-clip-v1"
	ModelEmbeddingsV2BaseEn   EmbeddingsModel = "jina-embeddings-v2-base-en"
	ModelEmbeddingsV2BaseEs   EmbeddingsModel = "jina-embeddings-v2-base-es"
	ModelEmbeddingsV2BaseDe   EmbeddingsModel = "jina-embeddings-v2-base-de"
	ModelEmbeddingsV2BaseZh   EmbeddingsModel = "jina-embeddings-v2-base-zh"
	ModelEmbeddingsV2BaseCode EmbeddingsModel = "jina-embeddings-v2-base-code"
)

// EmbeddingsInput is the polymorphic input of an EmbeddingsRequest.
// The wire format carries no discriminant: the variant is encoded by
// structural shape alone. Text serializes as a JSON string, Texts as
// an array of strings, a single Doc as an object and Docs as an array
// of objects.
type EmbeddingsInput interface {
	embeddingsInput()
}

// Text is a single string to embed.
type Text string

// Texts is a batch of strings to embed.
type Texts []string

// Docs is a batch of documents to embed.
type Docs []Doc

func (Text) embeddingsInput()  {}
func (Texts) embeddingsInput() {}
func (Docs) embeddingsInput()  {}

// Doc is a structured document: either a TextDoc or an ImageDoc. A
// single Doc is itself a valid EmbeddingsInput.
type Doc interface {
	EmbeddingsInput
	doc()
}

type TextDoc struct {
	Text string `json:"text"`
}

type ImageDoc struct {
	// Image is a URL or base64-encoded image.
	Image string `json:"image"`
}

func (TextDoc) doc()             {}
func (TextDoc) embeddingsInput() {}

func (ImageDoc) doc()             {}
func (ImageDoc) embeddingsInput() {}

// EmbeddingType selects the encoding of the returned vectors: one
// EmbeddingTypeValue, or EmbeddingTypes for several at once.
type EmbeddingType interface {
	embeddingType()
}

type EmbeddingTypeValue string

const (
	EmbeddingTypeFloat   EmbeddingTypeValue = "float"
	EmbeddingTypeBase64  EmbeddingTypeValue = "base64"
	EmbeddingTypeBinary  EmbeddingTypeValue = "binary"
	EmbeddingTypeUbinary EmbeddingTypeValue = "ubinary"
)

type EmbeddingTypes []EmbeddingTypeValue

func (EmbeddingTypeValue) embeddingType() {}
func (EmbeddingTypes) embeddingType()     {}

type EmbeddingsRequest struct {
	Model EmbeddingsModel `json:"model"`

	Input EmbeddingsInput `json:"input"`

	// EmbeddingType defaults server-side to float.
	EmbeddingType EmbeddingType `json:"embedding_type,omitempty"`

	// Normalized asks for vectors scaled to unit L2 norm.
	Normalized *bool `json:"normalized,omitempty"`
}

type EmbeddingsResponse struct {
	Model string      `json:"model"`
	Data  []Embedding `json:"data"`
	Usage Usage       `json:"usage"`
}

type Embedding struct {
	Index     int       `json:"index"`
	Embedding []float32 `json:"embedding"`
	Object    string    `json:"object"`
}

// Embeddings computes embeddings for the request input. The response
// is passed through verbatim; vector lengths are not inspected.
func (c *Client) Embeddings(ctx context.Context, req EmbeddingsRequest) (*EmbeddingsResponse, error) {
	if req.Model == "" {
		return nil, &Error{Code: "invalid_request", Message: "model is required"}
	}
	if req.Input == nil {
		return nil, &Error{Code: "invalid_request", Message: "input is required"}
	}

	var out EmbeddingsResponse
	if err := c.post(ctx, "/v1/embeddings", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
