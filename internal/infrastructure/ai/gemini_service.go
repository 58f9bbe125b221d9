package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/wellcomputer-pos/internal/application/dto"
	"github.com/jhoicas/wellcomputer-pos/internal/application/ports"
)

// Verificar en tiempo de compilación que GeminiService implementa LLMService.
var _ ports.LLMService = (*GeminiService)(nil)

const geminiBaseURL = "https://generativelanguage.googleapis.com"

// GeminiService adaptador que implementa LLMService llamando a la API REST de Google Gemini.
type GeminiService struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewGeminiService construye el adaptador. model suele ser "gemini-2.0-flash".
// Si apiKey está vacío, las llamadas devuelven error en lugar de fallar en producción.
func NewGeminiService(apiKey, model string) *GeminiService {
	return &GeminiService{
		apiKey:  apiKey,
		model:   model,
		baseURL: geminiBaseURL,
		httpClient: &http.Client{
			Timeout: 20 * time.Second, // timeout de red; el caller también pone WithTimeout
		},
	}
}

// WithBaseURL apunta el adaptador a otro host (tests con httptest).
func (s *GeminiService) WithBaseURL(u string) *GeminiService {
	s.baseURL = strings.TrimRight(u, "/")
	return s
}

// ── Estructuras internas para la API de Gemini ────────────────────────────────

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type genConfig struct {
	ResponseMIMEType string        `json:"responseMimeType,omitempty"` // "application/json" → JSON puro garantizado
	ResponseSchema   *geminiSchema `json:"responseSchema,omitempty"`
	Temperature      float32       `json:"temperature"`
	MaxOutputTokens  int           `json:"maxOutputTokens"`
}

type geminiSchema struct {
	Type       string                  `json:"type"`
	Properties map[string]geminiSchema `json:"properties,omitempty"`
	Required   []string                `json:"required,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// saleSchema esquema de respuesta de ExtractSale; solo success es obligatorio.
var saleSchema = &geminiSchema{
	Type: "OBJECT",
	Properties: map[string]geminiSchema{
		"success":       {Type: "BOOLEAN"},
		"customerName":  {Type: "STRING"},
		"productName":   {Type: "STRING"},
		"price":         {Type: "NUMBER"},
		"paymentMethod": {Type: "STRING"},
		"error":         {Type: "STRING"},
	},
	Required: []string{"success"},
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// ExtractSale pide a Gemini la interpretación del mensaje con salida JSON estructurada.
func (s *GeminiService) ExtractSale(ctx context.Context, message string, productNames []string) (*dto.ExtractionResult, error) {
	text, err := s.generate(ctx, extractionPrompt(message, productNames), genConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   saleSchema,
		Temperature:      0.1, // baja temperatura para respuestas más deterministas
		MaxOutputTokens:  256,
	})
	if err != nil {
		return nil, err
	}
	return parseExtraction(text)
}

// Answer responde una pregunta libre con los datos de la tienda.
func (s *GeminiService) Answer(ctx context.Context, question string, storeCtx dto.AssistantContext) (string, error) {
	prompt, err := assistantPrompt(question, storeCtx)
	if err != nil {
		return "", err
	}
	text, err := s.generate(ctx, prompt, genConfig{Temperature: 0.4, MaxOutputTokens: 512})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func (s *GeminiService) generate(ctx context.Context, prompt string, cfg genConfig) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: GEMINI_API_KEY no configurado")
	}

	payload := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: cfg,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", s.baseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("AI: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp geminiResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: Gemini error %d: %s", errResp.Error.Code, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Gemini HTTP %d", resp.StatusCode)
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(rawBody, &gemResp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Gemini: %w", err)
	}
	if len(gemResp.Candidates) == 0 || len(gemResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("AI: Gemini devolvió respuesta vacía")
	}
	return gemResp.Candidates[0].Content.Parts[0].Text, nil
}
