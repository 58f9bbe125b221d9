package ai

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/jhoicas/wellcomputer-pos/internal/application/dto"
)

// ── Prompts ───────────────────────────────────────────────────────────────────

const extractionRules = `Rules:
- Identify the customer name.
- Match the product name to the closest one in the Available Products List.
- Extract the price as a plain number in rupiah (no separators, no currency symbol).
- Identify the payment method (CASH, TRANSFER, or CREDIT).
- If the message is not a sale record, return success=false and an error.`

// extractionJSONShape se agrega para proveedores sin esquema de respuesta.
const extractionJSONShape = `Return ONLY a JSON object (no markdown, no text outside the object) with this shape:
{"success": <bool>, "customerName": "<string>", "productName": "<string>", "price": <number or null>, "paymentMethod": "<CASH|TRANSFER|CREDIT>", "error": "<string>"}`

const assistantInstructions = `Anda adalah "Asisten", asisten pintar untuk aplikasi manajemen penjualan laptop "Well Computer".

TUGAS ANDA:
1. Jawab pertanyaan pengguna berdasarkan data di atas secara singkat dan profesional.
2. Gunakan Bahasa Indonesia yang ramah.
3. Jika ditanya tentang stok, sebutkan angka pastinya.
4. Jika ditanya tentang performa, sebutkan siapa sales paling aktif.`

func extractionPrompt(message string, productNames []string) string {
	return fmt.Sprintf(`Analyze the following WhatsApp sales message and extract transaction details.
Available Products List: %s

Message to parse:
%q

%s`, strings.Join(productNames, ", "), message, extractionRules)
}

func assistantPrompt(question string, storeCtx dto.AssistantContext) (string, error) {
	products, err := json.Marshal(storeCtx.Products)
	if err != nil {
		return "", fmt.Errorf("AI: serializar productos: %w", err)
	}
	sales, err := json.Marshal(storeCtx.Transactions)
	if err != nil {
		return "", fmt.Errorf("AI: serializar transacciones: %w", err)
	}
	return fmt.Sprintf(`%s

DATA TOKO SAAT INI:
- Produk: %s
- Transaksi Terakhir: %s

PERTANYAAN PENGGUNA: %q`, assistantInstructions, products, sales, question), nil
}

// ── Respuesta del modelo ──────────────────────────────────────────────────────

// extractionPayload es el JSON que esperamos recibir del modelo.
// price llega como número (a veces con decimales) o null.
type extractionPayload struct {
	Success       bool     `json:"success"`
	CustomerName  string   `json:"customerName"`
	ProductName   string   `json:"productName"`
	Price         *float64 `json:"price"`
	PaymentMethod string   `json:"paymentMethod"`
	Error         string   `json:"error"`
}

func parseExtraction(raw string) (*dto.ExtractionResult, error) {
	clean := extractJSON(raw)
	if clean == "" {
		return nil, fmt.Errorf("AI: no se encontró JSON en la respuesta del modelo (respuesta: %s)", raw)
	}
	var p extractionPayload
	if err := json.Unmarshal([]byte(clean), &p); err != nil {
		return nil, fmt.Errorf("AI: respuesta del modelo no es JSON válido: %w (respuesta: %s)", err, clean)
	}
	out := &dto.ExtractionResult{
		Success:       p.Success,
		CustomerName:  strings.TrimSpace(p.CustomerName),
		ProductName:   strings.TrimSpace(p.ProductName),
		PaymentMethod: strings.TrimSpace(p.PaymentMethod),
		Error:         p.Error,
	}
	if p.Price != nil && !math.IsNaN(*p.Price) && !math.IsInf(*p.Price, 0) {
		price := int64(math.Round(*p.Price))
		out.Price = &price
	}
	return out, nil
}

// jsonBlockRe extrae el primer objeto JSON del texto aunque el modelo lo envuelva en markdown.
var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

// extractJSON extrae el primer objeto JSON de un texto libre.
//  1. Eliminar bloques de código markdown (```json … ``` o ``` … ```).
//  2. Capturar con regex el primer bloque { … }.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "```"); idx != -1 {
		after := text[idx+3:]
		if nl := strings.Index(after, "\n"); nl != -1 {
			after = after[nl+1:]
		}
		if end := strings.LastIndex(after, "```"); end != -1 {
			after = after[:end]
		}
		text = strings.TrimSpace(after)
	}
	if strings.HasPrefix(text, "{") {
		return text
	}
	return strings.TrimSpace(jsonBlockRe.FindString(text))
}
