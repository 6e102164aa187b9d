package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/etnz/budget"
	"github.com/etnz/budget/date"
	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

// InsightModel is the model used to analyse transactions.
const InsightModel = "gemini-2.5-flash"

// maxInsightTransactions caps the transactions sent for analysis.
const maxInsightTransactions = 50

const (
	// NoInsights is returned when the model answers with no text.
	NoInsights = "Could not generate insights at this time."
	// InsightsUnavailable is returned when the model cannot be reached.
	InsightsUnavailable = "AI Insights are currently unavailable. Please check your API configuration."
)

// Generator generates content, it is implemented by the Models service of a genai.Client.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Analyst turns a list of transactions into a few written insights.
type Analyst struct {
	gen   Generator
	model string
}

// NewAnalyst returns an analyst using gen. A nil gen makes an analyst that is
// always unavailable.
func NewAnalyst(gen Generator) *Analyst {
	return &Analyst{gen: gen, model: InsightModel}
}

// NewClient returns a Gemini API client for apiKey.
func NewClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
}

// insight is the projection of a transaction sent to the model.
type insight struct {
	Date          date.Date              `json:"date"`
	Amount        budget.Money           `json:"amount"`
	Type          budget.TransactionType `json:"type"`
	Category      string                 `json:"category"`
	Note          string                 `json:"note"`
	PaymentMethod budget.PaymentMethod   `json:"paymentMethod"`
}

// insightPrompt builds the analysis prompt from the first transactions of txs.
func insightPrompt(txs []budget.Transaction) (string, error) {
	if len(txs) > maxInsightTransactions {
		txs = txs[:maxInsightTransactions]
	}
	recent := make([]insight, 0, len(txs))
	for _, t := range txs {
		recent = append(recent, insight{
			Date:          t.Date,
			Amount:        t.Amount,
			Type:          t.Type,
			Category:      t.CategoryName,
			Note:          t.Note,
			PaymentMethod: t.PaymentMethod,
		})
	}
	data, err := json.MarshalIndent(recent, "", "  ")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`Analyze the following list of financial transactions and provide 3 specific, brief, and actionable insights or trends.
Focus on spending habits, saving opportunities, and check specifically for any high cash spending patterns.
Keep the tone encouraging and professional.
Format the response as a simple markdown list.

Transactions:
%s
`, data), nil
}

// AnalyzeFinances returns markdown insights about txs, most recent first.
//
// It never fails: any error yields InsightsUnavailable and an empty answer
// yields NoInsights.
func (a *Analyst) AnalyzeFinances(ctx context.Context, txs []budget.Transaction) string {
	if a == nil || a.gen == nil {
		return InsightsUnavailable
	}
	prompt, err := insightPrompt(txs)
	if err != nil {
		logrus.WithError(err).Error("could not build insight prompt")
		return InsightsUnavailable
	}
	resp, err := a.gen.GenerateContent(ctx, a.model, genai.Text(prompt), nil)
	if err != nil {
		logrus.WithError(err).WithField("model", a.model).Error("Gemini API error")
		return InsightsUnavailable
	}
	if text := responseText(resp); text != "" {
		return text
	}
	return NoInsights
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if p != nil && p.Text != "" && !p.Thought {
			b.WriteString(p.Text)
		}
	}
	return strings.TrimSpace(b.String())
}
