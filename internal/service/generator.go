package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go_4_word_card/internal/config"
	"go_4_word_card/internal/middleware"
	"go_4_word_card/internal/model"

	"github.com/cenkalti/backoff/v4"
	openai "github.com/sashabaranov/go-openai"
)

// CardGenerator は単語から辞書カードの元データを生成します。
// 返すエラーは model.ErrWordNotFound / model.ErrMalformedReply / model.ErrOracleUnavailable のいずれか
type CardGenerator interface {
	Generate(ctx context.Context, word string) (*model.GeneratedCard, error)
}

const systemPrompt = "You are a multilingual dictionary. Provide strictly verified information only."

const promptTemplate = `Convert this word "{{word}}" to initial form. Then, provide the following information of this converted word:

1) initial_form = Convert this word "{{word}}" to the initial form and the first letter must be capitalized.
2) forms = Provide all forms of this word and all forms must be capitalized.
3) synonyms = Provide three synonyms of this converted word.
4) pronunciation = Convert this word "{{word}}" to initial form. Then, provide phonetic transcription of this converted word.
5) usage_examples = (example = Provide three examples with this converted word) and (part_of_speech = Provide the part of speech of this converted word in each example). The following object must be {"example": example, "part_of_speech": part_of_speech}.
6) common_phrases = (phrase = Provide three common phrases with this converted word) and (meaning = The meaning of this phrase). The following object must be {"phrase": phrase, "meaning": meaning}.

If the word does not exist in the dictionary then reply only "null" else return only the following object in correct JSON format:
{
"initial_form": initial_form,
"forms": forms[],
"synonyms": synonyms[],
"pronunciation": pronunciation,
"usage_examples": usage_examples[],
"common_phrases": common_phrases[]
}`

// BuildPrompt はオラクルに渡す指示文を組み立てます
func BuildPrompt(word string) string {
	return strings.ReplaceAll(promptTemplate, "{{word}}", word)
}

// OpenAIGenerator は OpenAI 互換の Chat Completions API を使う CardGenerator です
type OpenAIGenerator struct {
	client      *openai.Client
	apiKey      string
	model       string
	temperature float32
	maxTokens   int
	timeout     time.Duration
	maxRetries  int
	// retryInterval はリトライ間隔の初期値 (テストで短くする)
	retryInterval time.Duration
}

func NewCardGenerator(cfg config.OracleConfig) *OpenAIGenerator {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	// タイムアウトは試行ごとの context で制御する
	clientCfg.HTTPClient = &http.Client{}

	return &OpenAIGenerator{
		client:        openai.NewClientWithConfig(clientCfg),
		apiKey:        cfg.APIKey,
		model:         cfg.Model,
		temperature:   cfg.Temperature,
		maxTokens:     cfg.MaxTokens,
		timeout:       cfg.Timeout,
		maxRetries:    cfg.MaxRetries,
		retryInterval: 500 * time.Millisecond,
	}
}

func (g *OpenAIGenerator) Generate(ctx context.Context, word string) (*model.GeneratedCard, error) {
	logger := middleware.GetLogger(ctx).With("word", word)

	if g.apiKey == "" {
		logger.Error("Oracle API key is not configured")
		return nil, fmt.Errorf("%w: api key not set", model.ErrOracleUnavailable)
	}

	req := openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: BuildPrompt(word)},
		},
		Temperature: g.temperature,
		MaxTokens:   g.maxTokens,
	}

	var reply string
	attempt := 0
	operation := func() error {
		attempt++
		attemptCtx, cancel := context.WithTimeout(ctx, g.timeout)
		defer cancel()

		resp, err := g.client.CreateChatCompletion(attemptCtx, req)
		if err != nil {
			return classifyOracleError(ctx, err)
		}
		if len(resp.Choices) == 0 {
			return backoff.Permanent(fmt.Errorf("%w: oracle returned no choices", model.ErrMalformedReply))
		}
		reply = resp.Choices[0].Message.Content
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = g.retryInterval
	b.MaxElapsedTime = 0 // 回数は WithMaxRetries で制限する
	b.Reset()
	policy := backoff.WithContext(backoff.WithMaxRetries(b, uint64(g.maxRetries)), ctx)

	err := backoff.RetryNotify(operation, policy, func(err error, wait time.Duration) {
		logger.Warn("Oracle call failed, retrying", "error", err, "attempt", attempt, "wait", wait)
	})
	if errors.Is(err, model.ErrMalformedReply) {
		logger.Warn("Oracle reply has no content", "error", err, "attempts", attempt)
		return nil, err
	}
	if err != nil {
		logger.Error("Oracle call failed", "error", err, "attempts", attempt)
		return nil, fmt.Errorf("%w: %w", model.ErrOracleUnavailable, err)
	}

	logger.Debug("AI RESPONSE", "reply", reply, "attempts", attempt)

	card, err := ParseReply(reply)
	if err != nil {
		if errors.Is(err, model.ErrWordNotFound) {
			logger.Info("Oracle reported unknown word")
		} else {
			logger.Warn("Oracle reply could not be parsed", "error", err, "reply", reply)
		}
		return nil, err
	}
	return card, nil
}

// classifyOracleError は一時的な障害 (通信エラー・429・5xx・試行タイムアウト) だけをリトライ対象にします
func classifyOracleError(parent context.Context, err error) error {
	if parent.Err() != nil {
		return backoff.Permanent(err)
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if isRetryableStatus(apiErr.HTTPStatusCode) {
			return err
		}
		return backoff.Permanent(err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		if isRetryableStatus(reqErr.HTTPStatusCode) {
			return err
		}
		return backoff.Permanent(err)
	}
	return err
}

func isRetryableStatus(code int) bool {
	return code == 0 || code == http.StatusTooManyRequests || code >= 500
}

// ParseReply はオラクルの応答テキストを解釈します。
// "null" は model.ErrWordNotFound、JSON として読めない場合は model.ErrMalformedReply
func ParseReply(text string) (*model.GeneratedCard, error) {
	text = stripCodeFence(strings.TrimSpace(text))

	unquoted := strings.Trim(text, "\"'`. \n")
	if strings.EqualFold(unquoted, "null") {
		return nil, model.ErrWordNotFound
	}

	// JSON の前後に説明文が付くことがあるので最初の { から最後の } までを使う
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return nil, fmt.Errorf("%w: no JSON object in reply", model.ErrMalformedReply)
	}

	var card model.GeneratedCard
	if err := json.Unmarshal([]byte(text[start:end+1]), &card); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrMalformedReply, err)
	}
	if strings.TrimSpace(card.InitialForm) == "" {
		return nil, fmt.Errorf("%w: initial_form is empty", model.ErrMalformedReply)
	}
	return &card, nil
}

func stripCodeFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	if i := strings.Index(text, "\n"); i >= 0 {
		text = text[i+1:]
	} else {
		text = strings.TrimPrefix(text, "```")
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), "```"))
}
