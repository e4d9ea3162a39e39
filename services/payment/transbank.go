// File: services/payment/transbank.go
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"lienzo/config"
	"lienzo/models"
	"lienzo/utils"
)

const transactionsPath = "/rswebpaytransaction/api/webpay/v1.2/transactions"

// TransbankClient talks to the Webpay Plus REST API.
type TransbankClient struct {
	baseURL      string
	commerceCode string
	apiKey       string
	returnURL    string
	httpClient   *http.Client
	logger       *zap.Logger
}

// NewTransbankClient constructs a gateway client.
func NewTransbankClient(baseURL, commerceCode, apiKey, returnURL string, httpClient *http.Client, logger *zap.Logger) *TransbankClient {
	return &TransbankClient{
		baseURL:      strings.TrimRight(baseURL, "/"),
		commerceCode: commerceCode,
		apiKey:       apiKey,
		returnURL:    returnURL,
		httpClient:   httpClient,
		logger:       logger,
	}
}

// NewTransbankClientFromConfig constructs a gateway client from the app
// configuration with the standard outbound timeout.
func NewTransbankClientFromConfig(logger *zap.Logger) *TransbankClient {
	return NewTransbankClient(
		config.AppConfig.TransbankBaseURL,
		config.AppConfig.TransbankCommerceCode,
		config.AppConfig.TransbankAPIKey,
		config.AppConfig.TransbankReturnURL,
		&http.Client{Timeout: utils.FetchTimeout},
		logger,
	)
}

type createTransactionRequest struct {
	BuyOrder  string `json:"buy_order"`
	SessionID string `json:"session_id"`
	Amount    int64  `json:"amount"`
	ReturnURL string `json:"return_url"`
}

type createTransactionResponse struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}

// CreateTransaction registers a payment with Webpay and returns the hosted
// payment page the client redirects to.
func (c *TransbankClient) CreateTransaction(ctx context.Context, buyOrder, sessionID string, amount int64) (*models.TransbankPayment, error) {
	body, err := json.Marshal(createTransactionRequest{
		BuyOrder:  buyOrder,
		SessionID: sessionID,
		Amount:    amount,
		ReturnURL: c.returnURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transaction request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+transactionsPath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("transbank create transaction failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("transbank create transaction unexpected status: %d", resp.StatusCode)
	}

	var created createTransactionResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("failed to decode transbank response: %w", err)
	}
	if created.Token == "" || created.URL == "" {
		return nil, fmt.Errorf("transbank response missing token or url")
	}

	c.logger.Info("Transbank transaction created",
		zap.String("buyOrder", buyOrder), zap.Int64("amount", amount))

	return &models.TransbankPayment{
		Token:   created.Token,
		URL:     created.URL,
		FullURL: created.URL + "?token_ws=" + created.Token,
	}, nil
}

// CommitTransaction confirms a payment after the gateway redirect-back.
func (c *TransbankClient) CommitTransaction(ctx context.Context, tokenWS string) (*models.TransbankCommitResult, error) {
	if tokenWS == "" {
		return nil, fmt.Errorf("missing token_ws")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+transactionsPath+"/"+tokenWS, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("transbank commit failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("transbank commit unexpected status: %d", resp.StatusCode)
	}

	var result models.TransbankCommitResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode transbank commit response: %w", err)
	}

	c.logger.Info("Transbank transaction committed",
		zap.String("buyOrder", result.BuyOrder), zap.String("status", result.Status))
	return &result, nil
}

func (c *TransbankClient) setHeaders(req *http.Request) {
	req.Header.Set("Tbk-Api-Key-Id", c.commerceCode)
	req.Header.Set("Tbk-Api-Key-Secret", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
}
