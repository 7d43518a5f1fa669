package whatsapp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/Shajeel/bnw-orders-admin/internal/common/backendprotocol"
	"github.com/Shajeel/bnw-orders-admin/internal/common/whatsappprotocol"
	"github.com/Shajeel/bnw-orders-admin/pkg/logging"
	"github.com/Shajeel/bnw-orders-admin/pkg/phonefmt"
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	http   *resty.Client
	logger *logging.ZapLogger
}

func New(cfg Config, logger *logging.ZapLogger) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Content-Type", "application/json")
	if cfg.Timeout > 0 {
		httpClient.SetTimeout(cfg.Timeout)
	}
	return &Client{
		http:   httpClient,
		logger: logger,
	}
}

// SendOrderConfirmation upserts the customer contact and triggers the given
// flow with the order data bound into the template. A 2xx status is the
// only success signal the gateway gives.
func (c *Client) SendOrderConfirmation(ctx context.Context, record backendprotocol.OrderRecord, flowID int) error {
	phone, err := phonefmt.Normalize(record.Phone)
	if err != nil {
		return fmt.Errorf("order %s: %w", record.OrderNumber, err)
	}

	contact := whatsappprotocol.Contact{
		Phone:     phone,
		Email:     "",
		FirstName: record.CustomerName,
		LastName:  "",
		Actions: []whatsappprotocol.Action{
			{
				Action:    whatsappprotocol.SetFieldValue,
				FieldName: whatsappprotocol.OrderNumberField,
				Value:     record.OrderNumber,
			},
			{
				Action:    whatsappprotocol.SetFieldValue,
				FieldName: whatsappprotocol.OrderPriceField,
				Value:     record.Amount,
			},
			{
				Action: whatsappprotocol.SendFlow,
				FlowID: flowID,
			},
		},
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(contact).
		Post("/api/contacts")
	if err != nil {
		return fmt.Errorf("contact request failed: %w", err)
	}
	if resp.IsSuccess() {
		c.logger.DebugCtx(ctx, "flow triggered",
			zap.String("orderNumber", record.OrderNumber),
			zap.Int("flowId", flowID),
		)
		return nil
	}

	var gatewayErr whatsappprotocol.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &gatewayErr); err == nil && gatewayErr.Message != "" {
		return fmt.Errorf("gateway rejected contact (%v): %s", resp.StatusCode(), gatewayErr.Message)
	}
	return fmt.Errorf("unexpected status code %v", resp.StatusCode())
}
