// Package api exposes the four entry operations the UI calls:
// classify-by-image, resolve-by-text, resolve-by-barcode and
// resolve-by-tokens. Every failure is funneled through the error
// classifier exactly once; a call either fully succeeds with a sequence
// of items or fully fails with one classified error.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/frankasd12/NibbleCheck-Mobile/internal/common/config"
	"github.com/frankasd12/NibbleCheck-Mobile/internal/common/errors"
	"github.com/frankasd12/NibbleCheck-Mobile/internal/common/httpx"
	"github.com/frankasd12/NibbleCheck-Mobile/internal/common/logger"
	"github.com/frankasd12/NibbleCheck-Mobile/internal/common/metrics"
	"github.com/frankasd12/NibbleCheck-Mobile/internal/common/validation"
	"github.com/frankasd12/NibbleCheck-Mobile/internal/normalize"
	"github.com/frankasd12/NibbleCheck-Mobile/internal/safety"
)

const (
	opClassifyImage  = "classify-image"
	opResolveText    = "resolve-text"
	opResolveBarcode = "resolve-barcode"
	opResolveTokens  = "resolve-tokens"
)

type Client struct {
	cfg    config.APIConfig
	http   *httpx.Client
	logger logger.Logger
}

func NewClient(cfg config.APIConfig, log logger.Logger) *Client {
	return &Client{
		cfg:    cfg,
		http:   httpx.NewClient(),
		logger: log.WithFields(map[string]interface{}{"component": "api-client"}),
	}
}

func (c *Client) lookupDeadline() time.Duration {
	return config.GetDuration(c.cfg.LookupTimeout)
}

func (c *Client) uploadDeadline() time.Duration {
	return config.GetDuration(c.cfg.UploadTimeout)
}

// ClassifyImage uploads the image at path and normalizes the
// classification result. The caller owns transcoding/compression; this
// layer ships the bytes as-is under the long upload deadline.
func (c *Client) ClassifyImage(ctx context.Context, path string) ([]safety.Item, error) {
	start := time.Now()

	body, contentType, err := encodeImageForm(path, c.cfg.ImageField)
	if err != nil {
		return nil, c.fail(opClassifyImage, start, err)
	}

	result, err := c.http.PostMultipart(ctx, c.cfg.BaseURL+"/classify-image", contentType, body, c.uploadDeadline())
	if err != nil {
		return nil, c.fail(opClassifyImage, start, err)
	}
	if err := checkStatus(result); err != nil {
		return nil, c.fail(opClassifyImage, start, err)
	}

	items := normalize.ImageItems(result.Body)
	c.succeed(opClassifyImage, start, len(items))
	return items, nil
}

// ResolveText resolves a free-text ingredient list. The second return
// value is the backend-computed overall verdict, passed through for
// display only.
func (c *Client) ResolveText(ctx context.Context, ingredientsText string) ([]safety.Item, safety.Verdict, error) {
	start := time.Now()

	payload := map[string]string{"ingredients_text": ingredientsText}
	result, err := c.http.PostJSON(ctx, c.cfg.BaseURL+"/resolve-text", payload, c.lookupDeadline())
	if err != nil {
		return nil, "", c.fail(opResolveText, start, err)
	}
	if err := checkStatus(result); err != nil {
		return nil, "", c.fail(opResolveText, start, err)
	}

	items, overall, err := normalize.ResolveItems(result.Body)
	if err != nil {
		return nil, "", c.fail(opResolveText, start, err)
	}

	c.succeed(opResolveText, start, len(items))
	return items, overall, nil
}

// ResolveBarcode resolves a scanned barcode. On success the aggregate
// "overall product" item comes first, followed by one item per
// ingredient hit in backend order.
func (c *Client) ResolveBarcode(ctx context.Context, barcode string) ([]safety.Item, error) {
	start := time.Now()

	payload := map[string]string{"barcode": barcode}
	result, err := c.http.PostJSON(ctx, c.cfg.BaseURL+"/resolve-barcode", payload, c.lookupDeadline())
	if err != nil {
		return nil, c.fail(opResolveBarcode, start, err)
	}
	if err := checkStatus(result); err != nil {
		return nil, c.fail(opResolveBarcode, start, err)
	}

	items, err := normalize.BarcodeItems(result.Body, barcode)
	if err != nil {
		return nil, c.fail(opResolveBarcode, start, err)
	}

	c.succeed(opResolveBarcode, start, len(items))
	return items, nil
}

// ResolveTokens resolves pre-tokenized ingredient names and returns the
// raw hits without normalization.
func (c *Client) ResolveTokens(ctx context.Context, tokens []string) ([]safety.ResolveHit, error) {
	start := time.Now()

	payload := map[string][]string{"tokens": tokens}
	result, err := c.http.PostJSON(ctx, c.cfg.BaseURL+"/resolve-tokens", payload, c.lookupDeadline())
	if err != nil {
		return nil, c.fail(opResolveTokens, start, err)
	}
	if err := checkStatus(result); err != nil {
		return nil, c.fail(opResolveTokens, start, err)
	}

	if err := validation.CheckResolvePayload(result.Body); err != nil {
		return nil, c.fail(opResolveTokens, start, errors.NewShapeMismatchError(err.Error()))
	}
	var resp safety.ResolveResponse
	if err := json.Unmarshal(result.Body, &resp); err != nil {
		return nil, c.fail(opResolveTokens, start, errors.NewShapeMismatchError(
			fmt.Sprintf("decode token response: %v", err)))
	}

	c.succeed(opResolveTokens, start, len(resp.Hits))
	return resp.Hits, nil
}

func checkStatus(result *httpx.Result) error {
	if result.StatusCode >= 200 && result.StatusCode < 300 {
		return nil
	}
	return errors.NewServerError(result.StatusCode, string(result.Body))
}

func (c *Client) succeed(operation string, start time.Time, count int) {
	metrics.LookupsCompleted.WithLabelValues(operation).Inc()
	metrics.LookupDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	c.logger.Info("lookup completed", map[string]interface{}{
		"operation":  operation,
		"itemCount":  count,
		"durationMs": time.Since(start).Milliseconds(),
	})
}

// fail classifies err, records it, and returns the classified error.
// This is the single exit path for every failed call.
func (c *Client) fail(operation string, start time.Time, err error) error {
	scanErr := errors.Classify(err)
	metrics.LookupsFailed.WithLabelValues(operation, string(scanErr.Kind)).Inc()
	metrics.LookupDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	c.logger.Error("lookup failed", map[string]interface{}{
		"operation": operation,
		"errorKind": string(scanErr.Kind),
		"message":   scanErr.Message,
	})
	return scanErr
}
